package booking

import (
	"fmt"

	"bookbarn/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateBooking stores a buyer's claim on a product.
func (s *DefaultBookingService) CreateBooking(b *models.Booking) error {
	if b.Email == "" {
		return fmt.Errorf("booking email is required")
	}
	return s.Repo.Create(b)
}

// GetBooking fetches one booking by hex id, or (nil, nil) when absent.
func (s *DefaultBookingService) GetBooking(id string) (*models.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid booking id %q: %w", id, err)
	}
	return s.Repo.GetByID(oid)
}

// GetBookingsByEmail lists a buyer's bookings.
func (s *DefaultBookingService) GetBookingsByEmail(email string) ([]models.Booking, error) {
	return s.Repo.GetByEmail(email)
}

// ReportBooking flags a booking for moderation. Upserts: an unknown id
// creates a stub document rather than failing.
func (s *DefaultBookingService) ReportBooking(id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid booking id %q: %w", id, err)
	}
	return s.Repo.SetReported(oid)
}

// GetReportedBookings lists bookings flagged by the report workflow.
func (s *DefaultBookingService) GetReportedBookings() ([]models.Booking, error) {
	return s.Repo.GetReported()
}

// DeleteBooking removes a booking, the moderation follow-up to a report.
func (s *DefaultBookingService) DeleteBooking(id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid booking id %q: %w", id, err)
	}
	return s.Repo.Delete(oid)
}

package booking

import (
	"context"

	bookingRepo "bookbarn/database/repository/booking"
	"bookbarn/models"
)

// BookingService owns booking lifecycle and the report workflow.
type BookingService interface {
	CreateBooking(booking *models.Booking) error
	GetBooking(id string) (*models.Booking, error)
	GetBookingsByEmail(email string) ([]models.Booking, error)
	ReportBooking(id string) error
	GetReportedBookings() ([]models.Booking, error)
	DeleteBooking(id string) error
}

// PaymentCoordinator turns a booking into money: it requests a processor
// intent and later records the settled payment against the booking.
type PaymentCoordinator interface {
	CreatePaymentIntent(ctx context.Context, req models.PaymentIntentRequest) (string, error)
	RecordPayment(ctx context.Context, payment *models.Payment) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo bookingRepo.BookingRepository
}

package bookingRepo

import (
	"context"
	"errors"

	"bookbarn/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sentinel outcomes for booking writes. ErrBookingNotFound is shared by
// Delete and the payment transaction; either way no writes were applied.
var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrAlreadyPaid     = errors.New("booking already paid")
)

// BookingRepository defines data access for bookings and their payments.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id primitive.ObjectID) (*models.Booking, error)
	GetByEmail(email string) ([]models.Booking, error)
	SetReported(id primitive.ObjectID) error
	GetReported() ([]models.Booking, error)
	Delete(id primitive.ObjectID) error

	// RecordPayment inserts the payment document and flips the linked
	// booking's paid flag as one transaction.
	RecordPayment(ctx context.Context, payment *models.Payment) error
}

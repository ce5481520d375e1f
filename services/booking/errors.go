package booking

import (
	bookingRepo "bookbarn/database/repository/booking"
	"errors"
)

// ErrMissingPrice signals that a payment intent was requested for a booking
// carrying no price. The coordinator refuses without touching the processor.
var ErrMissingPrice = errors.New("booking has no price")

// Re-exported transaction outcomes so handlers need not import the repo package.
var (
	ErrBookingNotFound = bookingRepo.ErrBookingNotFound
	ErrAlreadyPaid     = bookingRepo.ErrAlreadyPaid
)

package booking

import (
	"context"
	"fmt"
	"math"

	bookingRepo "bookbarn/database/repository/booking"
	"bookbarn/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// paymentCurrency is fixed; the marketplace only settles in one currency.
const paymentCurrency = string(stripe.CurrencyUSD)

// StripePaymentCoordinator implements PaymentCoordinator against Stripe and
// the booking repository.
type StripePaymentCoordinator struct {
	logger *zap.Logger
	repo   bookingRepo.BookingRepository
}

// NewPaymentCoordinator wires a coordinator. The Stripe API key is set
// globally at startup.
func NewPaymentCoordinator(logger *zap.Logger, repo bookingRepo.BookingRepository) *StripePaymentCoordinator {
	return &StripePaymentCoordinator{
		logger: logger,
		repo:   repo,
	}
}

// CreatePaymentIntent requests a processor intent for the booking's price and
// returns the client secret. A missing or zero price is an explicit refusal
// (ErrMissingPrice): no processor call, no side effect.
func (h *StripePaymentCoordinator) CreatePaymentIntent(ctx context.Context, req models.PaymentIntentRequest) (string, error) {
	if req.OldPrice <= 0 {
		return "", ErrMissingPrice
	}

	// Stripe amounts are integer minor units.
	amount := int64(math.Round(req.OldPrice * 100))

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(paymentCurrency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	if req.BookingID != "" {
		params.AddMetadata("bookingId", req.BookingID)
	}
	if req.Email != "" {
		params.ReceiptEmail = stripe.String(req.Email)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	h.logger.Info("Payment intent created",
		zap.String("intent", pi.ID),
		zap.Int64("amount", amount),
		zap.String("bookingId", req.BookingID),
	)
	return pi.ClientSecret, nil
}

// RecordPayment persists the settled payment and marks the booking paid in
// one transaction. Safe to retry: a booking settles at most once, and a
// repeat submission surfaces ErrAlreadyPaid with no partial writes.
func (h *StripePaymentCoordinator) RecordPayment(ctx context.Context, payment *models.Payment) error {
	if payment.BookingID == "" {
		return fmt.Errorf("payment is missing bookingId")
	}
	if payment.TrxID == "" {
		payment.TrxID = uuid.New().String()
	}
	if payment.Currency == "" {
		payment.Currency = paymentCurrency
	}

	if err := h.repo.RecordPayment(ctx, payment); err != nil {
		return err
	}

	h.logger.Info("Payment recorded",
		zap.String("bookingId", payment.BookingID),
		zap.String("trxId", payment.TrxID),
	)
	return nil
}

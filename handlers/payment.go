package handlers

import (
	"errors"
	"net/http"

	"bookbarn/middleware"
	"bookbarn/models"
	"bookbarn/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler serves the payment-intent and payment-record endpoints.
type PaymentHandler struct {
	Coordinator booking.PaymentCoordinator
	Logger      *zap.Logger
}

// NewPaymentHandler constructs a PaymentHandler.
func NewPaymentHandler(coord booking.PaymentCoordinator, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Coordinator: coord, Logger: logger}
}

// CreatePaymentIntentHandler handles POST /create-payment-intent. A booking
// without a price is refused with an empty clientSecret and no processor
// call; clients treat the empty secret as "nothing to pay for yet".
func (h *PaymentHandler) CreatePaymentIntentHandler(c *gin.Context) {
	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Error("Invalid payment intent payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	secret, err := h.Coordinator.CreatePaymentIntent(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, booking.ErrMissingPrice) {
			c.JSON(http.StatusUnprocessableEntity, models.PaymentIntentResponse{ClientSecret: ""})
			return
		}
		h.Logger.Error("Payment intent failed", zap.String("bookingId", req.BookingID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.PaymentIntentResponse{ClientSecret: secret})
}

// RecordPaymentHandler handles POST /payments behind the access guard. The
// payment insert and the booking's paid flag commit or abort together.
func (h *PaymentHandler) RecordPaymentHandler(c *gin.Context) {
	var req models.Payment
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Error("Invalid payment payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if req.Email == "" {
		if resolved, ok := middleware.ResolvedEmail(c); ok {
			req.Email = resolved
		}
	}

	if err := h.Coordinator.RecordPayment(c.Request.Context(), &req); err != nil {
		switch {
		case errors.Is(err, booking.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		case errors.Is(err, booking.ErrAlreadyPaid):
			c.JSON(http.StatusConflict, gin.H{"error": "booking already paid"})
		default:
			h.Logger.Error("Payment record failed", zap.String("bookingId", req.BookingID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"acknowledged": true, "trxId": req.TrxID})
}

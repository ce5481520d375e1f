package handlers

import (
	"errors"
	"net/http"

	"bookbarn/middleware"
	"bookbarn/models"
	"bookbarn/services/booking"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// BookingHandler serves booking lifecycle and report endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBookingHandler handles POST /bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req models.Booking
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Error("Invalid booking payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Service.CreateBooking(&req); err != nil {
		h.Logger.Error("Booking create failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, req)
}

// GetBookingsHandler handles GET /bookings?email= behind the access guard.
// The query email must match the token email; anything else is 403.
func (h *BookingHandler) GetBookingsHandler(c *gin.Context) {
	email := c.Query("email")
	resolved, ok := middleware.ResolvedEmail(c)
	if !ok || email != resolved {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden Access"})
		return
	}

	bookings, err := h.Service.GetBookingsByEmail(email)
	if err != nil {
		h.Logger.Error("Booking list failed", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingByIDHandler handles GET /bookings/:id.
func (h *BookingHandler) GetBookingByIDHandler(c *gin.Context) {
	id := c.Param("id")
	b, err := h.Service.GetBooking(id)
	if err != nil {
		if errors.Is(err, primitive.ErrInvalidHex) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
			return
		}
		h.Logger.Error("Booking fetch failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if b == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	c.JSON(http.StatusOK, b)
}

// ReportBookingHandler handles PUT /bookings/reported/:id. Upserts: reporting
// an id with no booking creates a stub document rather than failing.
func (h *BookingHandler) ReportBookingHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.ReportBooking(id); err != nil {
		if errors.Is(err, primitive.ErrInvalidHex) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
			return
		}
		h.Logger.Error("Report failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

// GetReportedHandler handles GET /bookings/reported.
func (h *BookingHandler) GetReportedHandler(c *gin.Context) {
	bookings, err := h.Service.GetReportedBookings()
	if err != nil {
		h.Logger.Error("Reported list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// DeleteBookingHandler handles DELETE /bookings/reported/:id (admin only).
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.DeleteBooking(id); err != nil {
		if errors.Is(err, primitive.ErrInvalidHex) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
			return
		}
		if errors.Is(err, booking.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		h.Logger.Error("Booking delete failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
}

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookbarn/config"
	"bookbarn/middleware"
	"bookbarn/models"
	"bookbarn/services/booking"
	"bookbarn/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

/*
Booking and payment endpoint test cases:
1) GET /bookings with a query email that differs from the token email -> 403
2) GET /bookings with the matching email -> the caller's bookings
3) GET /bookings/:id with a malformed id -> 400
4) DELETE /bookings/reported/:id with a valid-but-absent id -> 404; a repeat
   delete of a removed booking -> 404
5) POST /payments settles the booking once; a repeat -> 409
6) POST /create-payment-intent without a price -> 422 with an empty clientSecret
*/

type fakeBookingService struct {
	bookings map[string]*models.Booking
}

func newFakeBookingService() *fakeBookingService {
	return &fakeBookingService{bookings: map[string]*models.Booking{}}
}

func (f *fakeBookingService) CreateBooking(b *models.Booking) error {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	f.bookings[b.ID.Hex()] = b
	return nil
}

func (f *fakeBookingService) GetBooking(id string) (*models.Booking, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, err
	}
	return f.bookings[id], nil
}

func (f *fakeBookingService) GetBookingsByEmail(email string) ([]models.Booking, error) {
	out := []models.Booking{}
	for _, b := range f.bookings {
		if b.Email == email {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingService) ReportBooking(id string) error                  { return nil }
func (f *fakeBookingService) GetReportedBookings() ([]models.Booking, error) { return nil, nil }

func (f *fakeBookingService) DeleteBooking(id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return err
	}
	if _, ok := f.bookings[id]; !ok {
		return booking.ErrBookingNotFound
	}
	delete(f.bookings, id)
	return nil
}

type fakeCoordinator struct {
	svc *fakeBookingService
}

func (f *fakeCoordinator) CreatePaymentIntent(ctx context.Context, req models.PaymentIntentRequest) (string, error) {
	if req.OldPrice <= 0 {
		return "", booking.ErrMissingPrice
	}
	return "pi_secret_test", nil
}

func (f *fakeCoordinator) RecordPayment(ctx context.Context, p *models.Payment) error {
	b, ok := f.svc.bookings[p.BookingID]
	if !ok {
		return booking.ErrBookingNotFound
	}
	if b.Paid {
		return booking.ErrAlreadyPaid
	}
	b.Paid = true
	b.TrxID = p.TrxID
	return nil
}

func bookingRouter(svc *fakeBookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	bh := NewBookingHandler(svc, zap.NewNop())
	ph := NewPaymentHandler(&fakeCoordinator{svc: svc}, zap.NewNop())

	r := gin.New()
	r.GET("/bookings/:id", bh.GetBookingByIDHandler)
	r.DELETE("/bookings/reported/:id", bh.DeleteBookingHandler)

	guarded := r.Group("")
	guarded.Use(middleware.JWTAuthMiddleware())
	guarded.GET("/bookings", bh.GetBookingsHandler)
	guarded.POST("/create-payment-intent", ph.CreatePaymentIntentHandler)
	guarded.POST("/payments", ph.RecordPaymentHandler)
	return r
}

func bearerFor(t *testing.T, email string) string {
	t.Helper()
	config.AppConfig.JWTSecret = "test-secret"
	token, err := utils.GenerateToken(email, utils.TokenValidity)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestGetBookings_EmailMismatch(t *testing.T) {
	r := bookingRouter(newFakeBookingService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings?email=other@x.com", nil)
	req.Header.Set("Authorization", bearerFor(t, "a@x.com"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Forbidden Access")
}

func TestGetBookings_OwnEmail(t *testing.T) {
	svc := newFakeBookingService()
	require.NoError(t, svc.CreateBooking(&models.Booking{Email: "a@x.com", Title: "Kafka on the Shore"}))
	r := bookingRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings?email=a@x.com", nil)
	req.Header.Set("Authorization", bearerFor(t, "a@x.com"))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got []models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Kafka on the Shore", got[0].Title)
}

func TestGetBookingByID_MalformedID(t *testing.T) {
	r := bookingRouter(newFakeBookingService())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookings/zzz", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteBooking_UnknownID(t *testing.T) {
	svc := newFakeBookingService()
	b := &models.Booking{Email: "a@x.com"}
	require.NoError(t, svc.CreateBooking(b))
	r := bookingRouter(svc)

	// A valid id that holds no document is 404, not a server failure.
	w := httptest.NewRecorder()
	path := "/bookings/reported/" + primitive.NewObjectID().Hex()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, path, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	// An existing booking deletes cleanly; the repeat is 404 again.
	w = httptest.NewRecorder()
	path = "/bookings/reported/" + b.ID.Hex()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, path, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, path, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecordPayment_SettlesOnceOverHTTP(t *testing.T) {
	svc := newFakeBookingService()
	b := &models.Booking{Email: "a@x.com", OldPrice: 500}
	require.NoError(t, svc.CreateBooking(b))
	r := bookingRouter(svc)

	payload, _ := json.Marshal(models.Payment{BookingID: b.ID.Hex(), TrxID: "T1"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewReader(payload))
	req.Header.Set("Authorization", bearerFor(t, "a@x.com"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, svc.bookings[b.ID.Hex()].Paid)
	assert.Equal(t, "T1", svc.bookings[b.ID.Hex()].TrxID)

	// Second submission conflicts and changes nothing.
	w = httptest.NewRecorder()
	payload, _ = json.Marshal(models.Payment{BookingID: b.ID.Hex(), TrxID: "T2"})
	req = httptest.NewRequest(http.MethodPost, "/payments", bytes.NewReader(payload))
	req.Header.Set("Authorization", bearerFor(t, "a@x.com"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "T1", svc.bookings[b.ID.Hex()].TrxID)
}

func TestCreatePaymentIntent_MissingPrice(t *testing.T) {
	r := bookingRouter(newFakeBookingService())

	payload, _ := json.Marshal(models.PaymentIntentRequest{BookingID: primitive.NewObjectID().Hex()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", bytes.NewReader(payload))
	req.Header.Set("Authorization", bearerFor(t, "a@x.com"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body models.PaymentIntentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.ClientSecret)
}

func TestCreatePaymentIntent_WithPrice(t *testing.T) {
	r := bookingRouter(newFakeBookingService())

	payload, _ := json.Marshal(models.PaymentIntentRequest{OldPrice: 500})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", bytes.NewReader(payload))
	req.Header.Set("Authorization", bearerFor(t, "a@x.com"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body models.PaymentIntentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "pi_secret_test", body.ClientSecret)
}

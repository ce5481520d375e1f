package booking

import (
	"context"
	"testing"

	bookingRepo "bookbarn/database/repository/booking"
	"bookbarn/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

/*
Payment coordinator test cases:
1) CreatePaymentIntent refuses a missing/zero price with ErrMissingPrice and no processor call
2) RecordPayment rejects a payment without a bookingId
3) RecordPayment fills in trxId and currency when absent
4) RecordPayment surfaces ErrAlreadyPaid and ErrBookingNotFound untouched
5) Booking CRUD validates hex ids before touching the store
*/

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
	payments []*models.Payment
	txnErr   error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[string]*models.Booking{}}
}

func (f *fakeBookingRepo) Create(b *models.Booking) error {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	f.bookings[b.ID.Hex()] = b
	return nil
}

func (f *fakeBookingRepo) GetByID(id primitive.ObjectID) (*models.Booking, error) {
	return f.bookings[id.Hex()], nil
}

func (f *fakeBookingRepo) GetByEmail(email string) ([]models.Booking, error) {
	out := []models.Booking{}
	for _, b := range f.bookings {
		if b.Email == email {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) SetReported(id primitive.ObjectID) error {
	b, ok := f.bookings[id.Hex()]
	if !ok {
		b = &models.Booking{ID: id}
		f.bookings[id.Hex()] = b
	}
	b.Reported = true
	return nil
}

func (f *fakeBookingRepo) GetReported() ([]models.Booking, error) {
	out := []models.Booking{}
	for _, b := range f.bookings {
		if b.Reported {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) Delete(id primitive.ObjectID) error {
	delete(f.bookings, id.Hex())
	return nil
}

func (f *fakeBookingRepo) RecordPayment(ctx context.Context, p *models.Payment) error {
	if f.txnErr != nil {
		return f.txnErr
	}
	b, ok := f.bookings[p.BookingID]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if b.Paid {
		return bookingRepo.ErrAlreadyPaid
	}
	b.Paid = true
	b.TrxID = p.TrxID
	f.payments = append(f.payments, p)
	return nil
}

func TestCreatePaymentIntent_MissingPrice(t *testing.T) {
	coord := NewPaymentCoordinator(zap.NewNop(), newFakeBookingRepo())

	secret, err := coord.CreatePaymentIntent(context.Background(), models.PaymentIntentRequest{
		BookingID: primitive.NewObjectID().Hex(),
	})
	assert.ErrorIs(t, err, ErrMissingPrice)
	assert.Empty(t, secret)
}

func TestRecordPayment_MissingBookingID(t *testing.T) {
	coord := NewPaymentCoordinator(zap.NewNop(), newFakeBookingRepo())

	err := coord.RecordPayment(context.Background(), &models.Payment{TrxID: "T1"})
	assert.Error(t, err)
}

func TestRecordPayment_FillsTrxIDAndCurrency(t *testing.T) {
	repo := newFakeBookingRepo()
	b := &models.Booking{Email: "a@x.com", OldPrice: 500}
	require.NoError(t, repo.Create(b))

	coord := NewPaymentCoordinator(zap.NewNop(), repo)
	p := &models.Payment{BookingID: b.ID.Hex()}
	require.NoError(t, coord.RecordPayment(context.Background(), p))

	assert.NotEmpty(t, p.TrxID)
	assert.Equal(t, "usd", p.Currency)
	assert.True(t, repo.bookings[b.ID.Hex()].Paid)
	assert.Equal(t, p.TrxID, repo.bookings[b.ID.Hex()].TrxID)
}

func TestRecordPayment_SettlesOnce(t *testing.T) {
	repo := newFakeBookingRepo()
	b := &models.Booking{Email: "a@x.com", OldPrice: 500}
	require.NoError(t, repo.Create(b))

	coord := NewPaymentCoordinator(zap.NewNop(), repo)

	require.NoError(t, coord.RecordPayment(context.Background(), &models.Payment{BookingID: b.ID.Hex(), TrxID: "T1"}))
	err := coord.RecordPayment(context.Background(), &models.Payment{BookingID: b.ID.Hex(), TrxID: "T2"})
	assert.ErrorIs(t, err, ErrAlreadyPaid)

	// Exactly one payment and the first trxId stand.
	require.Len(t, repo.payments, 1)
	assert.Equal(t, "T1", repo.bookings[b.ID.Hex()].TrxID)
}

func TestRecordPayment_UnknownBooking(t *testing.T) {
	coord := NewPaymentCoordinator(zap.NewNop(), newFakeBookingRepo())

	err := coord.RecordPayment(context.Background(), &models.Payment{
		BookingID: primitive.NewObjectID().Hex(),
		TrxID:     "T1",
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestBookingService_InvalidHexIDs(t *testing.T) {
	svc := &DefaultBookingService{Repo: newFakeBookingRepo()}

	_, err := svc.GetBooking("nope")
	assert.ErrorIs(t, err, primitive.ErrInvalidHex)

	assert.ErrorIs(t, svc.ReportBooking("nope"), primitive.ErrInvalidHex)
	assert.ErrorIs(t, svc.DeleteBooking("nope"), primitive.ErrInvalidHex)
}

func TestReportBooking_UpsertsUnknownID(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := &DefaultBookingService{Repo: repo}

	id := primitive.NewObjectID()
	require.NoError(t, svc.ReportBooking(id.Hex()))

	reported, err := svc.GetReportedBookings()
	require.NoError(t, err)
	require.Len(t, reported, 1)
	assert.Equal(t, id, reported[0].ID)
}

package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"bookbarn/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// RecordPayment inserts the payment record and marks the booking paid as a
// single transaction. The booking update is a compare-and-swap on the prior
// paid value, so two concurrent submissions for the same booking cannot both
// commit: the loser aborts with ErrAlreadyPaid and leaves no orphaned payment.
func (r *MongoBookingRepo) RecordPayment(ctx context.Context, payment *models.Payment) error {
	bookingID, err := primitive.ObjectIDFromHex(payment.BookingID)
	if err != nil {
		return fmt.Errorf("invalid booking id %q: %w", payment.BookingID, err)
	}

	client := r.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	payment.CreatedAt = time.Now()

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.paymentColl.InsertOne(sc, payment); err != nil {
			return fmt.Errorf("insert payment failed: %w", err)
		}

		filter := bson.M{
			"_id":  bookingID,
			"paid": bson.M{"$ne": true},
		}
		update := bson.M{
			"$set": bson.M{
				"paid":  true,
				"trxId": payment.TrxID,
			},
		}

		res, err := r.bookingColl.UpdateOne(sc, filter, update)
		if err != nil {
			return fmt.Errorf("mark booking paid failed: %w", err)
		}
		if res.MatchedCount == 0 {
			// Distinguish a missing booking from one already settled.
			count, err := r.bookingColl.CountDocuments(sc, bson.M{"_id": bookingID})
			if err != nil {
				return fmt.Errorf("check booking existence failed: %w", err)
			}
			if count == 0 {
				return ErrBookingNotFound
			}
			return ErrAlreadyPaid
		}

		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return err
	}

	return nil
}

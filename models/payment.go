package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is the immutable record of a completed transaction. It references
// the booking it settles and is never mutated after insertion.
type Payment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	BookingID string             `bson:"bookingId" json:"bookingId"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	Amount    float64            `bson:"amount,omitempty" json:"amount,omitempty"`
	Currency  string             `bson:"currency,omitempty" json:"currency,omitempty"`
	TrxID     string             `bson:"trxId" json:"trxId"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// PaymentIntentRequest is the payload for POST /create-payment-intent.
// Only the price is consulted; the rest travels through for bookkeeping.
type PaymentIntentRequest struct {
	BookingID string  `json:"bookingId,omitempty"`
	OldPrice  float64 `json:"oldPrice,omitempty"`
	Email     string  `json:"email,omitempty"`
}

// PaymentIntentResponse carries the processor's client secret back to the
// client. An empty secret means the request was refused.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

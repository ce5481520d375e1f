package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking is a buyer's claim on a product. The paid/trxId pair is written
// exactly once, together with the matching Payment record.
type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email           string             `bson:"email" json:"email"`
	ProductID       string             `bson:"productId,omitempty" json:"productId,omitempty"`
	Title           string             `bson:"title,omitempty" json:"title,omitempty"`
	OldPrice        float64            `bson:"oldPrice,omitempty" json:"oldPrice,omitempty"`
	MeetingLocation string             `bson:"meetingLocation,omitempty" json:"meetingLocation,omitempty"`
	Phone           string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Reported        bool               `bson:"reported,omitempty" json:"reported,omitempty"`
	Paid            bool               `bson:"paid,omitempty" json:"paid,omitempty"`
	TrxID           string             `bson:"trxId,omitempty" json:"trxId,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

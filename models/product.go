package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a secondhand book listed for resale. Ownership is the seller's
// email; image is an opaque URL supplied by the client.
type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CategoryID    string             `bson:"categoryId" json:"categoryId"`
	Title         string             `bson:"title" json:"title"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	OriginalPrice float64            `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	ResalePrice   float64            `bson:"resalePrice,omitempty" json:"resalePrice,omitempty"`
	Condition     string             `bson:"condition,omitempty" json:"condition,omitempty"`
	YearsOfUse    int                `bson:"yearsOfUse,omitempty" json:"yearsOfUse,omitempty"`
	Location      string             `bson:"location,omitempty" json:"location,omitempty"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	SellerName    string             `bson:"sellerName,omitempty" json:"sellerName,omitempty"`
	Email         string             `bson:"email" json:"email"`
	Advertised    bool               `bson:"advertised,omitempty" json:"advertised,omitempty"`
	Sold          bool               `bson:"sold,omitempty" json:"sold,omitempty"`
	PostedAt      time.Time          `bson:"postedAt,omitempty" json:"postedAt,omitempty"`
}

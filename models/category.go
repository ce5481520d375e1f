package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category is a book genre bucket shown on the landing page.
type Category struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Image string             `bson:"image,omitempty" json:"image,omitempty"`
}

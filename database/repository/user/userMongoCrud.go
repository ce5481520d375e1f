// File: database/repository/user/userMongoCrud.go
package userRepo

import (
	"fmt"
	"time"

	"bookbarn/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Save inserts a user document keyed by email. Re-registering an existing
// email is a no-op apart from refreshing updatedAt, so social-login clients
// can post the same user on every sign-in.
func (r *MongoUserRepo) Save(user *models.User) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	filter := bson.M{"email": user.Email}
	update := bson.M{
		"$set": bson.M{"updatedAt": now},
		"$setOnInsert": bson.M{
			"name":      user.Name,
			"email":     user.Email,
			"role":      user.Role,
			"createdAt": now,
		},
	}
	opts := options.Update().SetUpsert(true)

	_, err := r.coll.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

// SetVerified flags a user as verified (the blue tick). Upserts, matching the
// original moderation endpoint which creates a stub document for unknown ids.
func (r *MongoUserRepo) SetVerified(id primitive.ObjectID) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"verified": true, "updatedAt": time.Now()}}
	opts := options.Update().SetUpsert(true)

	_, err := r.coll.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return fmt.Errorf("failed to set verified for user %s: %w", id.Hex(), err)
	}
	return nil
}

// Delete removes a user document by its ID and returns the removed document,
// so callers can invalidate anything keyed by the account's email.
func (r *MongoUserRepo) Delete(id primitive.ObjectID) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var removed models.User
	err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&removed)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to delete user with id %s: %w", id.Hex(), err)
	}
	return &removed, nil
}

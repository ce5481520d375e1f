// File: database/repository/catalog/catalogMongoCrud.go
package catalogRepo

import (
	"fmt"
	"time"

	"bookbarn/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateProduct inserts a new product document.
func (r *MongoCatalogRepo) CreateProduct(product *models.Product) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	product.PostedAt = time.Now()

	res, err := r.productColl.InsertOne(ctx, product)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		product.ID = oid
	}
	return nil
}

// SetAdvertised flags a product for the advertised shelf. Upserts for parity
// with the other moderation-style flag writes.
func (r *MongoCatalogRepo) SetAdvertised(id primitive.ObjectID) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"advertised": true}}
	opts := options.Update().SetUpsert(true)

	_, err := r.productColl.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return fmt.Errorf("failed to advertise product %s: %w", id.Hex(), err)
	}
	return nil
}

// DeleteProduct removes a product document by its ID.
func (r *MongoCatalogRepo) DeleteProduct(id primitive.ObjectID) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.productColl.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete product with id %s: %w", id.Hex(), err)
	}
	if result.DeletedCount == 0 {
		return ErrProductNotFound
	}
	return nil
}

// CreateReview inserts a new review document.
func (r *MongoCatalogRepo) CreateReview(review *models.Review) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	review.CreatedAt = time.Now()

	res, err := r.reviewColl.InsertOne(ctx, review)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		review.ID = oid
	}
	return nil
}

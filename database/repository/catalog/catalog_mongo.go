package catalogRepo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"bookbarn/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	categoryColl *mongo.Collection
	productColl  *mongo.Collection
	reviewColl   *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo(db *mongo.Database) CatalogRepository {
	repo := &MongoCatalogRepo{
		categoryColl: db.Collection("categories"),
		productColl:  db.Collection("products"),
		reviewColl:   db.Collection("reviews"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetCategories retrieves every category document.
func (r *MongoCatalogRepo) GetCategories() ([]models.Category, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.categoryColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}
	defer cursor.Close(ctx)

	categories := []models.Category{}
	for cursor.Next(ctx) {
		var cat models.Category
		if err := cursor.Decode(&cat); err != nil {
			return nil, fmt.Errorf("failed to decode category: %w", err)
		}
		categories = append(categories, cat)
	}
	return categories, nil
}

// GetCategoryByID retrieves one category. Returns (nil, nil) when absent.
func (r *MongoCatalogRepo) GetCategoryByID(id primitive.ObjectID) (*models.Category, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var cat models.Category
	if err := r.categoryColl.FindOne(ctx, bson.M{"_id": id}).Decode(&cat); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch category with id %s: %w", id.Hex(), err)
	}
	return &cat, nil
}

// GetProductsByTitle retrieves unsold products whose title contains the
// given text, case-insensitively.
func (r *MongoCatalogRepo) GetProductsByTitle(title string) ([]models.Product, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"title": bson.M{"$regex": regexp.QuoteMeta(title), "$options": "i"},
		"sold":  bson.M{"$ne": true},
	}
	return r.findProducts(ctx, filter)
}

// GetProductsByCategory retrieves unsold products within a category.
func (r *MongoCatalogRepo) GetProductsByCategory(categoryID string) ([]models.Product, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"categoryId": categoryID, "sold": bson.M{"$ne": true}}
	return r.findProducts(ctx, filter)
}

// GetProductsByEmail retrieves all products owned by the given seller email.
func (r *MongoCatalogRepo) GetProductsByEmail(email string) ([]models.Product, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	return r.findProducts(ctx, bson.M{"email": email})
}

// GetAdvertised retrieves advertised products that have not been sold yet.
func (r *MongoCatalogRepo) GetAdvertised() ([]models.Product, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"advertised": true, "sold": bson.M{"$ne": true}}
	return r.findProducts(ctx, filter)
}

func (r *MongoCatalogRepo) findProducts(ctx context.Context, filter bson.M) ([]models.Product, error) {
	cursor, err := r.productColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	for cursor.Next(ctx) {
		var p models.Product
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode product: %w", err)
		}
		products = append(products, p)
	}
	return products, nil
}

// GetReviewsByProduct retrieves all reviews for the given product.
func (r *MongoCatalogRepo) GetReviewsByProduct(productID string) ([]models.Review, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.reviewColl.Find(ctx, bson.M{"productId": productID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews: %w", err)
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	for cursor.Next(ctx) {
		var rev models.Review
		if err := cursor.Decode(&rev); err != nil {
			return nil, fmt.Errorf("failed to decode review: %w", err)
		}
		reviews = append(reviews, rev)
	}
	return reviews, nil
}

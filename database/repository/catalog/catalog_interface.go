package catalogRepo

import (
	"errors"

	"bookbarn/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrProductNotFound signals a write against a product id that holds no
// document. No writes were applied.
var ErrProductNotFound = errors.New("product not found")

// CatalogRepository defines data access for categories, products and reviews.
type CatalogRepository interface {
	GetCategories() ([]models.Category, error)
	GetCategoryByID(id primitive.ObjectID) (*models.Category, error)

	CreateProduct(product *models.Product) error
	GetProductsByTitle(title string) ([]models.Product, error)
	GetProductsByCategory(categoryID string) ([]models.Product, error)
	GetProductsByEmail(email string) ([]models.Product, error)
	GetAdvertised() ([]models.Product, error)
	SetAdvertised(id primitive.ObjectID) error
	DeleteProduct(id primitive.ObjectID) error

	CreateReview(review *models.Review) error
	GetReviewsByProduct(productID string) ([]models.Review, error)
}

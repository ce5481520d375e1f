package catalog

import (
	"fmt"

	catalogRepo "bookbarn/database/repository/catalog"
	"bookbarn/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrProductNotFound re-exported so handlers need not import the repo package.
var ErrProductNotFound = catalogRepo.ErrProductNotFound

// CatalogService owns categories, product listings and reviews.
type CatalogService interface {
	GetCategories() ([]models.Category, error)
	GetCategory(id string) (*models.Category, error)

	CreateProduct(product *models.Product) error
	GetProductsByTitle(title string) ([]models.Product, error)
	GetProductsByCategory(categoryID string) ([]models.Product, error)
	GetProductsByEmail(email string) ([]models.Product, error)
	GetAdvertisedProducts() ([]models.Product, error)
	AdvertiseProduct(id string) error
	DeleteProduct(id string) error

	CreateReview(review *models.Review) error
	GetReviewsByProduct(productID string) ([]models.Review, error)
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo catalogRepo.CatalogRepository
}

// GetCategories lists every category.
func (s *DefaultCatalogService) GetCategories() ([]models.Category, error) {
	return s.Repo.GetCategories()
}

// GetCategory fetches one category by hex id, or (nil, nil) when absent.
func (s *DefaultCatalogService) GetCategory(id string) (*models.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid category id %q: %w", id, err)
	}
	return s.Repo.GetCategoryByID(oid)
}

// CreateProduct lists a book for resale under the seller's email.
func (s *DefaultCatalogService) CreateProduct(p *models.Product) error {
	if p.Email == "" {
		return fmt.Errorf("product owner email is required")
	}
	if p.Title == "" {
		return fmt.Errorf("product title is required")
	}
	return s.Repo.CreateProduct(p)
}

// GetProductsByTitle lists unsold products with a matching title.
func (s *DefaultCatalogService) GetProductsByTitle(title string) ([]models.Product, error) {
	if title == "" {
		return nil, fmt.Errorf("title filter is required")
	}
	return s.Repo.GetProductsByTitle(title)
}

// GetProductsByCategory lists unsold products in a category.
func (s *DefaultCatalogService) GetProductsByCategory(categoryID string) ([]models.Product, error) {
	if _, err := primitive.ObjectIDFromHex(categoryID); err != nil {
		return nil, fmt.Errorf("invalid category id %q: %w", categoryID, err)
	}
	return s.Repo.GetProductsByCategory(categoryID)
}

// GetProductsByEmail lists a seller's own products.
func (s *DefaultCatalogService) GetProductsByEmail(email string) ([]models.Product, error) {
	return s.Repo.GetProductsByEmail(email)
}

// GetAdvertisedProducts lists advertised, unsold products for the home page.
func (s *DefaultCatalogService) GetAdvertisedProducts() ([]models.Product, error) {
	return s.Repo.GetAdvertised()
}

// AdvertiseProduct puts a product on the advertised shelf.
func (s *DefaultCatalogService) AdvertiseProduct(id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid product id %q: %w", id, err)
	}
	return s.Repo.SetAdvertised(oid)
}

// DeleteProduct removes a product listing.
func (s *DefaultCatalogService) DeleteProduct(id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid product id %q: %w", id, err)
	}
	return s.Repo.DeleteProduct(oid)
}

// CreateReview stores a buyer's review of a product.
func (s *DefaultCatalogService) CreateReview(r *models.Review) error {
	if r.ProductID == "" || r.Email == "" {
		return fmt.Errorf("review requires productId and email")
	}
	if r.Rating < 1 || r.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	return s.Repo.CreateReview(r)
}

// GetReviewsByProduct lists reviews for a product.
func (s *DefaultCatalogService) GetReviewsByProduct(productID string) ([]models.Review, error) {
	return s.Repo.GetReviewsByProduct(productID)
}

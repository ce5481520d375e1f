package handlers

import (
	"errors"
	"net/http"

	"bookbarn/middleware"
	"bookbarn/models"
	"bookbarn/services/catalog"
	"bookbarn/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CatalogHandler serves category, product and review endpoints.
type CatalogHandler struct {
	Service catalog.CatalogService
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

// GetCategoriesHandler handles GET /categories.
func (h *CatalogHandler) GetCategoriesHandler(c *gin.Context) {
	categories, err := h.Service.GetCategories()
	if err != nil {
		utils.GetLogger().Error("Category list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetCategoryHandler handles GET /categories/:id.
func (h *CatalogHandler) GetCategoryHandler(c *gin.Context) {
	id := c.Param("id")
	cat, err := h.Service.GetCategory(id)
	if err != nil {
		if errors.Is(err, primitive.ErrInvalidHex) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
			return
		}
		utils.GetLogger().Error("Category fetch failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if cat == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}
	c.JSON(http.StatusOK, cat)
}

// CreateProductHandler handles POST /products (seller only). Ownership is the
// token email regardless of what the body claims.
func (h *CatalogHandler) CreateProductHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.Product
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid product payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if resolved, ok := middleware.ResolvedEmail(c); ok {
		req.Email = resolved
	}

	if err := h.Service.CreateProduct(&req); err != nil {
		logger.Error("Product create failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, req)
}

// GetProductsByTitleHandler handles GET /products/:titleName.
func (h *CatalogHandler) GetProductsByTitleHandler(c *gin.Context) {
	title := c.Param("titleName")
	products, err := h.Service.GetProductsByTitle(title)
	if err != nil {
		utils.GetLogger().Error("Product search failed", zap.String("title", title), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetCategoryProductsHandler handles GET /categories/:id/products.
func (h *CatalogHandler) GetCategoryProductsHandler(c *gin.Context) {
	categoryID := c.Param("id")
	products, err := h.Service.GetProductsByCategory(categoryID)
	if err != nil {
		if errors.Is(err, primitive.ErrInvalidHex) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
			return
		}
		utils.GetLogger().Error("Product list failed", zap.String("categoryId", categoryID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}

// MyProductsHandler handles GET /myProducts?email= behind the access guard.
// The query email must match the token email.
func (h *CatalogHandler) MyProductsHandler(c *gin.Context) {
	email := c.Query("email")
	resolved, ok := middleware.ResolvedEmail(c)
	if !ok || email != resolved {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden Access"})
		return
	}

	products, err := h.Service.GetProductsByEmail(email)
	if err != nil {
		utils.GetLogger().Error("My products failed", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetAdvertisedHandler handles GET /products/advertised.
func (h *CatalogHandler) GetAdvertisedHandler(c *gin.Context) {
	products, err := h.Service.GetAdvertisedProducts()
	if err != nil {
		utils.GetLogger().Error("Advertised list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}

// AdvertiseProductHandler handles PUT /products/advertised/:id (seller only).
func (h *CatalogHandler) AdvertiseProductHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.AdvertiseProduct(id); err != nil {
		if errors.Is(err, primitive.ErrInvalidHex) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		utils.GetLogger().Error("Advertise failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

// DeleteProductHandler handles DELETE /products/:id (seller only).
func (h *CatalogHandler) DeleteProductHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.DeleteProduct(id); err != nil {
		if errors.Is(err, primitive.ErrInvalidHex) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		utils.GetLogger().Error("Product delete failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// CreateReviewHandler handles POST /reviews behind the access guard.
func (h *CatalogHandler) CreateReviewHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.Review
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid review payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if resolved, ok := middleware.ResolvedEmail(c); ok {
		req.Email = resolved
	}

	if err := h.Service.CreateReview(&req); err != nil {
		logger.Error("Review create failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, req)
}

// GetReviewsHandler handles GET /reviews?productId=.
func (h *CatalogHandler) GetReviewsHandler(c *gin.Context) {
	productID := c.Query("productId")
	if productID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId query parameter is required"})
		return
	}

	reviews, err := h.Service.GetReviewsByProduct(productID)
	if err != nil {
		utils.GetLogger().Error("Review list failed", zap.String("productId", productID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

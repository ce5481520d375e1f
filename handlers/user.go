package handlers

import (
	"errors"
	"net/http"

	"bookbarn/middleware"
	"bookbarn/models"
	"bookbarn/services/user"
	"bookbarn/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// UserHandler serves account, role-probe and token endpoints.
type UserHandler struct {
	Service user.UserService
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// CreateUserHandler handles POST /users. Re-posting an existing email is a
// no-op so social-login clients can register on every sign-in.
func (h *UserHandler) CreateUserHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.User
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid user payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Service.SaveUser(req); err != nil {
		logger.Error("User save failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// A role probe before registration caches the empty role; drop it so the
	// new account's role bites immediately instead of after the TTL.
	middleware.InvalidateRoleCache(req.Email)
	c.JSON(http.StatusCreated, gin.H{"acknowledged": true})
}

// MeHandler handles GET /me behind the access guard: the account behind the
// token, straight from the store.
func (h *UserHandler) MeHandler(c *gin.Context) {
	email, ok := middleware.ResolvedEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
		return
	}

	usr, err := h.Service.GetUserByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Account fetch failed", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if usr == nil {
		// The token outlived the account.
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// GetAllUsersHandler handles GET /users (admin only).
func (h *UserHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := h.Service.GetAllUsers()
	if err != nil {
		utils.GetLogger().Error("Failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// IsAdminHandler handles GET /users/admin/:email.
func (h *UserHandler) IsAdminHandler(c *gin.Context) {
	ok, err := h.Service.IsAdmin(c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": ok})
}

// IsSellerHandler handles GET /users/seller/:email.
func (h *UserHandler) IsSellerHandler(c *gin.Context) {
	ok, err := h.Service.IsSeller(c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"isSeller": ok})
}

// IsVerifiedHandler handles GET /users/verify/:email.
func (h *UserHandler) IsVerifiedHandler(c *gin.Context) {
	ok, err := h.Service.IsVerified(c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"isVerified": ok})
}

// VerifyUserHandler handles PUT /users/verified/:id and
// PUT /users/sellers/verified/:id (admin only). Upserts.
func (h *UserHandler) VerifyUserHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.VerifyUser(id); err != nil {
		if errors.Is(err, primitive.ErrInvalidHex) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}
		utils.GetLogger().Error("Verify failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

// DeleteUserHandler handles DELETE /users/:id, /users/sellers/:id and
// /users/buyers/:id (admin only).
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	email, err := h.Service.DeleteUser(id)
	if err != nil {
		if errors.Is(err, primitive.ErrInvalidHex) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}
		if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		logger.Error("Delete error", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Tokens stay valid for their full window; dropping the cached role is
	// the only revocation the account gets.
	middleware.InvalidateRoleCache(email)
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

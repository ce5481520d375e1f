package handlers

import (
	"net/http"

	"bookbarn/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JWTHandler handles GET /jwt?email=. A known account gets a signed 7-day
// token; an unknown email gets 403 with an empty accessToken body — the
// refusal is part of the contract, clients check the field, not the error.
func (h *UserHandler) JWTHandler(c *gin.Context) {
	logger := utils.GetLogger()

	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter is required"})
		return
	}

	token, err := h.Service.IssueToken(email)
	if err != nil {
		logger.Error("Token issuance failed", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if token == "" {
		c.JSON(http.StatusForbidden, gin.H{"accessToken": ""})
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}

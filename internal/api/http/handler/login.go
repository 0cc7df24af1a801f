package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/profilehub/accounts-server/internal/logger"
)

// LoginService verifies credentials and issues access tokens.
type LoginService interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// Login handles the token-issuing endpoint.
type Login struct {
	service LoginService
	logger  *logger.Logger
}

// NewLogin creates a new Login handler.
func NewLogin(service LoginService, logger *logger.Logger) *Login {
	return &Login{service: service, logger: logger}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Handle verifies the credentials and returns a bearer token.
func (h *Login) Handle(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

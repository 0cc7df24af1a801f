package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/profilehub/accounts-server/internal/model"
)

// handleError maps domain errors onto HTTP responses. Permission denials
// carry no detail beyond the fact of denial.
func handleError(c *gin.Context, err error) {
	if ve, ok := model.AsValidationError(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"info": ve.Info})
		return
	}

	switch {
	case errors.Is(err, model.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	case errors.Is(err, model.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, model.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "conflict"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

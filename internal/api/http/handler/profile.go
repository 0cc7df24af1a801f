package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/profilehub/accounts-server/internal/logger"
	"github.com/profilehub/accounts-server/internal/model"
	"github.com/profilehub/accounts-server/internal/policy"
)

// ProfileService defines profile operations.
type ProfileService interface {
	Get(ctx context.Context, id uuid.UUID) (model.Profile, error)
	UpdateImage(ctx context.Context, id uuid.UUID, filename string, reader io.Reader, size int64, contentType string) (model.Profile, error)
	DownloadImage(ctx context.Context, id uuid.UUID) (io.ReadCloser, error)
}

// Profile handles HTTP endpoints for profiles.
type Profile struct {
	service        ProfileService
	policy         policy.Profile
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewProfile creates a new Profile handler.
func NewProfile(service ProfileService, contextManager model.ContextManager, logger *logger.Logger) *Profile {
	return &Profile{
		service:        service,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Get returns a single profile.
func (h *Profile) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	profile, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, profileResponse(profile))
}

// Update replaces the profile image from a multipart upload. Owner only.
func (h *Profile) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	target, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	if err := h.authorize(c, target); err != nil {
		handleError(c, err)
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"info": "Please provide an image file."})
		return
	}
	defer file.Close()

	profile, err := h.service.UpdateImage(
		c.Request.Context(), id,
		header.Filename, file, header.Size, header.Header.Get("Content-Type"),
	)
	if err != nil {
		h.logger.Error("Profile handler: image update failed",
			"profile_id", id,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, profileResponse(profile))
}

// GetImage streams the stored profile image.
func (h *Profile) GetImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	reader, err := h.service.DownloadImage(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	defer reader.Close()

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		h.logger.Error("Profile handler: image stream failed",
			"profile_id", id,
			"error", err.Error())
	}
}

func (h *Profile) authorize(c *gin.Context, target model.Profile) error {
	requester, ok := h.contextManager.GetUserIDFromContext(c.Request.Context())
	if h.policy.CanAccess(c.Request.Method, requester, target) {
		return nil
	}
	if !ok {
		return model.ErrUnauthenticated
	}
	return model.ErrPermissionDenied
}

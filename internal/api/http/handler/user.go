package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/profilehub/accounts-server/internal/logger"
	"github.com/profilehub/accounts-server/internal/model"
	"github.com/profilehub/accounts-server/internal/policy"
)

// UserService defines user management operations.
type UserService interface {
	Validate(method string, in model.UserInput) error
	Create(ctx context.Context, in model.UserInput) (model.User, model.Profile, error)
	Update(ctx context.Context, method string, id uuid.UUID, in model.UserInput) (model.User, error)
	Get(ctx context.Context, id uuid.UUID) (model.User, model.Profile, error)
	List(ctx context.Context) ([]model.User, map[uuid.UUID]model.Profile, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// User handles HTTP endpoints for user accounts.
type User struct {
	service        UserService
	policy         policy.User
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(service UserService, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{
		service:        service,
		contextManager: contextManager,
		logger:         logger,
	}
}

// userRequest is the write-only request body for create and update.
// Pointer fields distinguish "absent" from "empty".
type userRequest struct {
	Email       *string `json:"email"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Password    *string `json:"password"`
	OldPassword *string `json:"old_password"`
}

func (r userRequest) input() model.UserInput {
	return model.UserInput{
		Email:       r.Email,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Password:    r.Password,
		OldPassword: r.OldPassword,
	}
}

// List returns all users. Allowed for anonymous requesters.
func (h *User) List(c *gin.Context) {
	users, profiles, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Error("User handler: list failed", "error", err.Error())
		handleError(c, err)
		return
	}

	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, userResponse(u, profiles[u.ID]))
	}

	c.JSON(http.StatusOK, resp)
}

// Create registers a new account. Allowed for anonymous requesters.
func (h *User) Create(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, profile, err := h.service.Create(c.Request.Context(), req.input())
	if err != nil {
		h.logger.Error("User handler: create failed", "error", err.Error())
		handleError(c, err)
		return
	}

	h.logger.Info("User handler: user created",
		"user_id", user.ID,
		"username", user.Username)

	c.JSON(http.StatusCreated, userResponse(user, profile))
}

// Get returns a single user.
func (h *User) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	user, profile, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, userResponse(user, profile))
}

// Update mutates a user. Owner only.
func (h *User) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	target, _, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	if err := h.authorize(c, target); err != nil {
		handleError(c, err)
		return
	}

	user, err := h.service.Update(c.Request.Context(), c.Request.Method, id, req.input())
	if err != nil {
		h.logger.Error("User handler: update failed",
			"user_id", id,
			"error", err.Error())
		handleError(c, err)
		return
	}

	_, profile, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, userResponse(user, profile))
}

// Delete removes a user and, by cascade, its profile. Owner only.
func (h *User) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	target, _, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	if err := h.authorize(c, target); err != nil {
		handleError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.logger.Error("User handler: delete failed",
			"user_id", id,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *User) authorize(c *gin.Context, target model.User) error {
	requester, ok := h.contextManager.GetUserIDFromContext(c.Request.Context())
	if h.policy.CanAccess(c.Request.Method, requester, target) {
		return nil
	}
	if !ok {
		return model.ErrUnauthenticated
	}
	return model.ErrPermissionDenied
}

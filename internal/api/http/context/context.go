// Package context carries the authenticated requester identity through
// HTTP request contexts.
package context

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

// userIDKey is the context key under which the requester's user ID is stored.
const userIDKey contextKey = "user_id"

// Manager implements model.ContextManager over request contexts.
type Manager struct{}

// NewManager creates a new HTTP context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserIDToContext returns a context carrying the requester's user ID.
func (m *Manager) SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext retrieves the requester's user ID, reporting
// whether one was set. A missing ID means the requester is anonymous.
func (m *Manager) GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

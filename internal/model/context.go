package model

import (
	"context"

	"github.com/google/uuid"
)

// ContextManager carries the authenticated requester identity through
// request contexts. A missing identity means the requester is anonymous.
type ContextManager interface {
	SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context
	GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool)
}

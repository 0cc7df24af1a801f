package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProfileStore defines persistence operations for profiles.
type ProfileStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (Profile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (Profile, error)
	CreateForUser(ctx context.Context, userID uuid.UUID) (Profile, error)
	UpdateImageKey(ctx context.Context, id uuid.UUID, imageKey string) (Profile, error)
}

// Profile extends a user with an optional image. Exactly one profile
// exists per user; it is created in the same procedure as the user and
// removed by cascade when the user is deleted.
type Profile struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ImageKey  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

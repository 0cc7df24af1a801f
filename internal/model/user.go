package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, user User) (User, error)
	Update(ctx context.Context, id uuid.UUID, fields UserFields) (User, error)
	// UpdatePasswordHash replaces the stored credential only if it still
	// equals expectedHash. Returns ErrConflict when the credential changed
	// since it was read.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, newHash, expectedHash string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// User represents a stored account with its hashed credential.
// PasswordHash never leaves the service layer.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserFields holds a partial set of mutable user fields. Nil means
// "leave unchanged".
type UserFields struct {
	Email     *string
	FirstName *string
	LastName  *string
}

// UserInput is the write-side field mapping for create and update
// requests. Username is absent: it is read-only and derived by the
// assignment rule. Password and OldPassword are transient: they are
// consumed during validation and never persisted or serialized.
type UserInput struct {
	Email       *string
	FirstName   *string
	LastName    *string
	Password    *string
	OldPassword *string
}

// Fields returns the persistable subset of the input.
func (in UserInput) Fields() UserFields {
	return UserFields{
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	}
}

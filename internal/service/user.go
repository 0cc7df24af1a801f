package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/profilehub/accounts-server/internal/logger"
	"github.com/profilehub/accounts-server/internal/model"
)

// createAttempts bounds retries when a derived username loses the race
// against a concurrent creation and the unique index rejects the insert.
const createAttempts = 3

type User struct {
	userStore    model.UserStore
	profileStore model.ProfileStore
	storage      model.Storage
	logger       *logger.Logger
}

func NewUser(
	userStore model.UserStore,
	profileStore model.ProfileStore,
	storage model.Storage,
	logger *logger.Logger,
) *User {
	return &User{
		userStore:    userStore,
		profileStore: profileStore,
		storage:      storage,
		logger:       logger,
	}
}

// Validate enforces the method-level password rules: creation requires a
// password, while an update that changes the password must carry the old
// one. All other inputs pass through unchanged.
func (s *User) Validate(method string, in model.UserInput) error {
	switch method {
	case http.MethodPost:
		if in.Password == nil || *in.Password == "" {
			return model.NewValidationError("Please provide a password.")
		}
	case http.MethodPut, http.MethodPatch:
		if in.Password != nil && in.OldPassword == nil {
			return model.NewValidationError("Please provide the old password.")
		}
	}
	return nil
}

// Create persists a new user and its profile as one explicit procedure:
// validate, hash the credential, assign a username, insert the user, then
// insert the empty profile. A profile insert failure fails the request.
func (s *User) Create(ctx context.Context, in model.UserInput) (model.User, model.Profile, error) {
	if err := s.Validate(http.MethodPost, in); err != nil {
		return model.User{}, model.Profile{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, model.Profile{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var created model.User
	for attempt := 0; ; attempt++ {
		username, err := s.assignUsername(ctx, deref(in.FirstName), deref(in.LastName))
		if err != nil {
			return model.User{}, model.Profile{}, fmt.Errorf("failed to assign username: %w", err)
		}

		now := time.Now()
		created, err = s.userStore.Create(ctx, model.User{
			ID:           uuid.New(),
			Username:     username,
			Email:        deref(in.Email),
			FirstName:    deref(in.FirstName),
			LastName:     deref(in.LastName),
			PasswordHash: string(hash),
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if errors.Is(err, model.ErrConflict) && attempt < createAttempts-1 {
			s.logger.Info("User service: username taken concurrently, retrying",
				"username", username)
			continue
		}
		if err != nil {
			return model.User{}, model.Profile{}, fmt.Errorf("failed to create user: %w", err)
		}
		break
	}

	profile, err := s.profileStore.CreateForUser(ctx, created.ID)
	if err != nil {
		s.logger.Error("User service: user persisted without profile",
			"user_id", created.ID,
			"error", err.Error())
		return model.User{}, model.Profile{}, fmt.Errorf("failed to create profile for user %s: %w", created.ID, err)
	}

	s.logger.Info("User service: user created",
		"user_id", created.ID,
		"username", created.Username)

	return created, profile, nil
}

// Update applies a partial update. When the input carries a password, the
// old password is verified against the stored hash and the credential is
// replaced first, via compare-and-set so a concurrent credential change
// surfaces as a conflict instead of being overwritten. Remaining fields
// are applied through the generic update path afterwards.
func (s *User) Update(ctx context.Context, method string, id uuid.UUID, in model.UserInput) (model.User, error) {
	if err := s.Validate(method, in); err != nil {
		return model.User{}, err
	}

	existing, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return model.User{}, err
	}

	if in.Password != nil {
		err := bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(*in.OldPassword))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return model.User{}, model.NewValidationError("Old password is incorrect.")
		}
		if err != nil {
			return model.User{}, fmt.Errorf("failed to verify old password: %w", err)
		}

		newHash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return model.User{}, fmt.Errorf("failed to hash password: %w", err)
		}

		if err := s.userStore.UpdatePasswordHash(ctx, id, string(newHash), existing.PasswordHash); err != nil {
			return model.User{}, fmt.Errorf("failed to update password: %w", err)
		}

		s.logger.Info("User service: password changed", "user_id", id)
	}

	updated, err := s.userStore.Update(ctx, id, in.Fields())
	if err != nil {
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return updated, nil
}

// Get returns a user together with its profile.
func (s *User) Get(ctx context.Context, id uuid.UUID) (model.User, model.Profile, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return model.User{}, model.Profile{}, err
	}

	profile, err := s.profileStore.GetByUserID(ctx, user.ID)
	if err != nil {
		return model.User{}, model.Profile{}, fmt.Errorf("failed to get profile for user %s: %w", user.ID, err)
	}

	return user, profile, nil
}

// List returns all users with their profiles.
func (s *User) List(ctx context.Context) ([]model.User, map[uuid.UUID]model.Profile, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list users: %w", err)
	}

	profiles := make(map[uuid.UUID]model.Profile, len(users))
	for _, u := range users {
		p, err := s.profileStore.GetByUserID(ctx, u.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get profile for user %s: %w", u.ID, err)
		}
		profiles[u.ID] = p
	}

	return users, profiles, nil
}

// Delete removes a user; the profile row goes with it by cascade. The
// stored profile image, if any, is removed best-effort afterwards.
func (s *User) Delete(ctx context.Context, id uuid.UUID) error {
	profile, err := s.profileStore.GetByUserID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.userStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	if profile.ImageKey != "" {
		if err := s.storage.Delete(ctx, profile.ImageKey); err != nil {
			s.logger.Error("User service: failed to delete profile image",
				"user_id", id,
				"key", profile.ImageKey,
				"error", err.Error())
		}
	}

	s.logger.Info("User service: user deleted", "user_id", id)

	return nil
}

// assignUsername derives a unique username from the first and last name,
// appending _1, _2, ... until no existing user holds the candidate. The
// check-then-insert window is closed by the unique index plus the retry
// in Create.
func (s *User) assignUsername(ctx context.Context, firstName, lastName string) (string, error) {
	base := strings.ToLower(firstName + "_" + lastName)
	candidate := base
	for counter := 1; ; counter++ {
		exists, err := s.userStore.ExistsByUsername(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check username existence: %w", err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s_%d", base, counter)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

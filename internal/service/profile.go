package service

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/profilehub/accounts-server/internal/logger"
	"github.com/profilehub/accounts-server/internal/model"
)

type Profile struct {
	profileStore model.ProfileStore
	storage      model.Storage
	logger       *logger.Logger
}

func NewProfile(
	profileStore model.ProfileStore,
	storage model.Storage,
	logger *logger.Logger,
) *Profile {
	return &Profile{
		profileStore: profileStore,
		storage:      storage,
		logger:       logger,
	}
}

// Get returns a profile by id.
func (s *Profile) Get(ctx context.Context, id uuid.UUID) (model.Profile, error) {
	return s.profileStore.GetByID(ctx, id)
}

// UpdateImage stores the uploaded image under the owner's generated key
// and records the key on the profile. Re-uploading with the same
// extension overwrites the previous object in place.
func (s *Profile) UpdateImage(ctx context.Context, id uuid.UUID, filename string, reader io.Reader, size int64, contentType string) (model.Profile, error) {
	profile, err := s.profileStore.GetByID(ctx, id)
	if err != nil {
		return model.Profile{}, err
	}

	key := ImagePath(profile.UserID, filename)

	if err := s.storage.Upload(ctx, key, reader, size, contentType); err != nil {
		return model.Profile{}, fmt.Errorf("failed to upload profile image: %w", err)
	}

	updated, err := s.profileStore.UpdateImageKey(ctx, id, key)
	if err != nil {
		return model.Profile{}, fmt.Errorf("failed to update profile image key: %w", err)
	}

	s.logger.Info("Profile service: image updated",
		"profile_id", id,
		"key", key)

	return updated, nil
}

// DownloadImage streams the stored profile image.
func (s *Profile) DownloadImage(ctx context.Context, id uuid.UUID) (io.ReadCloser, error) {
	profile, err := s.profileStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if profile.ImageKey == "" {
		return nil, model.ErrNotFound
	}

	reader, err := s.storage.Download(ctx, profile.ImageKey)
	if err != nil {
		return nil, fmt.Errorf("failed to download profile image: %w", err)
	}

	return reader, nil
}

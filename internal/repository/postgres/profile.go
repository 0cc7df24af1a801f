package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/profilehub/accounts-server/internal/model"
)

var _ model.ProfileStore = (*ProfileRepository)(nil)

type ProfileRepository struct {
	db *Connection
}

func NewProfileRepository(db *Connection) *ProfileRepository {
	return &ProfileRepository{
		db: db,
	}
}

func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Profile, error) {
	var profile model.Profile
	query := `SELECT id, user_id, image_key, created_at, updated_at
			  FROM profiles WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&profile.ID, &profile.UserID, &profile.ImageKey, &profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Profile{}, model.ErrNotFound
		}
		return model.Profile{}, fmt.Errorf("failed to get profile by id: %w", err)
	}

	return profile, nil
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (model.Profile, error) {
	var profile model.Profile
	query := `SELECT id, user_id, image_key, created_at, updated_at
			  FROM profiles WHERE user_id = $1`

	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.ID, &profile.UserID, &profile.ImageKey, &profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Profile{}, model.ErrNotFound
		}
		return model.Profile{}, fmt.Errorf("failed to get profile by user id: %w", err)
	}

	return profile, nil
}

func (r *ProfileRepository) CreateForUser(ctx context.Context, userID uuid.UUID) (model.Profile, error) {
	query := `INSERT INTO profiles (id, user_id, image_key, created_at, updated_at)
			  VALUES ($1, $2, '', $3, $3)
			  RETURNING id, user_id, image_key, created_at, updated_at`

	var profile model.Profile
	err := r.db.QueryRow(ctx, query, uuid.New(), userID, time.Now()).Scan(
		&profile.ID, &profile.UserID, &profile.ImageKey, &profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		return model.Profile{}, fmt.Errorf("failed to create profile: %w", err)
	}

	return profile, nil
}

func (r *ProfileRepository) UpdateImageKey(ctx context.Context, id uuid.UUID, imageKey string) (model.Profile, error) {
	query := `UPDATE profiles SET image_key = $2, updated_at = $3
			  WHERE id = $1
			  RETURNING id, user_id, image_key, created_at, updated_at`

	var profile model.Profile
	err := r.db.QueryRow(ctx, query, id, imageKey, time.Now()).Scan(
		&profile.ID, &profile.UserID, &profile.ImageKey, &profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Profile{}, model.ErrNotFound
		}
		return model.Profile{}, fmt.Errorf("failed to update profile image key: %w", err)
	}

	return profile, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/retail-pos/internal/models"
	"github.com/aaravmahajanofficial/retail-pos/internal/utils"
	"github.com/google/uuid"
)

type ProfileRepository interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	CreateProfile(ctx context.Context, profile *models.Profile) error
}

type profileRepository struct {
	DB *sql.DB
}

func NewProfileRepo(db *sql.DB) ProfileRepository {
	return &profileRepository{DB: db}
}

func (r *profileRepository) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT user_id, role, created_at, updated_at FROM profiles WHERE user_id = $1`

	profile := &models.Profile{}

	err := r.DB.QueryRowContext(dbCtx, query, userID).Scan(&profile.UserID, &profile.Role, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return profile, nil
}

// CreateProfile never overwrites an existing profile. profile always ends up
// holding the stored role.
func (r *profileRepository) CreateProfile(ctx context.Context, profile *models.Profile) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO profiles (user_id, role, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING role, created_at, updated_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, profile.UserID, profile.Role).Scan(&profile.Role, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

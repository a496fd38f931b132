package repository

import (
	"context"
	"errors"

	"github.com/dimitrije/teampulse-api/internal/database"
	"github.com/dimitrije/teampulse-api/internal/models"
	"github.com/jackc/pgx/v5"
)

type PreferencesRepository struct {
	db *database.DB
}

func NewPreferencesRepository(db *database.DB) *PreferencesRepository {
	return &PreferencesRepository{db: db}
}

func (r *PreferencesRepository) GetByUserID(ctx context.Context, userID string) (*models.UserPreferences, error) {
	var p models.UserPreferences
	err := r.db.Pool.QueryRow(ctx, `
		SELECT user_id, username, dark_mode, created_at, updated_at
		FROM user_preferences WHERE user_id = $1
	`, userID).Scan(&p.UserID, &p.Username, &p.DarkMode, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("get preferences", err)
	}
	return &p, nil
}

// Save inserts or updates the row. created_at is only written on insert.
func (r *PreferencesRepository) Save(ctx context.Context, prefs *models.UserPreferences) (*models.UserPreferences, error) {
	var p models.UserPreferences
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO user_preferences (user_id, username, dark_mode, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET username = EXCLUDED.username, dark_mode = EXCLUDED.dark_mode, updated_at = EXCLUDED.updated_at
		RETURNING user_id, username, dark_mode, created_at, updated_at
	`, prefs.UserID, prefs.Username, prefs.DarkMode, prefs.CreatedAt, prefs.UpdatedAt).Scan(
		&p.UserID, &p.Username, &p.DarkMode, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, storageErr("save preferences", err)
	}
	return &p, nil
}

func (r *PreferencesRepository) Delete(ctx context.Context, userID string) (bool, error) {
	result, err := r.db.Pool.Exec(ctx, `DELETE FROM user_preferences WHERE user_id = $1`, userID)
	if err != nil {
		return false, storageErr("delete preferences", err)
	}
	return result.RowsAffected() > 0, nil
}

package services

import (
	"context"
	"time"

	"github.com/dimitrije/teampulse-api/internal/models"
	"github.com/dimitrije/teampulse-api/internal/validation"
)

type PreferencesRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.UserPreferences, error)
	Save(ctx context.Context, prefs *models.UserPreferences) (*models.UserPreferences, error)
	Delete(ctx context.Context, userID string) (bool, error)
}

type PreferencesService struct {
	repo PreferencesRepository
	now  func() time.Time
}

func NewPreferencesService(repo PreferencesRepository) *PreferencesService {
	return &PreferencesService{repo: repo, now: time.Now}
}

// GetPreferences returns the stored row, creating one with defaults on first
// access.
func (s *PreferencesService) GetPreferences(ctx context.Context, userID string) (*models.UserPreferences, error) {
	id, err := validation.UserID(userID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByUserID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	return s.repo.Save(ctx, models.NewDefaultPreferences(id, s.now()))
}

// UpdatePreferences applies the non-nil fields.
func (s *PreferencesService) UpdatePreferences(ctx context.Context, userID string, username *string, darkMode *bool) (*models.UserPreferences, error) {
	current, err := s.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated := *current
	if username != nil {
		name, err := validation.Username(*username)
		if err != nil {
			return nil, err
		}
		updated.Username = name
	}
	if darkMode != nil {
		updated.DarkMode = *darkMode
	}
	updated.UpdatedAt = s.now().UTC()

	return s.repo.Save(ctx, &updated)
}

func (s *PreferencesService) DeletePreferences(ctx context.Context, userID string) (bool, error) {
	id, err := validation.UserID(userID)
	if err != nil {
		return false, err
	}
	return s.repo.Delete(ctx, id)
}

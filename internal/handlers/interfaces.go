package handlers

import (
	"context"

	"github.com/dimitrije/teampulse-api/internal/models"
)

// TeamServiceInterface defines the methods used by handlers from TeamService
type TeamServiceInterface interface {
	GetAllMembers(ctx context.Context) ([]models.TeamMember, error)
	GetMember(ctx context.Context, id string) (*models.TeamMember, error)
	SubmitMood(ctx context.Context, memberID, emoji, label string) (*models.MoodEntry, error)
	CreateMember(ctx context.Context, name, role, status string, avatarURL *string) (*models.TeamMember, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.TeamMember, error)
	DeleteMember(ctx context.Context, id string) error
}

// PreferencesServiceInterface defines the methods used by handlers from PreferencesService
type PreferencesServiceInterface interface {
	GetPreferences(ctx context.Context, userID string) (*models.UserPreferences, error)
	UpdatePreferences(ctx context.Context, userID string, username *string, darkMode *bool) (*models.UserPreferences, error)
	DeletePreferences(ctx context.Context, userID string) (bool, error)
}

// HealthChecker is satisfied by the database pool.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

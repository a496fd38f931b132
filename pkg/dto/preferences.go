package dto

import (
	"time"

	"github.com/dimitrije/teampulse-api/internal/models"
)

// UpdatePreferencesRequest fields are optional; nil leaves the stored value.
type UpdatePreferencesRequest struct {
	Username *string `json:"username"`
	DarkMode *bool   `json:"dark_mode"`
}

type PreferencesResponse struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	DarkMode  bool      `json:"dark_mode"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewPreferencesResponse(p *models.UserPreferences) PreferencesResponse {
	return PreferencesResponse{
		UserID:    p.UserID,
		Username:  p.Username,
		DarkMode:  p.DarkMode,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}

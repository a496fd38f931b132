package models

import "time"

const DefaultUsername = "Guest"

type UserPreferences struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	DarkMode  bool      `json:"dark_mode"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewDefaultPreferences(userID string, now time.Time) *UserPreferences {
	now = now.UTC()
	return &UserPreferences{
		UserID:    userID,
		Username:  DefaultUsername,
		DarkMode:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

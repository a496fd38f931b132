package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive  = "active"
	StatusAway    = "away"
	StatusOffline = "offline"
)

type TeamMember struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	Status    string  `json:"status"`
	AvatarURL *string `json:"avatar_url,omitempty"`

	// MoodEntries is ordered newest first.
	MoodEntries []MoodEntry `json:"mood_entries"`
}

// CurrentMood is the most recent entry, or nil when the member has none.
func (m *TeamMember) CurrentMood() *MoodEntry {
	if len(m.MoodEntries) == 0 {
		return nil
	}
	return &m.MoodEntries[0]
}

func (m *TeamMember) MoodHistory() []MoodEntry {
	return m.MoodEntries
}

func NewTeamMember(name, role, status string, avatarURL *string) *TeamMember {
	return &TeamMember{
		ID:          uuid.NewString(),
		Name:        name,
		Role:        role,
		Status:      status,
		AvatarURL:   avatarURL,
		MoodEntries: []MoodEntry{},
	}
}

type MoodEntry struct {
	ID        string    `json:"id"`
	MemberID  string    `json:"member_id"`
	Emoji     string    `json:"emoji"`
	Label     string    `json:"label"`
	Timestamp time.Time `json:"timestamp"`
}

func NewMoodEntry(memberID, emoji, label string, now time.Time) MoodEntry {
	return MoodEntry{
		ID:        uuid.NewString(),
		MemberID:  memberID,
		Emoji:     emoji,
		Label:     label,
		Timestamp: now.UTC(),
	}
}

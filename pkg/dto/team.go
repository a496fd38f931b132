package dto

import (
	"time"

	"github.com/dimitrije/teampulse-api/internal/models"
)

type SubmitMoodRequest struct {
	Emoji string `json:"emoji"`
	Label string `json:"label"`
}

type CreateMemberRequest struct {
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	Status    string  `json:"status"`
	AvatarURL *string `json:"avatarUrl"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type MoodEntryResponse struct {
	Emoji     string    `json:"emoji"`
	Label     string    `json:"label"`
	Timestamp time.Time `json:"timestamp"`
}

// TeamMemberResponse always carries avatarUrl and currentMood, as null when
// unset, and a non-nil moodHistory.
type TeamMemberResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Role        string              `json:"role"`
	AvatarURL   *string             `json:"avatarUrl"`
	Status      string              `json:"status"`
	CurrentMood *MoodEntryResponse  `json:"currentMood"`
	MoodHistory []MoodEntryResponse `json:"moodHistory"`
}

func NewMoodEntryResponse(e models.MoodEntry) MoodEntryResponse {
	return MoodEntryResponse{
		Emoji:     e.Emoji,
		Label:     e.Label,
		Timestamp: e.Timestamp.UTC(),
	}
}

func NewTeamMemberResponse(m *models.TeamMember) TeamMemberResponse {
	history := make([]MoodEntryResponse, len(m.MoodEntries))
	for i, e := range m.MoodEntries {
		history[i] = NewMoodEntryResponse(e)
	}

	resp := TeamMemberResponse{
		ID:          m.ID,
		Name:        m.Name,
		Role:        m.Role,
		AvatarURL:   m.AvatarURL,
		Status:      m.Status,
		MoodHistory: history,
	}
	if current := m.CurrentMood(); current != nil {
		mood := NewMoodEntryResponse(*current)
		resp.CurrentMood = &mood
	}
	return resp
}

package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dimitrije/teampulse-api/internal/database"
	"github.com/dimitrije/teampulse-api/internal/models"
)

// Fixtures inserts test rows directly, bypassing services
type Fixtures struct {
	db      *database.DB
	counter int
}

func NewFixtures(db *database.DB) *Fixtures {
	return &Fixtures{db: db}
}

// CreateMember inserts a member with generated defaults
func (f *Fixtures) CreateMember(t *testing.T, opts ...MemberOption) *models.TeamMember {
	t.Helper()
	f.counter++

	member := &models.TeamMember{
		ID:          fmt.Sprintf("member-%d", f.counter),
		Name:        fmt.Sprintf("Test Member %d", f.counter),
		Role:        "Engineer",
		Status:      models.StatusActive,
		MoodEntries: []models.MoodEntry{},
	}

	for _, opt := range opts {
		opt(member)
	}

	_, err := f.db.Pool.Exec(context.Background(), `
		INSERT INTO team_members (id, name, role, avatar_url, status)
		VALUES ($1, $2, $3, $4, $5)
	`, member.ID, member.Name, member.Role, member.AvatarURL, member.Status)
	if err != nil {
		t.Fatalf("failed to create member: %v", err)
	}

	return member
}

// MemberOption configures a test member
type MemberOption func(*models.TeamMember)

func WithMemberID(id string) MemberOption {
	return func(m *models.TeamMember) {
		m.ID = id
	}
}

func WithStatus(status string) MemberOption {
	return func(m *models.TeamMember) {
		m.Status = status
	}
}

func WithAvatar(url string) MemberOption {
	return func(m *models.TeamMember) {
		m.AvatarURL = &url
	}
}

// AddMood inserts a mood entry for member recorded at the given instant
func (f *Fixtures) AddMood(t *testing.T, member *models.TeamMember, emoji, label string, at time.Time) models.MoodEntry {
	t.Helper()
	f.counter++

	entry := models.MoodEntry{
		ID:        fmt.Sprintf("entry-%d", f.counter),
		MemberID:  member.ID,
		Emoji:     emoji,
		Label:     label,
		Timestamp: at.UTC(),
	}

	_, err := f.db.Pool.Exec(context.Background(), `
		INSERT INTO mood_entries (id, member_id, emoji, label, timestamp)
		VALUES ($1, $2, $3, $4, $5)
	`, entry.ID, entry.MemberID, entry.Emoji, entry.Label, entry.Timestamp)
	if err != nil {
		t.Fatalf("failed to add mood entry: %v", err)
	}

	return entry
}

package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamMember_CurrentMood_ReturnsFirstEntry(t *testing.T) {
	member := TeamMember{
		ID: "m1", Name: "Test", Role: "Dev", Status: StatusActive,
		MoodEntries: []MoodEntry{
			{ID: "1", MemberID: "m1", Emoji: "a", Label: "A", Timestamp: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)},
			{ID: "2", MemberID: "m1", Emoji: "b", Label: "B", Timestamp: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		},
	}

	current := member.CurrentMood()

	require.NotNil(t, current)
	assert.Equal(t, "1", current.ID)
}

func TestTeamMember_CurrentMood_NilWhenEmpty(t *testing.T) {
	member := TeamMember{ID: "m1", Name: "Test", Role: "Dev", Status: StatusActive}

	assert.Nil(t, member.CurrentMood())
}

func TestTeamMember_MoodHistoryIsEntries(t *testing.T) {
	entries := []MoodEntry{{ID: "1", MemberID: "m1", Emoji: "a", Label: "A"}}
	member := TeamMember{ID: "m1", MoodEntries: entries}

	history := member.MoodHistory()

	require.Len(t, history, 1)
	assert.Same(t, &entries[0], &history[0])
}

func TestNewTeamMember(t *testing.T) {
	avatar := "http://example.com/a.png"

	member := NewTeamMember("Alice", "PM", StatusAway, &avatar)

	_, err := uuid.Parse(member.ID)
	assert.NoError(t, err)
	assert.Len(t, member.ID, 36)
	assert.Equal(t, "Alice", member.Name)
	assert.Equal(t, "PM", member.Role)
	assert.Equal(t, StatusAway, member.Status)
	assert.Equal(t, &avatar, member.AvatarURL)
	assert.Empty(t, member.MoodEntries)
	assert.Nil(t, member.CurrentMood())
}

func TestNewTeamMember_DefaultAvatarIsNil(t *testing.T) {
	member := NewTeamMember("Test", "Dev", StatusActive, nil)

	assert.Nil(t, member.AvatarURL)
}

func TestNewMoodEntry(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	now := time.Date(2026, 2, 26, 12, 0, 0, 0, loc)

	entry := NewMoodEntry("m1", "x", "X", now)

	assert.Len(t, entry.ID, 36)
	assert.Equal(t, "m1", entry.MemberID)
	assert.Equal(t, "x", entry.Emoji)
	assert.Equal(t, "X", entry.Label)
	assert.True(t, entry.Timestamp.Equal(now))
	assert.Equal(t, time.UTC, entry.Timestamp.Location())
}

func TestNewMoodEntry_UniqueIDs(t *testing.T) {
	now := time.Now()

	a := NewMoodEntry("m1", "x", "X", now)
	b := NewMoodEntry("m1", "x", "X", now)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestNewDefaultPreferences(t *testing.T) {
	now := time.Date(2026, 2, 26, 10, 0, 0, 0, time.UTC)

	prefs := NewDefaultPreferences("user-1", now)

	assert.Equal(t, "user-1", prefs.UserID)
	assert.Equal(t, DefaultUsername, prefs.Username)
	assert.False(t, prefs.DarkMode)
	assert.Equal(t, now, prefs.CreatedAt)
	assert.Equal(t, now, prefs.UpdatedAt)
}

package integration

import (
	"context"
	"testing"

	"github.com/dimitrije/teampulse-api/internal/repository"
	"github.com/dimitrije/teampulse-api/internal/seed"
	"github.com/dimitrije/teampulse-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_Integration_Idempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	repo := repository.NewTeamRepository(tdb.DB)
	ctx := context.Background()

	n, err := seed.TeamData(ctx, repo)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	entries := tdb.CountRows(t, "mood_entries")

	n, err = seed.TeamData(ctx, repo)
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.Equal(t, 8, tdb.CountRows(t, "team_members"))
	assert.Equal(t, entries, tdb.CountRows(t, "mood_entries"))
	assert.Equal(t, 47, entries)
}

func TestSeed_Integration_SeededTeamReadBack(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	repo := repository.NewTeamRepository(tdb.DB)
	svc := services.NewTeamService(repo)
	ctx := context.Background()

	_, err := seed.TeamData(ctx, repo)
	require.NoError(t, err)

	members, err := svc.GetAllMembers(ctx)
	require.NoError(t, err)
	require.Len(t, members, 8)

	sarah, err := svc.GetMember(ctx, "tm-00000001-0000-0000-0000-000000000001")
	require.NoError(t, err)
	require.NotNil(t, sarah)
	assert.Equal(t, "Sarah Chen", sarah.Name)
	assert.Len(t, sarah.MoodEntries, 6)
	assert.Equal(t, "Happy", sarah.CurrentMood().Label)
	assert.Equal(t, "😊", sarah.CurrentMood().Emoji)
	assert.Nil(t, sarah.AvatarURL)

	expected := seed.Members()
	for i, m := range members {
		assert.Equal(t, expected[i].ID, m.ID)
		require.Len(t, m.MoodEntries, len(expected[i].MoodEntries))
		for j, e := range m.MoodEntries {
			assert.Equal(t, expected[i].MoodEntries[j].ID, e.ID)
			assert.True(t, expected[i].MoodEntries[j].Timestamp.Equal(e.Timestamp))
		}
	}
}

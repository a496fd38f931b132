package integration

import (
	"context"
	"testing"

	"github.com/dimitrije/teampulse-api/internal/models"
	"github.com/dimitrije/teampulse-api/internal/repository"
	"github.com/dimitrije/teampulse-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferencesService_Integration_Lifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewPreferencesService(repository.NewPreferencesRepository(tdb.DB))
	ctx := context.Background()

	prefs, err := svc.GetPreferences(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultUsername, prefs.Username)
	assert.False(t, prefs.DarkMode)

	again, err := svc.GetPreferences(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, prefs.CreatedAt.Equal(again.CreatedAt))
	assert.Equal(t, 1, tdb.CountRows(t, "user_preferences"))

	dark := true
	updated, err := svc.UpdatePreferences(ctx, "user-1", nil, &dark)
	require.NoError(t, err)
	assert.True(t, updated.DarkMode)
	assert.Equal(t, models.DefaultUsername, updated.Username)
	assert.True(t, updated.CreatedAt.Equal(prefs.CreatedAt))
	assert.False(t, updated.UpdatedAt.Before(prefs.UpdatedAt))

	name := "Alice"
	updated, err = svc.UpdatePreferences(ctx, "user-1", &name, nil)
	require.NoError(t, err)
	assert.Equal(t, "Alice", updated.Username)
	assert.True(t, updated.DarkMode)

	deleted, err := svc.DeletePreferences(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.DeletePreferences(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, deleted)
}

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/dimitrije/teampulse-api/internal/database"
	"github.com/dimitrije/teampulse-api/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var preferenceColumns = []string{"user_id", "username", "dark_mode", "created_at", "updated_at"}

func setupPreferencesRepository(t *testing.T) (*PreferencesRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	return NewPreferencesRepository(&database.DB{Pool: mock}), mock
}

func TestPreferencesRepository_GetByUserID(t *testing.T) {
	repo, mock := setupPreferencesRepository(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT .+ FROM user_preferences WHERE user_id`).
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows(preferenceColumns).AddRow("user-1", "Alice", true, now, now))

	prefs, err := repo.GetByUserID(context.Background(), "user-1")

	require.NoError(t, err)
	require.NotNil(t, prefs)
	assert.Equal(t, "Alice", prefs.Username)
	assert.True(t, prefs.DarkMode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferencesRepository_GetByUserID_NotFound(t *testing.T) {
	repo, mock := setupPreferencesRepository(t)

	mock.ExpectQuery(`SELECT .+ FROM user_preferences WHERE user_id`).
		WithArgs("nobody").
		WillReturnError(pgx.ErrNoRows)

	prefs, err := repo.GetByUserID(context.Background(), "nobody")

	assert.NoError(t, err)
	assert.Nil(t, prefs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferencesRepository_Save(t *testing.T) {
	repo, mock := setupPreferencesRepository(t)
	created := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2026, 2, 26, 0, 0, 0, 0, time.UTC)
	prefs := &models.UserPreferences{UserID: "user-1", Username: "Bob", DarkMode: true, CreatedAt: updated, UpdatedAt: updated}

	mock.ExpectQuery(`INSERT INTO user_preferences .+ ON CONFLICT \(user_id\) DO UPDATE`).
		WithArgs("user-1", "Bob", true, updated, updated).
		WillReturnRows(pgxmock.NewRows(preferenceColumns).AddRow("user-1", "Bob", true, created, updated))

	saved, err := repo.Save(context.Background(), prefs)

	require.NoError(t, err)
	assert.Equal(t, created, saved.CreatedAt)
	assert.Equal(t, updated, saved.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferencesRepository_Save_StorageError(t *testing.T) {
	repo, mock := setupPreferencesRepository(t)
	prefs := models.NewDefaultPreferences("user-1", time.Now())

	mock.ExpectQuery(`INSERT INTO user_preferences`).
		WithArgs(prefs.UserID, prefs.Username, prefs.DarkMode, prefs.CreatedAt, prefs.UpdatedAt).
		WillReturnError(assert.AnError)

	_, err := repo.Save(context.Background(), prefs)

	assert.ErrorIs(t, err, ErrStorage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferencesRepository_Delete(t *testing.T) {
	repo, mock := setupPreferencesRepository(t)

	mock.ExpectExec(`DELETE FROM user_preferences WHERE user_id`).
		WithArgs("user-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM user_preferences WHERE user_id`).
		WithArgs("user-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	deleted, err := repo.Delete(context.Background(), "user-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(context.Background(), "user-1")
	require.NoError(t, err)
	assert.False(t, deleted)

	assert.NoError(t, mock.ExpectationsWereMet())
}

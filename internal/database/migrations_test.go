package database

import (
	"context"
	"strings"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMigrations(t *testing.T) (*DB, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })
	return &DB{Pool: mock}, mock
}

func TestMigrate_RunsEveryStatementInOrder(t *testing.T) {
	db, mock := setupMigrations(t)

	for _, m := range migrations {
		mock.ExpectExec(m).WillReturnResult(pgxmock.NewResult("CREATE", 0))
	}

	err := db.Migrate(context.Background())

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_StopsOnFailure(t *testing.T) {
	db, mock := setupMigrations(t)

	mock.ExpectExec(migrations[0]).WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec(migrations[1]).WillReturnError(assert.AnError)

	err := db.Migrate(context.Background())

	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "migration 2 failed")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrations_DeclareCascadeAndIndex(t *testing.T) {
	var sawCascade, sawIndex bool
	for _, m := range migrations {
		if strings.Contains(m, "REFERENCES team_members(id) ON DELETE CASCADE") {
			sawCascade = true
		}
		if strings.Contains(m, "ON mood_entries(member_id)") {
			sawIndex = true
		}
	}
	assert.True(t, sawCascade)
	assert.True(t, sawIndex)
}

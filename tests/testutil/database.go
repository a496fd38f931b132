package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dimitrije/teampulse-api/internal/database"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB is a migrated Postgres running in a throwaway container
type TestDB struct {
	DB        *database.DB
	DSN       string
	Container testcontainers.Container
}

// SetupTestDB starts postgres:16-alpine, connects through database.New and
// applies the schema. The container is terminated on test cleanup.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "teampulse_test",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("failed to get container port: %v", err)
	}

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/teampulse_test?sslmode=disable", host, port.Port())

	db, err := database.New(ctx, dsn)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	t.Cleanup(db.Close)

	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return &TestDB{DB: db, DSN: dsn, Container: container}
}

// CleanTables empties every table so tests sharing a container start fresh
func (tdb *TestDB) CleanTables(t *testing.T) {
	t.Helper()

	_, err := tdb.DB.Pool.Exec(context.Background(),
		`TRUNCATE TABLE mood_entries, team_members, user_preferences CASCADE`)
	if err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
}

// CountRows returns the number of rows in table.
func (tdb *TestDB) CountRows(t *testing.T, table string) int {
	t.Helper()

	var n int
	err := tdb.DB.Pool.QueryRow(context.Background(), fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&n)
	if err != nil {
		t.Fatalf("failed to count %s: %v", table, err)
	}
	return n
}

package database

import (
	"context"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS team_members (
		id VARCHAR(100) PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		role VARCHAR(100) NOT NULL,
		avatar_url VARCHAR(500),
		status VARCHAR(20) NOT NULL DEFAULT 'active'
	)`,

	// Entries belong to exactly one member and go away with it.
	`CREATE TABLE IF NOT EXISTS mood_entries (
		id VARCHAR(100) PRIMARY KEY,
		member_id VARCHAR(100) NOT NULL REFERENCES team_members(id) ON DELETE CASCADE,
		emoji VARCHAR(10) NOT NULL,
		label VARCHAR(50) NOT NULL,
		timestamp TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_mood_entries_member_id ON mood_entries(member_id)`,
	`CREATE INDEX IF NOT EXISTS idx_mood_entries_member_timestamp ON mood_entries(member_id, timestamp DESC)`,

	`CREATE TABLE IF NOT EXISTS user_preferences (
		user_id VARCHAR(100) PRIMARY KEY,
		username VARCHAR(50) NOT NULL DEFAULT 'Guest',
		dark_mode BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,
}

func (db *DB) Migrate(ctx context.Context) error {
	for i, migration := range migrations {
		if _, err := db.Pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}

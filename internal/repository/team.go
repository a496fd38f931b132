package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dimitrije/teampulse-api/internal/database"
	"github.com/dimitrije/teampulse-api/internal/models"
	"github.com/jackc/pgx/v5"
)

// Entries sharing a timestamp fall back to descending id so reads are
// deterministic.
const moodOrder = `ORDER BY timestamp DESC, id DESC`

type TeamRepository struct {
	db *database.DB
}

func NewTeamRepository(db *database.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// GetAll returns every member ordered by id, each with its full mood history.
func (r *TeamRepository) GetAll(ctx context.Context) ([]models.TeamMember, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, name, role, avatar_url, status
		FROM team_members
		ORDER BY id
	`)
	if err != nil {
		return nil, storageErr("list team members", err)
	}
	defer rows.Close()

	members := []models.TeamMember{}
	index := make(map[string]int)
	for rows.Next() {
		var m models.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Role, &m.AvatarURL, &m.Status); err != nil {
			return nil, storageErr("scan team member", err)
		}
		m.MoodEntries = []models.MoodEntry{}
		index[m.ID] = len(members)
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list team members", err)
	}
	if len(members) == 0 {
		return members, nil
	}

	entryRows, err := r.db.Pool.Query(ctx, `
		SELECT id, member_id, emoji, label, timestamp
		FROM mood_entries
		ORDER BY member_id, timestamp DESC, id DESC
	`)
	if err != nil {
		return nil, storageErr("list mood entries", err)
	}
	defer entryRows.Close()

	for entryRows.Next() {
		e, err := scanMoodEntry(entryRows)
		if err != nil {
			return nil, storageErr("scan mood entry", err)
		}
		// A member created after the first query has no slot; skip it.
		if i, ok := index[e.MemberID]; ok {
			members[i].MoodEntries = append(members[i].MoodEntries, e)
		}
	}
	if err := entryRows.Err(); err != nil {
		return nil, storageErr("list mood entries", err)
	}

	return members, nil
}

// GetByID returns nil without error when no member has the given id.
func (r *TeamRepository) GetByID(ctx context.Context, id string) (*models.TeamMember, error) {
	var m models.TeamMember
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, name, role, avatar_url, status
		FROM team_members WHERE id = $1
	`, id).Scan(&m.ID, &m.Name, &m.Role, &m.AvatarURL, &m.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("get team member", err)
	}

	entries, err := r.moodEntries(ctx, id)
	if err != nil {
		return nil, err
	}
	m.MoodEntries = entries

	return &m, nil
}

func (r *TeamRepository) moodEntries(ctx context.Context, memberID string) ([]models.MoodEntry, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, member_id, emoji, label, timestamp
		FROM mood_entries
		WHERE member_id = $1
		`+moodOrder, memberID)
	if err != nil {
		return nil, storageErr("list mood entries", err)
	}
	defer rows.Close()

	entries := []models.MoodEntry{}
	for rows.Next() {
		e, err := scanMoodEntry(rows)
		if err != nil {
			return nil, storageErr("scan mood entry", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list mood entries", err)
	}
	return entries, nil
}

// AddMoodEntry inserts a single entry. An unknown member id violates the
// foreign key and comes back as ErrStorage.
func (r *TeamRepository) AddMoodEntry(ctx context.Context, entry models.MoodEntry) (*models.MoodEntry, error) {
	row := r.db.Pool.QueryRow(ctx, `
		INSERT INTO mood_entries (id, member_id, emoji, label, timestamp)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, member_id, emoji, label, timestamp
	`, entry.ID, entry.MemberID, entry.Emoji, entry.Label, entry.Timestamp)

	saved, err := scanMoodEntry(row)
	if err != nil {
		return nil, storageErr("add mood entry", err)
	}
	return &saved, nil
}

// SaveMember upserts the member and replaces its mood history with
// member.MoodEntries in one transaction. Entries are keyed by id; stored
// entries missing from the slice are removed. An entry id already owned by
// another member fails the save instead of moving the entry.
func (r *TeamRepository) SaveMember(ctx context.Context, member *models.TeamMember) (*models.TeamMember, error) {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return nil, storageErr("begin transaction", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO team_members (id, name, role, avatar_url, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, role = EXCLUDED.role,
		    avatar_url = EXCLUDED.avatar_url, status = EXCLUDED.status
	`, member.ID, member.Name, member.Role, member.AvatarURL, member.Status)
	if err != nil {
		return nil, storageErr("save team member", err)
	}

	ids := make([]string, 0, len(member.MoodEntries))
	for _, e := range member.MoodEntries {
		ids = append(ids, e.ID)
	}
	_, err = tx.Exec(ctx, `
		DELETE FROM mood_entries
		WHERE member_id = $1 AND NOT (id = ANY($2))
	`, member.ID, ids)
	if err != nil {
		return nil, storageErr("prune mood entries", err)
	}

	for _, e := range member.MoodEntries {
		tag, err := tx.Exec(ctx, `
			INSERT INTO mood_entries (id, member_id, emoji, label, timestamp)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO UPDATE
			SET emoji = EXCLUDED.emoji, label = EXCLUDED.label, timestamp = EXCLUDED.timestamp
			WHERE mood_entries.member_id = EXCLUDED.member_id
		`, e.ID, member.ID, e.Emoji, e.Label, e.Timestamp)
		if err != nil {
			return nil, storageErr("save mood entry", err)
		}
		if tag.RowsAffected() == 0 {
			return nil, storageErr("save mood entry", fmt.Errorf("entry %s belongs to another member", e.ID))
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, storageErr("commit transaction", err)
	}

	return member, nil
}

// UpdateStatus changes only the status column and reports whether the member
// exists.
func (r *TeamRepository) UpdateStatus(ctx context.Context, id, status string) (bool, error) {
	result, err := r.db.Pool.Exec(ctx, `
		UPDATE team_members SET status = $1 WHERE id = $2
	`, status, id)
	if err != nil {
		return false, storageErr("update team member status", err)
	}
	return result.RowsAffected() > 0, nil
}

// Delete removes the member; its mood entries cascade.
func (r *TeamRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.Pool.Exec(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return false, storageErr("delete team member", err)
	}
	return result.RowsAffected() > 0, nil
}

func (r *TeamRepository) Count(ctx context.Context) (int, error) {
	var n int64
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM team_members`).Scan(&n); err != nil {
		return 0, storageErr("count team members", err)
	}
	return int(n), nil
}

func scanMoodEntry(row pgx.Row) (models.MoodEntry, error) {
	var e models.MoodEntry
	if err := row.Scan(&e.ID, &e.MemberID, &e.Emoji, &e.Label, &e.Timestamp); err != nil {
		return models.MoodEntry{}, err
	}
	e.Timestamp = e.Timestamp.UTC()
	return e, nil
}

// Package seed loads the demo team into an empty store.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/dimitrije/teampulse-api/internal/logger"
	"github.com/dimitrije/teampulse-api/internal/metrics"
	"github.com/dimitrije/teampulse-api/internal/models"
)

// BaseTime anchors every fixture timestamp so seeded data is reproducible.
var BaseTime = time.Date(2026, 2, 26, 10, 0, 0, 0, time.UTC)

type Store interface {
	Count(ctx context.Context) (int, error)
	SaveMember(ctx context.Context, member *models.TeamMember) (*models.TeamMember, error)
}

type mood struct {
	emoji    string
	label    string
	hoursAgo float64
}

type memberFixture struct {
	id     string
	name   string
	role   string
	status string
	moods  []mood
}

var (
	happy    = func(h float64) mood { return mood{"😊", "Happy", h} }
	firedUp  = func(h float64) mood { return mood{"🔥", "Fired Up", h} }
	thinking = func(h float64) mood { return mood{"🤔", "Thinking", h} }
	neutral  = func(h float64) mood { return mood{"😐", "Neutral", h} }
	tired    = func(h float64) mood { return mood{"😴", "Tired", h} }
	stressed = func(h float64) mood { return mood{"😤", "Stressed", h} }
)

var fixtures = []memberFixture{
	{
		id: "tm-00000001-0000-0000-0000-000000000001", name: "Sarah Chen", role: "Engineering Lead", status: models.StatusActive,
		moods: []mood{happy(1), firedUp(5), happy(24), thinking(48), happy(72), neutral(96)},
	},
	{
		id: "tm-00000002-0000-0000-0000-000000000002", name: "Marcus Johnson", role: "Senior Developer", status: models.StatusActive,
		moods: []mood{firedUp(1.25), firedUp(8), happy(26), thinking(50), tired(74), happy(100), firedUp(120)},
	},
	{
		id: "tm-00000003-0000-0000-0000-000000000003", name: "Priya Patel", role: "UX Designer", status: models.StatusActive,
		moods: []mood{happy(0.75), thinking(6), happy(25), happy(49), firedUp(73), neutral(97)},
	},
	{
		id: "tm-00000004-0000-0000-0000-000000000004", name: "David Kim", role: "Backend Developer", status: models.StatusAway,
		moods: []mood{neutral(2.5), tired(10), neutral(28), happy(52), thinking(76)},
	},
	{
		id: "tm-00000005-0000-0000-0000-000000000005", name: "Aisha Mohammed", role: "Product Manager", status: models.StatusActive,
		moods: []mood{happy(0.5), firedUp(4), happy(24), firedUp(48), happy(72), stressed(96), happy(120)},
	},
	{
		id: "tm-00000006-0000-0000-0000-000000000006", name: "Tom Rivera", role: "QA Engineer", status: models.StatusActive,
		moods: []mood{tired(2), neutral(9), tired(27), happy(51), neutral(75)},
	},
	{
		id: "tm-00000007-0000-0000-0000-000000000007", name: "Elena Volkov", role: "DevOps Engineer", status: models.StatusAway,
		moods: []mood{thinking(3.25), happy(12), thinking(30), firedUp(54), happy(78), neutral(102)},
	},
	{
		id: "tm-00000008-0000-0000-0000-000000000008", name: "James O'Brien", role: "Data Analyst", status: models.StatusOffline,
		moods: []mood{firedUp(17), happy(30), neutral(54), thinking(78), happy(102)},
	},
}

// Members builds the fixture team. Entry ids are derived from the last
// character of the member id and the entry's position, newest first.
func Members() []*models.TeamMember {
	members := make([]*models.TeamMember, 0, len(fixtures))
	for _, f := range fixtures {
		suffix := f.id[len(f.id)-1:]
		entries := make([]models.MoodEntry, 0, len(f.moods))
		for i, m := range f.moods {
			entries = append(entries, models.MoodEntry{
				ID:        fmt.Sprintf("me-%s-%04d", suffix, i),
				MemberID:  f.id,
				Emoji:     m.emoji,
				Label:     m.label,
				Timestamp: BaseTime.Add(-time.Duration(m.hoursAgo * float64(time.Hour))),
			})
		}
		members = append(members, &models.TeamMember{
			ID:          f.id,
			Name:        f.name,
			Role:        f.role,
			Status:      f.status,
			MoodEntries: entries,
		})
	}
	return members
}

// TeamData writes the fixture team when the store is empty and reports how
// many members were inserted. A populated store is left untouched.
func TeamData(ctx context.Context, store Store) (int, error) {
	log := logger.Get()

	count, err := store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count team members: %w", err)
	}
	if count > 0 {
		log.Debug().Int("existing", count).Msg("team data already present, skipping seed")
		return 0, nil
	}

	members := Members()
	for _, m := range members {
		if _, err := store.SaveMember(ctx, m); err != nil {
			return 0, fmt.Errorf("seed member %s: %w", m.ID, err)
		}
		metrics.SeededMembers.Inc()
	}

	log.Info().Int("members", len(members)).Msg("seeded team data")
	return len(members), nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dimitrije/teampulse-api/internal/models"
	"github.com/dimitrije/teampulse-api/internal/validation"
)

var ErrMemberNotFound = errors.New("team member not found")

// MemberNotFoundError names the missing member. It matches ErrMemberNotFound
// with errors.Is.
type MemberNotFoundError struct {
	ID string
}

func (e *MemberNotFoundError) Error() string {
	return fmt.Sprintf("Team member '%s' not found", e.ID)
}

func (e *MemberNotFoundError) Is(target error) bool {
	return target == ErrMemberNotFound
}

// TeamRepository is the persistence contract TeamService relies on.
type TeamRepository interface {
	GetAll(ctx context.Context) ([]models.TeamMember, error)
	GetByID(ctx context.Context, id string) (*models.TeamMember, error)
	AddMoodEntry(ctx context.Context, entry models.MoodEntry) (*models.MoodEntry, error)
	SaveMember(ctx context.Context, member *models.TeamMember) (*models.TeamMember, error)
	UpdateStatus(ctx context.Context, id, status string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}

type TeamService struct {
	repo TeamRepository
	now  func() time.Time
}

func NewTeamService(repo TeamRepository) *TeamService {
	return &TeamService{repo: repo, now: time.Now}
}

func (s *TeamService) GetAllMembers(ctx context.Context) ([]models.TeamMember, error) {
	return s.repo.GetAll(ctx)
}

// GetMember returns nil without error when the member does not exist.
func (s *TeamService) GetMember(ctx context.Context, id string) (*models.TeamMember, error) {
	memberID, err := validation.MemberID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, memberID)
}

// SubmitMood records a new current mood for the member. The existence check
// and the insert are separate round trips.
func (s *TeamService) SubmitMood(ctx context.Context, memberID, emoji, label string) (*models.MoodEntry, error) {
	id, err := validation.MemberID(memberID)
	if err != nil {
		return nil, err
	}
	emoji, err = validation.MoodEmoji(emoji)
	if err != nil {
		return nil, err
	}
	label, err = validation.MoodLabel(label)
	if err != nil {
		return nil, err
	}

	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, &MemberNotFoundError{ID: id}
	}

	entry := models.NewMoodEntry(id, emoji, label, s.now())
	return s.repo.AddMoodEntry(ctx, entry)
}

func (s *TeamService) CreateMember(ctx context.Context, name, role, status string, avatarURL *string) (*models.TeamMember, error) {
	name, err := validation.MemberName(name)
	if err != nil {
		return nil, err
	}
	role, err = validation.MemberRole(role)
	if err != nil {
		return nil, err
	}
	status, err = validation.Status(status)
	if err != nil {
		return nil, err
	}

	if avatarURL != nil {
		if trimmed := strings.TrimSpace(*avatarURL); trimmed != "" {
			avatarURL = &trimmed
		} else {
			avatarURL = nil
		}
	}

	return s.repo.SaveMember(ctx, models.NewTeamMember(name, role, status, avatarURL))
}

func (s *TeamService) UpdateStatus(ctx context.Context, id, status string) (*models.TeamMember, error) {
	memberID, err := validation.MemberID(id)
	if err != nil {
		return nil, err
	}
	status, err = validation.Status(status)
	if err != nil {
		return nil, err
	}

	found, err := s.repo.UpdateStatus(ctx, memberID, status)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &MemberNotFoundError{ID: memberID}
	}

	member, err := s.repo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, &MemberNotFoundError{ID: memberID}
	}
	return member, nil
}

// DeleteMember removes the member together with its mood history.
func (s *TeamService) DeleteMember(ctx context.Context, id string) error {
	memberID, err := validation.MemberID(id)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, memberID)
	if err != nil {
		return err
	}
	if !deleted {
		return &MemberNotFoundError{ID: memberID}
	}
	return nil
}

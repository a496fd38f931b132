package testutil

import (
	"context"

	"github.com/dimitrije/teampulse-api/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockTeamRepository mocks the team persistence layer
type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) GetAll(ctx context.Context) ([]models.TeamMember, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TeamMember), args.Error(1)
}

func (m *MockTeamRepository) GetByID(ctx context.Context, id string) (*models.TeamMember, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TeamMember), args.Error(1)
}

func (m *MockTeamRepository) AddMoodEntry(ctx context.Context, entry models.MoodEntry) (*models.MoodEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MoodEntry), args.Error(1)
}

func (m *MockTeamRepository) SaveMember(ctx context.Context, member *models.TeamMember) (*models.TeamMember, error) {
	args := m.Called(ctx, member)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TeamMember), args.Error(1)
}

func (m *MockTeamRepository) UpdateStatus(ctx context.Context, id, status string) (bool, error) {
	args := m.Called(ctx, id, status)
	return args.Bool(0), args.Error(1)
}

func (m *MockTeamRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockTeamRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockPreferencesRepository mocks the preferences persistence layer
type MockPreferencesRepository struct {
	mock.Mock
}

func (m *MockPreferencesRepository) GetByUserID(ctx context.Context, userID string) (*models.UserPreferences, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserPreferences), args.Error(1)
}

func (m *MockPreferencesRepository) Save(ctx context.Context, prefs *models.UserPreferences) (*models.UserPreferences, error) {
	args := m.Called(ctx, prefs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserPreferences), args.Error(1)
}

func (m *MockPreferencesRepository) Delete(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

// MockTeamService mocks the TeamService
type MockTeamService struct {
	mock.Mock
}

func (m *MockTeamService) GetAllMembers(ctx context.Context) ([]models.TeamMember, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TeamMember), args.Error(1)
}

func (m *MockTeamService) GetMember(ctx context.Context, id string) (*models.TeamMember, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TeamMember), args.Error(1)
}

func (m *MockTeamService) SubmitMood(ctx context.Context, memberID, emoji, label string) (*models.MoodEntry, error) {
	args := m.Called(ctx, memberID, emoji, label)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MoodEntry), args.Error(1)
}

func (m *MockTeamService) CreateMember(ctx context.Context, name, role, status string, avatarURL *string) (*models.TeamMember, error) {
	args := m.Called(ctx, name, role, status, avatarURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TeamMember), args.Error(1)
}

func (m *MockTeamService) UpdateStatus(ctx context.Context, id, status string) (*models.TeamMember, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TeamMember), args.Error(1)
}

func (m *MockTeamService) DeleteMember(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPreferencesService mocks the PreferencesService
type MockPreferencesService struct {
	mock.Mock
}

func (m *MockPreferencesService) GetPreferences(ctx context.Context, userID string) (*models.UserPreferences, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserPreferences), args.Error(1)
}

func (m *MockPreferencesService) UpdatePreferences(ctx context.Context, userID string, username *string, darkMode *bool) (*models.UserPreferences, error) {
	args := m.Called(ctx, userID, username, darkMode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserPreferences), args.Error(1)
}

func (m *MockPreferencesService) DeletePreferences(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

// MockHealthChecker mocks the database ping used by the health endpoint
type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

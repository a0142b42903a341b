package gym_test

import (
	"context"

	"github.com/Rajat-Bansal3/Logit-Gym/auth"
	"github.com/Rajat-Bansal3/Logit-Gym/gym"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockMembershipFinder implements gym.MembershipFinder
type MockMembershipFinder struct {
	mock.Mock
}

func (m *MockMembershipFinder) FindByUserID(ctx context.Context, userID uuid.UUID) (*gym.Member, error) {
	args := m.Called(ctx, userID)
	member, _ := args.Get(0).(*gym.Member)
	return member, args.Error(1)
}

// MockGymStore implements gym.GymStore
type MockGymStore struct {
	mock.Mock
}

func (m *MockGymStore) Create(ctx context.Context, record *gym.Gym) (*gym.Gym, error) {
	args := m.Called(ctx, record)
	created, _ := args.Get(0).(*gym.Gym)
	return created, args.Error(1)
}

func (m *MockGymStore) CreateProfile(ctx context.Context, profile *gym.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockGymStore) UpsertProfile(ctx context.Context, gymID uuid.UUID, profile *gym.Profile) error {
	args := m.Called(ctx, gymID, profile)
	return args.Error(0)
}

func (m *MockGymStore) FindByID(ctx context.Context, id uuid.UUID) (*gym.Gym, error) {
	args := m.Called(ctx, id)
	record, _ := args.Get(0).(*gym.Gym)
	return record, args.Error(1)
}

func (m *MockGymStore) FindByIDWithProfile(ctx context.Context, id uuid.UUID) (*gym.Gym, error) {
	args := m.Called(ctx, id)
	record, _ := args.Get(0).(*gym.Gym)
	return record, args.Error(1)
}

func (m *MockGymStore) Update(ctx context.Context, id uuid.UUID, updates gym.GymUpdate) error {
	args := m.Called(ctx, id, updates)
	return args.Error(0)
}

func (m *MockGymStore) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAccessDecider implements gym.AccessDecider
type MockAccessDecider struct {
	mock.Mock
}

func (m *MockAccessDecider) CanAccess(ctx context.Context, record *gym.Gym, identity auth.Identity, mode gym.AccessMode) (bool, error) {
	args := m.Called(ctx, record, identity, mode)
	return args.Bool(0), args.Error(1)
}

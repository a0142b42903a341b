package auth_test

import (
	"context"

	"github.com/Rajat-Bansal3/Logit-Gym/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserStore implements auth.UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*auth.User)
	return user, args.Error(1)
}

func (m *MockUserStore) Register(ctx context.Context, user *auth.User) (*auth.User, error) {
	args := m.Called(ctx, user)
	created, _ := args.Get(0).(*auth.User)
	return created, args.Error(1)
}

// MockScopeStore implements auth.ScopeStore
type MockScopeStore struct {
	mock.Mock
}

func (m *MockScopeStore) FindOwnedGymID(ctx context.Context, ownerID uuid.UUID) (uuid.UUID, bool, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(uuid.UUID), args.Bool(1), args.Error(2)
}

func (m *MockScopeStore) FindMembership(ctx context.Context, userID uuid.UUID) (uuid.UUID, uuid.UUID, bool, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(uuid.UUID), args.Get(1).(uuid.UUID), args.Bool(2), args.Error(3)
}

// MockLogger implements auth.Logger
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(format string, args ...any) {
	m.Called(format, args)
}

func (m *MockLogger) Info(format string, args ...any) {
	m.Called(format, args)
}

func (m *MockLogger) Warn(format string, args ...any) {
	m.Called(format, args)
}

func (m *MockLogger) Error(format string, args ...any) {
	m.Called(format, args)
}

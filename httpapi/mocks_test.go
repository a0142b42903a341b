package httpapi_test

import (
	"context"

	"github.com/Rajat-Bansal3/Logit-Gym/auth"
	"github.com/Rajat-Bansal3/Logit-Gym/gym"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAuthService implements httpapi.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, email, password string, role auth.UserRole) (*auth.AuthResult, error) {
	args := m.Called(ctx, email, password, role)
	result, _ := args.Get(0).(*auth.AuthResult)
	return result, args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*auth.AuthResult, error) {
	args := m.Called(ctx, email, password)
	result, _ := args.Get(0).(*auth.AuthResult)
	return result, args.Error(1)
}

func (m *MockAuthService) ValidateAccessToken(ctx context.Context, raw string) (auth.Identity, bool) {
	args := m.Called(ctx, raw)
	return args.Get(0).(auth.Identity), args.Bool(1)
}

// MockGymService implements httpapi.GymService
type MockGymService struct {
	mock.Mock
}

func (m *MockGymService) Create(ctx context.Context, identity auth.Identity, input gym.CreateInput) (*gym.Gym, error) {
	args := m.Called(ctx, identity, input)
	record, _ := args.Get(0).(*gym.Gym)
	return record, args.Error(1)
}

func (m *MockGymService) Get(ctx context.Context, identity auth.Identity, gymID uuid.UUID) (*gym.Gym, error) {
	args := m.Called(ctx, identity, gymID)
	record, _ := args.Get(0).(*gym.Gym)
	return record, args.Error(1)
}

func (m *MockGymService) Update(ctx context.Context, identity auth.Identity, gymID uuid.UUID, input gym.UpdateInput) (*gym.Gym, error) {
	args := m.Called(ctx, identity, gymID, input)
	record, _ := args.Get(0).(*gym.Gym)
	return record, args.Error(1)
}

func (m *MockGymService) Delete(ctx context.Context, identity auth.Identity, gymID uuid.UUID) error {
	args := m.Called(ctx, identity, gymID)
	return args.Error(0)
}

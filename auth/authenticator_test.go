package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/Rajat-Bansal3/Logit-Gym/auth"
	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func errRecordNotFound() error {
	return goerrors.New("record not found", goerrors.CategoryNotFound).
		WithCode(goerrors.CodeNotFound)
}

func newTestAuthenticator(users *MockUserStore, scopes *MockScopeStore) *auth.Auther {
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	tokens := auth.NewTokenService(testAccessKey, testRefreshKey, 15*time.Minute, 30*24*time.Hour, nil)
	return auth.NewAuthenticator(users, scopes, hasher, tokens)
}

func TestAuther_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("registers user and issues token pair", func(t *testing.T) {
		users := &MockUserStore{}
		scopes := &MockScopeStore{}
		userID := uuid.New()

		users.On("GetByEmail", ctx, "new@example.com").Return(nil, errRecordNotFound())
		users.On("Register", ctx, mock.MatchedBy(func(u *auth.User) bool {
			return u.Email == "new@example.com" && u.Role == auth.RoleMember && u.PasswordHash != ""
		})).Return(&auth.User{
			ID:    userID,
			Email: "new@example.com",
			Role:  auth.RoleMember,
		}, nil)
		scopes.On("FindMembership", ctx, userID).Return(uuid.Nil, uuid.Nil, false, nil)

		result, err := newTestAuthenticator(users, scopes).Register(ctx, "new@example.com", "secret123", auth.RoleMember)

		assert.NoError(t, err)
		assert.Equal(t, userID.String(), result.Identity.UserID)
		assert.Equal(t, auth.RoleMember, result.Identity.Role)
		assert.NotEmpty(t, result.Tokens.AuthToken)
		assert.NotEmpty(t, result.Tokens.RefreshToken)

		users.AssertExpectations(t)
		scopes.AssertExpectations(t)
	})

	t.Run("defaults empty role to member", func(t *testing.T) {
		users := &MockUserStore{}
		scopes := &MockScopeStore{}
		userID := uuid.New()

		users.On("GetByEmail", ctx, "new@example.com").Return(nil, errRecordNotFound())
		users.On("Register", ctx, mock.MatchedBy(func(u *auth.User) bool {
			return u.Role == auth.RoleMember
		})).Return(&auth.User{ID: userID, Email: "new@example.com", Role: auth.RoleMember}, nil)
		scopes.On("FindMembership", ctx, userID).Return(uuid.Nil, uuid.Nil, false, nil)

		result, err := newTestAuthenticator(users, scopes).Register(ctx, "new@example.com", "secret123", "")

		assert.NoError(t, err)
		assert.Equal(t, auth.RoleMember, result.Identity.Role)

		users.AssertExpectations(t)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		users := &MockUserStore{}
		scopes := &MockScopeStore{}

		result, err := newTestAuthenticator(users, scopes).Register(ctx, "new@example.com", "secret123", "SUPERADMIN")

		assert.Error(t, err)
		assert.Nil(t, result)
		users.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("returns conflict for duplicate email", func(t *testing.T) {
		users := &MockUserStore{}
		scopes := &MockScopeStore{}

		users.On("GetByEmail", ctx, "taken@example.com").Return(&auth.User{
			ID:    uuid.New(),
			Email: "taken@example.com",
			Role:  auth.RoleMember,
		}, nil)

		result, err := newTestAuthenticator(users, scopes).Register(ctx, "taken@example.com", "secret123", auth.RoleMember)

		assert.Nil(t, result)
		assert.Equal(t, auth.ErrEmailTaken, err)
		users.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("rejects empty password", func(t *testing.T) {
		users := &MockUserStore{}
		scopes := &MockScopeStore{}

		users.On("GetByEmail", ctx, "new@example.com").Return(nil, errRecordNotFound())

		result, err := newTestAuthenticator(users, scopes).Register(ctx, "new@example.com", "", auth.RoleMember)

		assert.Nil(t, result)
		assert.Equal(t, auth.ErrNoEmptyString, err)
	})
}

func TestAuther_Login(t *testing.T) {
	ctx := context.Background()
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.HashPassword("secret123")
	assert.NoError(t, err)

	t.Run("issues token pair for valid credentials", func(t *testing.T) {
		users := &MockUserStore{}
		scopes := &MockScopeStore{}
		userID := uuid.New()
		gymID := uuid.New()
		memberID := uuid.New()

		users.On("GetByEmail", ctx, "member@example.com").Return(&auth.User{
			ID:           userID,
			Email:        "member@example.com",
			PasswordHash: hash,
			Role:         auth.RoleMember,
		}, nil)
		scopes.On("FindMembership", ctx, userID).Return(memberID, gymID, true, nil)

		service := newTestAuthenticator(users, scopes)
		result, err := service.Login(ctx, "member@example.com", "secret123")

		assert.NoError(t, err)
		assert.Equal(t, userID.String(), result.Identity.UserID)
		assert.Equal(t, gymID.String(), result.Identity.GymID)
		assert.Equal(t, memberID.String(), result.Identity.MemberID)

		identity, ok := service.ValidateAccessToken(ctx, result.Tokens.AuthToken)
		assert.True(t, ok)
		assert.Equal(t, result.Identity, identity)

		users.AssertExpectations(t)
		scopes.AssertExpectations(t)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		users := &MockUserStore{}
		scopes := &MockScopeStore{}

		users.On("GetByEmail", ctx, "missing@example.com").Return(nil, errRecordNotFound())
		users.On("GetByEmail", ctx, "member@example.com").Return(&auth.User{
			ID:           uuid.New(),
			Email:        "member@example.com",
			PasswordHash: hash,
			Role:         auth.RoleMember,
		}, nil)

		service := newTestAuthenticator(users, scopes)

		_, unknownEmailErr := service.Login(ctx, "missing@example.com", "secret123")
		_, wrongPasswordErr := service.Login(ctx, "member@example.com", "wrong-password")

		assert.Error(t, unknownEmailErr)
		assert.Error(t, wrongPasswordErr)
		assert.Equal(t, auth.ErrInvalidCredentials, unknownEmailErr)
		assert.Equal(t, unknownEmailErr, wrongPasswordErr)
	})
}

func TestAuther_ScopeDerivation(t *testing.T) {
	ctx := context.Background()
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.HashPassword("secret123")
	assert.NoError(t, err)

	login := func(t *testing.T, user *auth.User, scopes *MockScopeStore) *auth.AuthResult {
		t.Helper()
		users := &MockUserStore{}
		users.On("GetByEmail", ctx, user.Email).Return(user, nil)

		result, err := newTestAuthenticator(users, scopes).Login(ctx, user.Email, "secret123")
		assert.NoError(t, err)
		return result
	}

	t.Run("owner token carries owned gym id", func(t *testing.T) {
		userID := uuid.New()
		gymID := uuid.New()

		scopes := &MockScopeStore{}
		scopes.On("FindOwnedGymID", ctx, userID).Return(gymID, true, nil)

		result := login(t, &auth.User{
			ID:           userID,
			Email:        "owner@example.com",
			PasswordHash: hash,
			Role:         auth.RoleOwner,
		}, scopes)

		assert.Equal(t, gymID.String(), result.Identity.GymID)
		assert.Empty(t, result.Identity.MemberID)
		scopes.AssertExpectations(t)
	})

	t.Run("owner without a gym gets an unscoped token", func(t *testing.T) {
		userID := uuid.New()

		scopes := &MockScopeStore{}
		scopes.On("FindOwnedGymID", ctx, userID).Return(uuid.Nil, false, nil)

		result := login(t, &auth.User{
			ID:           userID,
			Email:        "owner@example.com",
			PasswordHash: hash,
			Role:         auth.RoleOwner,
		}, scopes)

		assert.Empty(t, result.Identity.GymID)
		assert.Empty(t, result.Identity.MemberID)
	})

	t.Run("member without a membership gets an unscoped token", func(t *testing.T) {
		userID := uuid.New()

		scopes := &MockScopeStore{}
		scopes.On("FindMembership", ctx, userID).Return(uuid.Nil, uuid.Nil, false, nil)

		result := login(t, &auth.User{
			ID:           userID,
			Email:        "member@example.com",
			PasswordHash: hash,
			Role:         auth.RoleMember,
		}, scopes)

		assert.Empty(t, result.Identity.GymID)
		assert.Empty(t, result.Identity.MemberID)
	})

	t.Run("trainer scope resolves through membership", func(t *testing.T) {
		userID := uuid.New()
		gymID := uuid.New()
		memberID := uuid.New()

		scopes := &MockScopeStore{}
		scopes.On("FindMembership", ctx, userID).Return(memberID, gymID, true, nil)

		result := login(t, &auth.User{
			ID:           userID,
			Email:        "trainer@example.com",
			PasswordHash: hash,
			Role:         auth.RoleTrainer,
		}, scopes)

		assert.Equal(t, gymID.String(), result.Identity.GymID)
		assert.Equal(t, memberID.String(), result.Identity.MemberID)
	})
}

func TestAuther_ValidateAccessToken(t *testing.T) {
	ctx := context.Background()
	service := newTestAuthenticator(&MockUserStore{}, &MockScopeStore{})

	t.Run("returns false for garbage token", func(t *testing.T) {
		identity, ok := service.ValidateAccessToken(ctx, "garbage")

		assert.False(t, ok)
		assert.True(t, identity.IsZero())
	})

	t.Run("returns false for a refresh token", func(t *testing.T) {
		tokens := auth.NewTokenService(testAccessKey, testRefreshKey, 15*time.Minute, 30*24*time.Hour, nil)
		refresh, err := tokens.IssueRefreshToken(uuid.NewString())
		assert.NoError(t, err)

		identity, ok := service.ValidateAccessToken(ctx, refresh)

		assert.False(t, ok)
		assert.True(t, identity.IsZero())
	})
}

package auth

import (
	"context"

	"github.com/goliatone/go-errors"
)

// Auther composes the user store, password hasher, scope store, and
// token service into the identity service: registration, login, and
// access-token validation.
type Auther struct {
	users     UserStore
	scopes    ScopeStore
	passwords PasswordAuthenticator
	tokens    TokenService
	logger    Logger
}

// NewAuthenticator returns a new Auther. All collaborators are explicit
// dependencies; nothing is reached through package-level state.
func NewAuthenticator(users UserStore, scopes ScopeStore, passwords PasswordAuthenticator, tokens TokenService) *Auther {
	return &Auther{
		users:     users,
		scopes:    scopes,
		passwords: passwords,
		tokens:    tokens,
		logger:    defLogger{},
	}
}

func (s *Auther) WithLogger(logger Logger) *Auther {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// Register creates a user and issues a token pair. The email must
// already be normalized. An empty role defaults to RoleMember.
func (s *Auther) Register(ctx context.Context, email, password string, role UserRole) (*AuthResult, error) {
	if role == "" {
		role = RoleMember
	}
	if !IsValidRole(role) {
		return nil, errors.New("unknown role", errors.CategoryValidation).
			WithCode(errors.CodeBadRequest).
			WithMetadata(map[string]any{"role": role})
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.IsNotFound(err) {
		s.logger.Error("Register user lookup failed", "error", err)
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to check existing user")
	}

	hash, err := s.passwords.HashPassword(password)
	if err != nil {
		var richErr *errors.Error
		if errors.As(err, &richErr) {
			return nil, richErr
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to hash password")
	}

	user, err := s.users.Register(ctx, &User{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		s.logger.Error("Register persist user failed", "error", err)
		return nil, errors.Wrap(err, errors.CategoryConflict, "could not create user")
	}

	s.logger.Info("Registered user", "user_id", user.ID, "role", user.Role)

	return s.issueTokens(ctx, user)
}

// Login verifies credentials and issues a token pair. An unknown email
// and a wrong password both return ErrInvalidCredentials: the caller
// learns nothing about which one failed.
func (s *Auther) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login user lookup failed", "error", err)
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to retrieve user during login")
	}

	if err := s.passwords.ComparePasswordAndHash(password, user.PasswordHash); err != nil {
		if errors.Is(err, ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login password comparison failed", "error", err)
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to verify password")
	}

	return s.issueTokens(ctx, user)
}

// ValidateAccessToken verifies a raw bearer token and derives the
// request identity. It never returns an error: any verification failure
// yields (zero, false).
func (s *Auther) ValidateAccessToken(ctx context.Context, raw string) (Identity, bool) {
	claims, err := s.tokens.ValidateAccessToken(raw)
	if err != nil {
		s.logger.Debug("ValidateAccessToken rejected token", "error", err)
		return Identity{}, false
	}

	return IdentityFromClaims(claims), true
}

// issueTokens derives the user's gym scope and signs the token pair.
func (s *Auther) issueTokens(ctx context.Context, user *User) (*AuthResult, error) {
	scope, err := ResolveScope(ctx, s.scopes, user.Role, user.ID)
	if err != nil {
		s.logger.Error("Scope resolution failed", "error", err, "user_id", user.ID)
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to resolve token scope")
	}

	identity := IdentityFromUser(user, scope)

	accessToken, err := s.tokens.IssueAccessToken(identity)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to sign access token")
	}

	refreshToken, err := s.tokens.IssueRefreshToken(identity.UserID)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to sign refresh token")
	}

	return &AuthResult{
		Identity: identity,
		User:     user,
		Tokens: TokenPair{
			AuthToken:    accessToken,
			RefreshToken: refreshToken,
		},
	}, nil
}

package auth

import (
	"context"
	"fmt"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// UserStore is the persistence surface the authenticator needs.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	Register(ctx context.Context, user *User) (*User, error)
}

// PasswordAuthenticator authenticates passwords
type PasswordAuthenticator interface {
	HashPassword(password string) (string, error)
	ComparePasswordAndHash(password, hash string) error
}

// TokenService signs and verifies bearer tokens. Access and refresh
// tokens use distinct secrets and are never interchangeable.
type TokenService interface {
	IssueAccessToken(identity Identity) (string, error)
	IssueRefreshToken(userID string) (string, error)
	ValidateAccessToken(raw string) (AuthClaims, error)
	ValidateRefreshToken(raw string) (AuthClaims, error)
}

// TokenPair is the credential pair issued on login and registration.
type TokenPair struct {
	AuthToken    string `json:"authToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthResult is what a successful login or registration yields.
type AuthResult struct {
	Identity Identity
	User     *User
	Tokens   TokenPair
}

// DefaultLogger returns the stdout fallback logger used when no logger
// is configured.
func DefaultLogger() Logger {
	return defLogger{}
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] AUTH "+newline(format), args...)
}

func (d defLogger) Warn(format string, args ...any) {
	fmt.Printf("[WRN] AUTH "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] AUTH "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] AUTH "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}

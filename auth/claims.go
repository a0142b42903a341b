package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims represents verified token claims without tying callers to a
// specific signing implementation
type AuthClaims interface {
	Subject() string
	UserID() string
	Role() UserRole
	GymID() string
	MemberID() string
	Expires() time.Time
	IssuedAt() time.Time
}

// JWTClaims is the concrete implementation of AuthClaims. Access tokens
// carry role and optional gym scope; refresh tokens carry only the
// registered claims.
type JWTClaims struct {
	jwt.RegisteredClaims
	UserRole string `json:"role,omitempty"`
	Gym      string `json:"gymId,omitempty"`
	Member   string `json:"memberId,omitempty"`
}

// Verify interface compliance
var _ AuthClaims = (*JWTClaims)(nil)

// Subject returns the subject claim
func (c *JWTClaims) Subject() string {
	return c.RegisteredClaims.Subject
}

// UserID returns the user ID carried in the subject claim
func (c *JWTClaims) UserID() string {
	return c.Subject()
}

// Role returns the user's role
func (c *JWTClaims) Role() UserRole {
	return c.UserRole
}

// GymID returns the scoped gym id, empty when the token has no gym scope
func (c *JWTClaims) GymID() string {
	return c.Gym
}

// MemberID returns the scoped member id, empty for owners and unscoped tokens
func (c *JWTClaims) MemberID() string {
	return c.Member
}

// Expires returns the expiration time
func (c *JWTClaims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}

// IssuedAt returns the issued at time
func (c *JWTClaims) IssuedAt() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}

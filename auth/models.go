package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// UserRole is the user's role
type UserRole = string

const (
	// RoleOwner owns one or more gyms and can mutate them
	RoleOwner UserRole = "OWNER"
	// RoleTrainer is gym staff, read access to their gym
	RoleTrainer UserRole = "TRAINER"
	// RoleMember is a regular member, read access to their gym
	RoleMember UserRole = "MEMBER"
)

// User is the user model
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Email         string     `bun:"email,notnull,unique" json:"email,omitempty"`
	PasswordHash  string     `bun:"password_hash,notnull" json:"-"`
	Role          UserRole   `bun:"user_role,notnull" json:"role,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// NormalizeEmail lower-cases and trims an email address. Callers must
// normalize at the validation boundary; stores and services assume
// already-normalized input.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

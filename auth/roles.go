package auth

import (
	"context"

	"github.com/google/uuid"
)

// IsValid checks if the role is one of the predefined valid roles
func IsValidRole(r UserRole) bool {
	switch r {
	case RoleOwner, RoleTrainer, RoleMember:
		return true
	default:
		return false
	}
}

// GetAllRoles returns all predefined roles
func GetAllRoles() []UserRole {
	return []UserRole{
		RoleOwner,
		RoleTrainer,
		RoleMember,
	}
}

// ParseRole safely parses a string into a UserRole type. An empty string
// falls back to RoleMember, the registration default.
func ParseRole(roleStr string) (UserRole, bool) {
	if roleStr == "" {
		return RoleMember, true
	}
	role := UserRole(roleStr)
	return role, IsValidRole(role)
}

// ScopeStore resolves a user's gym context at token-issuance time.
type ScopeStore interface {
	// FindOwnedGymID returns the first gym owned by the user, if any.
	FindOwnedGymID(ctx context.Context, ownerID uuid.UUID) (uuid.UUID, bool, error)
	// FindMembership returns the user's membership link, if any.
	FindMembership(ctx context.Context, userID uuid.UUID) (memberID, gymID uuid.UUID, ok bool, err error)
}

// Scope is the gym context embedded in an access token. Zero values mean
// the token carries no scope, which is not an error: an owner may not
// have created a gym yet.
type Scope struct {
	GymID    string
	MemberID string
}

type scopeResolver func(ctx context.Context, store ScopeStore, userID uuid.UUID) (Scope, error)

// scopeResolvers is the single place that maps a role to its scope
// derivation. Adding a role means adding one entry here.
var scopeResolvers = map[UserRole]scopeResolver{
	RoleOwner:   resolveOwnerScope,
	RoleTrainer: resolveMembershipScope,
	RoleMember:  resolveMembershipScope,
}

// ResolveScope derives the token scope for a user. Unknown roles resolve
// to an empty scope.
func ResolveScope(ctx context.Context, store ScopeStore, role UserRole, userID uuid.UUID) (Scope, error) {
	resolver, ok := scopeResolvers[role]
	if !ok || store == nil {
		return Scope{}, nil
	}
	return resolver(ctx, store, userID)
}

func resolveOwnerScope(ctx context.Context, store ScopeStore, userID uuid.UUID) (Scope, error) {
	gymID, ok, err := store.FindOwnedGymID(ctx, userID)
	if err != nil {
		return Scope{}, err
	}
	if !ok {
		return Scope{}, nil
	}
	return Scope{GymID: gymID.String()}, nil
}

func resolveMembershipScope(ctx context.Context, store ScopeStore, userID uuid.UUID) (Scope, error) {
	memberID, gymID, ok, err := store.FindMembership(ctx, userID)
	if err != nil {
		return Scope{}, err
	}
	if !ok {
		return Scope{}, nil
	}
	return Scope{GymID: gymID.String(), MemberID: memberID.String()}, nil
}

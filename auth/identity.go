package auth

// Identity is the request-scoped authenticated identity derived from a
// verified access token. It is an immutable value passed explicitly
// through the call chain, never persisted.
type Identity struct {
	UserID   string
	Role     UserRole
	GymID    string
	MemberID string
}

// IdentityFromClaims builds an Identity from verified claims.
func IdentityFromClaims(claims AuthClaims) Identity {
	return Identity{
		UserID:   claims.UserID(),
		Role:     claims.Role(),
		GymID:    claims.GymID(),
		MemberID: claims.MemberID(),
	}
}

// IdentityFromUser builds an Identity for a freshly authenticated user
// with the given scope.
func IdentityFromUser(user *User, scope Scope) Identity {
	return Identity{
		UserID:   user.ID.String(),
		Role:     user.Role,
		GymID:    scope.GymID,
		MemberID: scope.MemberID,
	}
}

// IsZero reports whether no identity was established.
func (i Identity) IsZero() bool {
	return i.UserID == ""
}

package gym

import (
	"context"

	"github.com/Rajat-Bansal3/Logit-Gym/auth"
	"github.com/google/uuid"
)

// AccessMode is the kind of access being decided.
type AccessMode string

const (
	AccessRead  AccessMode = "read"
	AccessWrite AccessMode = "write"
)

// MembershipFinder is the lookup the guard performs at decision time.
type MembershipFinder interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*Member, error)
}

// Guard decides resource-level access with the ownership-or-membership
// rule. Membership is looked up fresh on every read decision: the gym
// scope captured in the token at issuance time may be stale.
type Guard struct {
	members MembershipFinder
	logger  auth.Logger
}

// NewGuard returns a new access guard.
func NewGuard(members MembershipFinder) *Guard {
	return &Guard{members: members}
}

func (g *Guard) WithLogger(logger auth.Logger) *Guard {
	g.logger = logger
	return g
}

// CanAccess decides whether the identity may read or write the gym.
// The owner may do both. A trainer or member of the gym may read.
// Everything else is denied. Callers must have resolved the gym first:
// absent or deleted gyms never reach an access decision.
func (g *Guard) CanAccess(ctx context.Context, record *Gym, identity auth.Identity, mode AccessMode) (bool, error) {
	if record == nil {
		return false, nil
	}

	if record.OwnerID.String() == identity.UserID {
		return true, nil
	}

	if mode != AccessRead {
		// Only the owner mutates.
		return false, nil
	}

	switch identity.Role {
	case auth.RoleTrainer, auth.RoleMember:
		return g.isCurrentMember(ctx, record, identity)
	case auth.RoleOwner:
		// An owner of some other gym gets no implicit read access.
		return false, nil
	default:
		return false, nil
	}
}

func (g *Guard) isCurrentMember(ctx context.Context, record *Gym, identity auth.Identity) (bool, error) {
	userID, err := uuid.Parse(identity.UserID)
	if err != nil {
		return false, nil
	}

	membership, err := g.members.FindByUserID(ctx, userID)
	if err != nil {
		return false, err
	}
	if membership == nil {
		return false, nil
	}

	return membership.GymID == record.ID, nil
}

// FilterForNonOwner returns a copy of the gym shaped for a non-owner
// read: the owner reference and the profile's owner contact fields are
// stripped. It is response shaping, not an access decision, and runs
// only after CanAccess granted the read.
func FilterForNonOwner(record *Gym) *Gym {
	if record == nil {
		return nil
	}

	filtered := *record
	filtered.OwnerID = uuid.Nil

	if record.Profile != nil {
		profile := *record.Profile
		profile.OwnerName = ""
		profile.OwnerContact = ""
		filtered.Profile = &profile
	}

	return &filtered
}

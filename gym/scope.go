package gym

import (
	"context"
	"errors"

	"github.com/Rajat-Bansal3/Logit-Gym/auth"
	"github.com/google/uuid"
)

// ScopeResolver adapts the gym repositories to the scope lookups the
// identity service performs at token-issuance time.
type ScopeResolver struct {
	gyms    *Gyms
	members *Members
}

// Verify interface compliance
var _ auth.ScopeStore = (*ScopeResolver)(nil)

// NewScopeResolver creates a resolver over the gym and member repositories.
func NewScopeResolver(gyms *Gyms, members *Members) *ScopeResolver {
	return &ScopeResolver{gyms: gyms, members: members}
}

// FindOwnedGymID returns the first gym owned by the user, if any.
func (s *ScopeResolver) FindOwnedGymID(ctx context.Context, ownerID uuid.UUID) (uuid.UUID, bool, error) {
	record, err := s.gyms.FindFirstByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, err
	}
	return record.ID, true, nil
}

// FindMembership returns the user's membership link, if any.
func (s *ScopeResolver) FindMembership(ctx context.Context, userID uuid.UUID) (uuid.UUID, uuid.UUID, bool, error) {
	record, err := s.members.FindByUserID(ctx, userID)
	if err != nil {
		return uuid.Nil, uuid.Nil, false, err
	}
	if record == nil {
		return uuid.Nil, uuid.Nil, false, nil
	}
	return record.ID, record.GymID, true, nil
}

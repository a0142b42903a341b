package gym

import (
	"context"

	"github.com/Rajat-Bansal3/Logit-Gym/auth"
	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

// GymStore is the persistence surface the service needs.
type GymStore interface {
	Create(ctx context.Context, record *Gym) (*Gym, error)
	CreateProfile(ctx context.Context, profile *Profile) error
	UpsertProfile(ctx context.Context, gymID uuid.UUID, profile *Profile) error
	FindByID(ctx context.Context, id uuid.UUID) (*Gym, error)
	FindByIDWithProfile(ctx context.Context, id uuid.UUID) (*Gym, error)
	Update(ctx context.Context, id uuid.UUID, updates GymUpdate) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// AccessDecider decides read/write permission on a resolved gym.
type AccessDecider interface {
	CanAccess(ctx context.Context, record *Gym, identity auth.Identity, mode AccessMode) (bool, error)
}

// CreateInput is a validated gym creation request.
type CreateInput struct {
	Name    string
	Address string
	Profile *Profile
}

// UpdateInput is a validated partial gym update.
type UpdateInput struct {
	Name    *string
	Address *string
	Profile *Profile
}

// Service implements the gym operations behind the access guard.
type Service struct {
	store  GymStore
	guard  AccessDecider
	logger auth.Logger
}

// NewService returns a new gym service.
func NewService(store GymStore, guard AccessDecider) *Service {
	return &Service{
		store: store,
		guard: guard,
	}
}

func (s *Service) WithLogger(logger auth.Logger) *Service {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// Create persists a gym owned by the caller, with an optional profile.
// Only users with the owner role may create gyms.
func (s *Service) Create(ctx context.Context, identity auth.Identity, input CreateInput) (*Gym, error) {
	if identity.Role != auth.RoleOwner {
		return nil, ErrForbidden
	}

	ownerID, err := uuid.Parse(identity.UserID)
	if err != nil {
		return nil, goerrors.New("invalid user id", goerrors.CategoryBadInput).
			WithCode(goerrors.CodeBadRequest)
	}

	s.debug("createGym: creating gym", "owner_id", identity.UserID)

	record, err := s.store.Create(ctx, &Gym{
		Name:    input.Name,
		Address: input.Address,
		OwnerID: ownerID,
	})
	if err != nil {
		return nil, err
	}

	if input.Profile != nil {
		input.Profile.GymID = record.ID
		if err := s.store.CreateProfile(ctx, input.Profile); err != nil {
			return nil, err
		}
		record.Profile = input.Profile
	}

	s.debug("createGym: success", "gym_id", record.ID)
	return record, nil
}

// Get returns a gym the caller may read. Non-owner reads come back with
// the owner-only fields stripped.
func (s *Service) Get(ctx context.Context, identity auth.Identity, gymID uuid.UUID) (*Gym, error) {
	record, err := s.store.FindByIDWithProfile(ctx, gymID)
	if err != nil {
		return nil, err
	}

	allowed, err := s.guard.CanAccess(ctx, record, identity, AccessRead)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrForbidden
	}

	if record.OwnerID.String() != identity.UserID {
		record = FilterForNonOwner(record)
	}

	return record, nil
}

// Update applies a partial update. Only the owner may mutate.
func (s *Service) Update(ctx context.Context, identity auth.Identity, gymID uuid.UUID, input UpdateInput) (*Gym, error) {
	record, err := s.store.FindByID(ctx, gymID)
	if err != nil {
		return nil, err
	}

	allowed, err := s.guard.CanAccess(ctx, record, identity, AccessWrite)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrForbidden
	}

	if input.Name != nil || input.Address != nil {
		if err := s.store.Update(ctx, gymID, GymUpdate{Name: input.Name, Address: input.Address}); err != nil {
			return nil, err
		}
	}

	if input.Profile != nil {
		if err := s.store.UpsertProfile(ctx, gymID, input.Profile); err != nil {
			return nil, err
		}
	}

	return s.store.FindByIDWithProfile(ctx, gymID)
}

// Delete soft-deletes a gym. Only the owner may delete.
func (s *Service) Delete(ctx context.Context, identity auth.Identity, gymID uuid.UUID) error {
	record, err := s.store.FindByID(ctx, gymID)
	if err != nil {
		return err
	}

	allowed, err := s.guard.CanAccess(ctx, record, identity, AccessWrite)
	if err != nil {
		return err
	}
	if !allowed {
		return ErrForbidden
	}

	return s.store.SoftDelete(ctx, gymID)
}

func (s *Service) debug(format string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(format, args...)
	}
}

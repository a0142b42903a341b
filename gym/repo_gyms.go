package gym

import (
	"context"
	"database/sql"
	"errors"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// GymUpdate carries the mutable gym attributes. Nil fields are left
// untouched.
type GymUpdate struct {
	Name    *string
	Address *string
}

// Gyms is the gym repository over bun. Every read excludes soft-deleted
// rows.
type Gyms struct {
	db *bun.DB
}

// NewGymsRepository creates a new repository.
func NewGymsRepository(db *bun.DB) *Gyms {
	return &Gyms{db: db}
}

// Create persists a new gym.
func (r *Gyms) Create(ctx context.Context, record *Gym) (*Gym, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}

	_, err := r.db.NewInsert().
		Model(record).
		Exec(ctx)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to create gym")
	}
	return record, nil
}

// CreateProfile persists a new gym profile.
func (r *Gyms) CreateProfile(ctx context.Context, profile *Profile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}

	_, err := r.db.NewInsert().
		Model(profile).
		Exec(ctx)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to create gym profile")
	}
	return nil
}

// UpsertProfile creates or partially updates the profile for a gym.
// Zero-valued fields of the incoming profile are kept from the stored row.
func (r *Gyms) UpsertProfile(ctx context.Context, gymID uuid.UUID, profile *Profile) error {
	if profile == nil {
		return nil
	}
	profile.GymID = gymID
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}

	var sets []string
	if profile.Timing != "" {
		sets = append(sets, "timing = EXCLUDED.timing")
	}
	if profile.OpenDays != nil {
		sets = append(sets, "open_days = EXCLUDED.open_days")
	}
	if profile.Fees != 0 {
		sets = append(sets, "fees = EXCLUDED.fees")
	}
	if profile.GenderAllowed != "" {
		sets = append(sets, "gender_allowed = EXCLUDED.gender_allowed")
	}
	if profile.OwnerName != "" {
		sets = append(sets, "owner_name = EXCLUDED.owner_name")
	}
	if profile.OwnerContact != "" {
		sets = append(sets, "owner_contact = EXCLUDED.owner_contact")
	}
	if profile.Amenities != nil {
		sets = append(sets, "amenities = EXCLUDED.amenities")
	}
	if profile.Images != nil {
		sets = append(sets, "images = EXCLUDED.images")
	}
	if profile.FitnessProfession != "" {
		sets = append(sets, "fitness_profession = EXCLUDED.fitness_profession")
	}
	if profile.ReferralOffer != "" {
		sets = append(sets, "referral_offer = EXCLUDED.referral_offer")
	}

	// A DO UPDATE with no explicit set list assigns every column from
	// EXCLUDED, which would blank the stored row.
	if len(sets) == 0 {
		return nil
	}

	q := r.db.NewInsert().
		Model(profile).
		On("CONFLICT (gym_id) DO UPDATE")
	for _, set := range sets {
		q = q.Set(set)
	}

	if _, err := q.Exec(ctx); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to upsert gym profile")
	}
	return nil
}

// FindByID fetches a non-deleted gym.
func (r *Gyms) FindByID(ctx context.Context, id uuid.UUID) (*Gym, error) {
	record := &Gym{}
	err := r.db.NewSelect().
		Model(record).
		Where("?TableAlias.id = ?", id).
		Where("?TableAlias.is_deleted = ?", false).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, r.mapLookupError(err, id)
	}
	return record, nil
}

// FindByIDWithProfile fetches a non-deleted gym with its profile loaded.
func (r *Gyms) FindByIDWithProfile(ctx context.Context, id uuid.UUID) (*Gym, error) {
	record := &Gym{}
	err := r.db.NewSelect().
		Model(record).
		Relation("Profile").
		Where("?TableAlias.id = ?", id).
		Where("?TableAlias.is_deleted = ?", false).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, r.mapLookupError(err, id)
	}
	return record, nil
}

// FindFirstByOwnerID returns the oldest gym owned by the user. Owners
// may own several gyms; token scope embeds the first match.
func (r *Gyms) FindFirstByOwnerID(ctx context.Context, ownerID uuid.UUID) (*Gym, error) {
	record := &Gym{}
	err := r.db.NewSelect().
		Model(record).
		Where("?TableAlias.owner_id = ?", ownerID).
		Where("?TableAlias.is_deleted = ?", false).
		Order("created_at ASC", "id ASC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to look up owned gym")
	}
	return record, nil
}

// Update applies a partial update to the mutable gym attributes.
func (r *Gyms) Update(ctx context.Context, id uuid.UUID, updates GymUpdate) error {
	if updates.Name == nil && updates.Address == nil {
		return nil
	}

	now := time.Now()
	q := r.db.NewUpdate().
		Model((*Gym)(nil)).
		Set("updated_at = ?", now).
		Where("id = ?", id).
		Where("is_deleted = ?", false)

	if updates.Name != nil {
		q = q.Set("name = ?", *updates.Name)
	}
	if updates.Address != nil {
		q = q.Set("address = ?", *updates.Address)
	}

	if _, err := q.Exec(ctx); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to update gym")
	}
	return nil
}

// SoftDelete marks the gym deleted. The row stays; lookups stop
// returning it.
func (r *Gyms) SoftDelete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.NewUpdate().
		Model((*Gym)(nil)).
		Set("is_deleted = ?", true).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to delete gym")
	}
	return nil
}

func (r *Gyms) mapLookupError(err error, id uuid.UUID) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to look up gym").
		WithMetadata(map[string]any{"gym_id": id.String()})
}

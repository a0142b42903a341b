// Package gym implements the gym domain: records, membership links, and
// the ownership-or-membership access guard consulted before any gym data
// is returned or mutated.
package gym

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Gym is the gym model. A gym is owned by exactly one user and its
// owner never changes. Deleted gyms keep their row with is_deleted set
// and are excluded from every lookup.
type Gym struct {
	bun.BaseModel `bun:"table:gyms,alias:gym"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Name          string     `bun:"name,notnull" json:"name,omitempty"`
	Address       string     `bun:"address,notnull" json:"address,omitempty"`
	OwnerID       uuid.UUID  `bun:"owner_id,notnull,type:uuid" json:"ownerId,omitempty"`
	IsDeleted     bool       `bun:"is_deleted,notnull,default:false" json:"-"`
	Profile       *Profile   `bun:"rel:has-one,join:id=gym_id" json:"profile,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// Profile is the public gym profile. OwnerName and OwnerContact are
// owner-only fields, stripped before a non-owner read is returned.
type Profile struct {
	bun.BaseModel     `bun:"table:gym_profiles,alias:gymp"`
	ID                uuid.UUID `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	GymID             uuid.UUID `bun:"gym_id,notnull,unique,type:uuid" json:"gymId,omitempty"`
	Timing            string    `bun:"timing" json:"timing,omitempty"`
	OpenDays          []string  `bun:"open_days" json:"openDays,omitempty"`
	Fees              float64   `bun:"fees" json:"fees,omitempty"`
	GenderAllowed     string    `bun:"gender_allowed" json:"genderAllowed,omitempty"`
	OwnerName         string    `bun:"owner_name" json:"ownerName,omitempty"`
	OwnerContact      string    `bun:"owner_contact" json:"ownerContact,omitempty"`
	Amenities         []string  `bun:"amenities" json:"amenities,omitempty"`
	Images            []string  `bun:"images" json:"images,omitempty"`
	FitnessProfession string    `bun:"fitness_profession" json:"fitnessProfession,omitempty"`
	ReferralOffer     string    `bun:"referral_offer" json:"referralOffer,omitempty"`
}

// Member links a trainer or member to the single gym they belong to.
type Member struct {
	bun.BaseModel `bun:"table:members,alias:mbr"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	UserID        uuid.UUID  `bun:"user_id,notnull,unique,type:uuid" json:"userId,omitempty"`
	GymID         uuid.UUID  `bun:"gym_id,notnull,type:uuid" json:"gymId,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
}

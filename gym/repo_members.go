package gym

import (
	"context"
	"database/sql"
	"errors"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Members is the membership repository over bun.
type Members struct {
	db *bun.DB
}

// NewMembersRepository creates a new repository.
func NewMembersRepository(db *bun.DB) *Members {
	return &Members{db: db}
}

// FindByUserID returns the user's membership, or nil when the user
// belongs to no gym. Membership is unique by user.
func (r *Members) FindByUserID(ctx context.Context, userID uuid.UUID) (*Member, error) {
	record := &Member{}
	err := r.db.NewSelect().
		Model(record).
		Where("?TableAlias.user_id = ?", userID).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to look up membership")
	}
	return record, nil
}

// Create persists a new membership link.
func (r *Members) Create(ctx context.Context, record *Member) (*Member, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}

	_, err := r.db.NewInsert().
		Model(record).
		Exec(ctx)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryConflict, "could not create membership")
	}
	return record, nil
}

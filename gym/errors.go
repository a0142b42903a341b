package gym

import "github.com/goliatone/go-errors"

const (
	// TextCodeGymNotFound tags lookups of absent or deleted gyms
	TextCodeGymNotFound = "GYM_NOT_FOUND"
	// TextCodeGymForbidden tags access decisions that denied the caller
	TextCodeGymForbidden = "GYM_FORBIDDEN"
)

// ErrNotFound is returned when a gym is absent or soft-deleted. It is
// decided before any permission evaluation, so a deleted gym looks the
// same to its owner as to a stranger.
var ErrNotFound = errors.New("gym not found", errors.CategoryNotFound).
	WithTextCode(TextCodeGymNotFound).
	WithCode(errors.CodeNotFound)

// ErrForbidden is returned when an authenticated caller lacks permission
// on an existing gym.
var ErrForbidden = errors.New("you do not have permission to access this gym", errors.CategoryAuthz).
	WithTextCode(TextCodeGymForbidden).
	WithCode(errors.CodeForbidden)

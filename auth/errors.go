package auth

import (
	"github.com/goliatone/go-errors"
)

const (
	// TextCodeUnauthorized tags missing or unverifiable credentials
	TextCodeUnauthorized = "UNAUTHORIZED"
	// TextCodeInvalidCredentials tags a failed login
	TextCodeInvalidCredentials = "INVALID_CREDENTIALS"
	// TextCodeEmailTaken tags a duplicate registration
	TextCodeEmailTaken = "EMAIL_TAKEN"
	// TextCodeTokenInvalid tags any token verification failure
	TextCodeTokenInvalid = "TOKEN_INVALID"
	// TextCodeEmptyPassword tags an empty password input
	TextCodeEmptyPassword = "EMPTY_PASSWORD"
)

// ErrUnauthorized is returned when a request carries no usable credential.
var ErrUnauthorized = errors.New("authentication required", errors.CategoryAuth).
	WithTextCode(TextCodeUnauthorized).
	WithCode(errors.CodeUnauthorized)

// ErrInvalidCredentials is returned for an unknown email and for a wrong
// password alike. The two cases are intentionally indistinguishable so a
// caller cannot enumerate registered emails.
var ErrInvalidCredentials = errors.New("invalid credentials", errors.CategoryAuthz).
	WithTextCode(TextCodeInvalidCredentials).
	WithCode(errors.CodeForbidden)

// ErrEmailTaken is returned when registering an email that already exists.
var ErrEmailTaken = errors.New("email already exists", errors.CategoryConflict).
	WithTextCode(TextCodeEmailTaken).
	WithCode(errors.CodeConflict)

// ErrTokenInvalid is returned for every token verification failure:
// bad signature, malformed token, or expiry. The cause is logged, never
// surfaced, so the error gives no oracle on why verification failed.
var ErrTokenInvalid = errors.New("invalid token", errors.CategoryAuth).
	WithTextCode(TextCodeTokenInvalid).
	WithCode(errors.CodeUnauthorized)

// ErrNoEmptyString is returned when hashing an empty password.
var ErrNoEmptyString = errors.New("password must not be empty", errors.CategoryValidation).
	WithTextCode(TextCodeEmptyPassword).
	WithCode(errors.CodeBadRequest)

// ErrMismatchedHashAndPassword is the internal bcrypt mismatch marker.
// Login collapses it into ErrInvalidCredentials before it reaches a caller.
var ErrMismatchedHashAndPassword = errors.New("password does not match", errors.CategoryAuthz).
	WithTextCode(TextCodeInvalidCredentials).
	WithCode(errors.CodeForbidden)

package httpapi

import (
	"github.com/Rajat-Bansal3/Logit-Gym/auth"
)

// Response is the JSON envelope every endpoint returns.
type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    any          `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError is a single per-field validation message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// UserData is the user shape returned on login and registration.
type UserData struct {
	ID    string        `json:"id"`
	Email string        `json:"email"`
	Role  auth.UserRole `json:"role"`
}

// AuthData carries the user and token pair on login and registration.
type AuthData struct {
	User   UserData       `json:"user"`
	Tokens auth.TokenPair `json:"tokens"`
}

// ValidationData is the body of a token validation response.
type ValidationData struct {
	Valid bool      `json:"valid"`
	User  *UserData `json:"user,omitempty"`
}

func newAuthData(result *auth.AuthResult) AuthData {
	return AuthData{
		User: UserData{
			ID:    result.User.ID.String(),
			Email: result.User.Email,
			Role:  result.User.Role,
		},
		Tokens: result.Tokens,
	}
}

package httpapi

import (
	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"
)

func (s *Server) handleRegister(c *fiber.Ctx) error {
	payload := new(RegisterPayload)
	if err := c.BodyParser(payload); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryBadInput, "failed to parse request body").
			WithCode(goerrors.CodeBadRequest)
	}

	payload.Normalize()
	if err := payload.Validate(); err != nil {
		return asValidationError(err)
	}

	result, err := s.auth.Register(c.UserContext(), payload.Email, payload.Password, payload.Role)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(Response{
		Success: true,
		Message: "user registered successfully",
		Data:    newAuthData(result),
	})
}

func (s *Server) handleLogin(c *fiber.Ctx) error {
	payload := new(LoginPayload)
	if err := c.BodyParser(payload); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryBadInput, "failed to parse request body").
			WithCode(goerrors.CodeBadRequest)
	}

	payload.Normalize()
	if err := payload.Validate(); err != nil {
		return asValidationError(err)
	}

	result, err := s.auth.Login(c.UserContext(), payload.Email, payload.Password)
	if err != nil {
		return err
	}

	return c.JSON(Response{
		Success: true,
		Message: "user logged in successfully",
		Data:    newAuthData(result),
	})
}

// handleValidate reports whether the presented bearer token is a valid
// access token. It never errors: an unverifiable token is a negative
// result, not a failure.
func (s *Server) handleValidate(c *fiber.Ctx) error {
	token, ok := bearerToken(c)
	if !ok {
		return c.JSON(Response{
			Success: true,
			Message: "token validated",
			Data:    ValidationData{Valid: false},
		})
	}

	identity, ok := s.auth.ValidateAccessToken(c.UserContext(), token)
	if !ok {
		return c.JSON(Response{
			Success: true,
			Message: "token validated",
			Data:    ValidationData{Valid: false},
		})
	}

	return c.JSON(Response{
		Success: true,
		Message: "token validated",
		Data: ValidationData{
			Valid: true,
			User: &UserData{
				ID:   identity.UserID,
				Role: identity.Role,
			},
		},
	})
}

// Package httpapi exposes the auth and gym services over HTTP. It is
// transport plumbing: every decision that matters happens in the
// services behind it.
package httpapi

import (
	"context"

	"github.com/Rajat-Bansal3/Logit-Gym/auth"
	"github.com/Rajat-Bansal3/Logit-Gym/gym"
	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-print"
	"github.com/google/uuid"
)

// AuthService is the identity surface the handlers need.
type AuthService interface {
	Register(ctx context.Context, email, password string, role auth.UserRole) (*auth.AuthResult, error)
	Login(ctx context.Context, email, password string) (*auth.AuthResult, error)
	ValidateAccessToken(ctx context.Context, raw string) (auth.Identity, bool)
}

// GymService is the gym surface the handlers need.
type GymService interface {
	Create(ctx context.Context, identity auth.Identity, input gym.CreateInput) (*gym.Gym, error)
	Get(ctx context.Context, identity auth.Identity, gymID uuid.UUID) (*gym.Gym, error)
	Update(ctx context.Context, identity auth.Identity, gymID uuid.UUID, input gym.UpdateInput) (*gym.Gym, error)
	Delete(ctx context.Context, identity auth.Identity, gymID uuid.UUID) error
}

// Server wires the services into fiber routes.
type Server struct {
	auth   AuthService
	gyms   GymService
	logger auth.Logger
}

// NewServer returns a new Server.
func NewServer(authService AuthService, gymService GymService) *Server {
	return &Server{
		auth:   authService,
		gyms:   gymService,
		logger: auth.DefaultLogger(),
	}
}

func (s *Server) WithLogger(logger auth.Logger) *Server {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// App builds the fiber application with the error handler installed.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: s.errorHandler,
	})

	s.RegisterRoutes(app)

	return app
}

// RegisterRoutes mounts all endpoints under /api/v1.
func (s *Server) RegisterRoutes(app *fiber.App) {
	v1 := app.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.Post("/register", s.handleRegister)
	authGroup.Post("/login", s.handleLogin)
	authGroup.Get("/validate", s.handleValidate)

	gyms := v1.Group("/gyms", s.RequireAuth())
	gyms.Post("/", s.handleCreateGym)
	gyms.Get("/:id", s.handleGetGym)
	gyms.Patch("/:id", s.handleUpdateGym)
	gyms.Delete("/:id", s.handleDeleteGym)
}

// errorHandler renders domain errors with their HTTP-equivalent status.
// Anything unrecognized is logged and answered with a generic message so
// internals never leak to the caller.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	var richErr *goerrors.Error
	if !goerrors.As(err, &richErr) {
		if fiberErr, ok := err.(*fiber.Error); ok {
			return c.Status(fiberErr.Code).JSON(Response{
				Success: false,
				Message: fiberErr.Message,
			})
		}

		s.logger.Error("Unexpected error", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(Response{
			Success: false,
			Message: "An unexpected server error occurred",
		})
	}

	status := richErr.Code
	if status == 0 {
		status = statusFromCategory(richErr)
	}

	if status >= fiber.StatusInternalServerError {
		s.logger.Error("Request failed",
			"error", richErr.Message,
			"category", richErr.Category,
			"details", print.MaybePrettyJSON(richErr.Metadata),
		)
		return c.Status(status).JSON(Response{
			Success: false,
			Message: "An unexpected server error occurred",
		})
	}

	s.logger.Debug("Request rejected",
		"error", richErr.Message,
		"category", richErr.Category,
		"text_code", richErr.TextCode,
	)

	return c.Status(status).JSON(Response{
		Success: false,
		Message: richErr.Message,
		Errors:  fieldErrors(richErr),
	})
}

func statusFromCategory(richErr *goerrors.Error) int {
	switch richErr.Category {
	case goerrors.CategoryAuth:
		return fiber.StatusUnauthorized
	case goerrors.CategoryAuthz:
		return fiber.StatusForbidden
	case goerrors.CategoryValidation, goerrors.CategoryBadInput:
		return fiber.StatusBadRequest
	case goerrors.CategoryConflict:
		return fiber.StatusConflict
	case goerrors.CategoryNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func fieldErrors(richErr *goerrors.Error) []FieldError {
	if richErr.Metadata == nil {
		return nil
	}
	fields, ok := richErr.Metadata["fields"].([]FieldError)
	if !ok {
		return nil
	}
	return fields
}

package httpapi

import (
	"strings"

	"github.com/Rajat-Bansal3/Logit-Gym/auth"
	"github.com/gofiber/fiber/v2"
)

const bearerScheme = "Bearer "

// bearerToken extracts the raw token from the Authorization header.
func bearerToken(c *fiber.Ctx) (string, bool) {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return "", false
	}

	token, ok := strings.CutPrefix(header, bearerScheme)
	if !ok || token == "" {
		return "", false
	}

	return token, true
}

// RequireAuth rejects requests without a verifiable access token and
// stores the derived identity in the request context for downstream
// handlers. Missing, malformed, and invalid tokens all fail the same way.
func (s *Server) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			s.logger.Warn("Authentication failed: no token provided")
			return auth.ErrUnauthorized
		}

		identity, ok := s.auth.ValidateAccessToken(c.UserContext(), token)
		if !ok {
			s.logger.Warn("Authentication failed: invalid token")
			return auth.ErrUnauthorized
		}

		c.SetUserContext(auth.WithIdentity(c.UserContext(), identity))
		s.logger.Debug("User authenticated", "user_id", identity.UserID)

		return c.Next()
	}
}

// requestIdentity returns the identity the middleware established.
func requestIdentity(c *fiber.Ctx) (auth.Identity, bool) {
	return auth.IdentityFromContext(c.UserContext())
}

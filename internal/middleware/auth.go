// Package middleware provides authentication, logging, rate limiting, and
// metrics middleware for the application.
package middleware

import (
	"devconnect/internal/auth"
	"devconnect/internal/models"

	"github.com/gofiber/fiber/v2"
)

// TokenHeader is the request header carrying the session credential.
const TokenHeader = "x-auth-token"

// UserIDLocal is the Fiber locals key under which the authenticated user ID
// is stored.
const UserIDLocal = "userID"

// AuthRequired returns a middleware enforcing authentication on private
// routes. It reads the token header, verifies it through the codec, and
// attaches the resolved user ID to the request context.
func AuthRequired(codec *auth.Codec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get(TokenHeader)
		if token == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("No token, authorization denied"))
		}

		userID, err := codec.Verify(token)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Token is not valid"))
		}

		c.Locals(UserIDLocal, userID)
		return c.Next()
	}
}

// AuthenticatedUserID returns the user ID attached by AuthRequired.
func AuthenticatedUserID(c *fiber.Ctx) uint {
	id, _ := c.Locals(UserIDLocal).(uint)
	return id
}

package middleware

import (
	"strings"

	"github.com/fadilmartias/rozgar/internal/service"
	"github.com/fadilmartias/rozgar/internal/util"
	"github.com/gofiber/fiber/v2"
)

const (
	localUserID = "userID"
	localEmail  = "email"
)

// Auth requires a valid "Authorization: Bearer <jwt>" header and stores the
// caller identity in the request locals.
func Auth(tokens *service.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "Missing bearer token",
			})
		}

		claims, err := tokens.Parse(strings.TrimSpace(raw))
		if err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "Invalid or expired token",
			})
		}

		c.Locals(localUserID, claims.Subject)
		c.Locals(localEmail, claims.Email)
		return c.Next()
	}
}

func CurrentUserID(c *fiber.Ctx) string {
	id, _ := c.Locals(localUserID).(string)
	return id
}

func CurrentEmail(c *fiber.Ctx) string {
	email, _ := c.Locals(localEmail).(string)
	return email
}

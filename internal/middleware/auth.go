package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/soundfolio/artist-portal/internal/dto"
	"github.com/soundfolio/artist-portal/internal/models"
	"github.com/soundfolio/artist-portal/internal/services"
)

const userLocalsKey = "currentUser"

// SessionProtected resolves the session cookie to a user once per request
// and stores it in locals. Requests without a valid session get 401.
func SessionProtected(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := auth.CurrentUser(c.Cookies(services.SessionCookieName))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to resolve session")
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Success: false, Message: "Authentication required",
			})
		}
		c.Locals(userLocalsKey, user)
		return c.Next()
	}
}

// CurrentUser returns the user resolved by SessionProtected.
func CurrentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(userLocalsKey).(*models.User)
	return user, ok
}

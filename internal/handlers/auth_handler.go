package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/soundfolio/artist-portal/internal/config"
	"github.com/soundfolio/artist-portal/internal/dto"
	"github.com/soundfolio/artist-portal/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid request body",
		})
	}
	if req.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "User ID is required",
		})
	}

	user, token, err := h.authService.Login(req.UserID, req.Passcode)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPasscode) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Success: false, Message: "Invalid passcode",
			})
		}
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Success: false, Message: "User not found",
			})
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Login failed")
	}

	h.setSessionCookie(c, token)

	return c.JSON(dto.LoginResponse{Success: true, User: dto.NewUserResponse(user)})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.authService.Logout(c.Cookies(services.SessionCookieName)); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to logout")
	}
	h.clearSessionCookie(c)

	return c.JSON(dto.MessageResponse{Success: true, Message: "Logged out successfully"})
}

// Me never fails for "not logged in": a null user is the contract there.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.authService.CurrentUser(c.Cookies(services.SessionCookieName))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to resolve session")
	}
	if user == nil {
		return c.JSON(dto.MeResponse{Success: true, User: nil})
	}

	me, err := h.authService.Me(user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load user")
	}
	return c.JSON(dto.MeResponse{Success: true, User: me})
}

// ListUsers backs the demo account picker on the login screen.
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.authService.ListUsers()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list users")
	}

	resp := dto.UsersResponse{Success: true, Users: make([]dto.UserResponse, 0, len(users))}
	for i := range users {
		resp.Users = append(resp.Users, dto.NewUserResponse(&users[i]))
	}
	return c.JSON(resp)
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     services.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cfg.SessionMaxAge.Seconds()),
		HTTPOnly: true,
		Secure:   h.cfg.SecureCookies(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     services.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cfg.SecureCookies(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

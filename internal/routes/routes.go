package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/soundfolio/artist-portal/internal/handlers"
	"github.com/soundfolio/artist-portal/internal/middleware"
	"github.com/soundfolio/artist-portal/internal/services"
)

func Setup(
	app *fiber.App,
	authService *services.AuthService,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	catalogHandler *handlers.CatalogHandler,
	projectHandler *handlers.ProjectHandler,
	deliverableHandler *handlers.DeliverableHandler,
	commerceHandler *handlers.CommerceHandler,
	bookingHandler *handlers.BookingHandler,
	insightsHandler *handlers.InsightsHandler,
	activityHandler *handlers.ActivityHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Public catalog
	api.Get("/plans", catalogHandler.Plans)
	api.Get("/addons", catalogHandler.Addons)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/users", authHandler.ListUsers)

	// Current-user endpoint stays public: a null user is its contract.
	api.Get("/me", authHandler.Me)

	// Everything registered below requires a valid session.
	api.Use(middleware.SessionProtected(authService))

	api.Get("/projects", projectHandler.List)
	api.Get("/projects/:id", projectHandler.Get)
	api.Get("/deliverables", deliverableHandler.List)
	api.Patch("/deliverables/:id", deliverableHandler.Update)
	api.Post("/purchase-addon", commerceHandler.PurchaseAddon)
	api.Post("/subscribe", commerceHandler.Subscribe)
	api.Get("/bookings", bookingHandler.List)
	api.Post("/bookings", bookingHandler.Create)
	api.Patch("/bookings/:id", bookingHandler.Update)
	api.Get("/notifications", insightsHandler.Notifications)
	api.Get("/goals", insightsHandler.Goals)
	api.Get("/metrics", insightsHandler.Metrics)
	api.Get("/activities", activityHandler.List)

	// Admin-only feed: every activity row, unfiltered by owner.
	admin := api.Group("/admin", middleware.AdminRequired())
	admin.Get("/activities", activityHandler.List)
}

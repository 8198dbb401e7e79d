package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/procurement-service/internal/api/http/handlers"
	"github.com/spec-kit/procurement-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Tickets        *handlers.TicketsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Everything except login and the
// health probes sits behind the bearer-token middleware.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth", cfg.Auth.Login)

	protected := app.Group("", cfg.AuthMiddleware.Handle)
	protected.Get("/user", cfg.Users.Me)
	protected.Get("/ticket", cfg.Tickets.ListTickets)
	protected.Post("/ticket", cfg.Tickets.CreateTicket)
	protected.Get("/ticket/:id", cfg.Tickets.GetTicket)
	protected.Patch("/ticket/:id", cfg.Tickets.EditTicket)
}

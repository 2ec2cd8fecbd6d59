package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/finance-api/internal/api/http/handlers"
	"github.com/spec-kit/finance-api/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Accounts       *handlers.AccountsHandler
	Categories     *handlers.CategoriesHandler
	Subcategories  *handlers.SubcategoriesHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	v1 := app.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Get("/session", cfg.AuthMiddleware.Handle, cfg.Auth.Session)

	accounts := v1.Group("/accounts", cfg.AuthMiddleware.Handle)
	accounts.Get("/", cfg.Accounts.List)
	accounts.Post("/", cfg.Accounts.Create)
	accounts.Patch("/", cfg.Accounts.Update)
	accounts.Delete("/", cfg.Accounts.Delete)

	categories := v1.Group("/categories", cfg.AuthMiddleware.Handle)
	categories.Get("/subcategories", cfg.Subcategories.List)
	categories.Post("/subcategories", cfg.Subcategories.Create)
	categories.Patch("/subcategories", cfg.Subcategories.Update)
	categories.Delete("/subcategories", cfg.Subcategories.Delete)
	categories.Get("/", cfg.Categories.List)
	categories.Post("/", cfg.Categories.Create)
	categories.Patch("/", cfg.Categories.Update)
	categories.Delete("/", cfg.Categories.Delete)
}

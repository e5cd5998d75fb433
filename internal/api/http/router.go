package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Henlorata/FrakHub-sub001/internal/api/http/handlers"
	"github.com/Henlorata/FrakHub-sub001/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.AdminUsersHandler
	Assets         *handlers.AssetsHandler
	AuthMiddleware *auth.AuthMiddleware
	Authorizer     *auth.Authorizer
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle)

	users := admin.Group("/users")
	users.Post("/update-role", auth.RequireCapability(cfg.Authorizer, auth.CapabilityUpdateRole), cfg.Users.UpdateRole)
	users.Post("/change-password", auth.RequireCapability(cfg.Authorizer, auth.CapabilityChangePassword), cfg.Users.ChangePassword)
	users.Get("/:id/notifications", auth.RequireCapability(cfg.Authorizer, auth.CapabilityUpdateRole), cfg.Users.ListNotifications)
	users.Post("/delete", auth.RequireCapability(cfg.Authorizer, auth.CapabilityDeleteUser), cfg.Users.DeleteUser)

	assetGroup := admin.Group("/assets", auth.RequireCapability(cfg.Authorizer, auth.CapabilityManageAssets))
	assetGroup.Post("", cfg.Assets.Upload)
	assetGroup.Post("/delete", cfg.Assets.Delete)
}

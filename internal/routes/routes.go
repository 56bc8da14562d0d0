package routes

import (
	"codelance_backend/internal/handlers"
	"codelance_backend/internal/middleware"
	"codelance_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the HTTP API. The auth endpoints are public;
// everything else sits behind token auth plus per-request actor
// resolution, so role changes apply immediately.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	profileRepo repositories.ProfileRepository,
) {
	api := ginRouter.Group("/api/v1")

	appHandlers.Auth.RegisterRoutes(api)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(), middleware.ActorMiddleware(profileRepo))
	{
		appHandlers.User.RegisterRoutes(protected)
		appHandlers.Project.RegisterRoutes(protected)
		appHandlers.Task.RegisterRoutes(protected)
		appHandlers.Application.RegisterRoutes(protected)
		appHandlers.Message.RegisterRoutes(protected)
		appHandlers.Payment.RegisterRoutes(protected)
		appHandlers.Admin.RegisterRoutes(protected)
	}
}

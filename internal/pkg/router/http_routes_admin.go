package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inkwell-cms/InkWell/app/controllers"
	"github.com/inkwell-cms/InkWell/internal/pkg/middleware"
)

func (h HttpRouter) registerAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.RequireAdmin)

	// User management
	adminGroup.Get("/users", controllers.HandleUserIndex)
}

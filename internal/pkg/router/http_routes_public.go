package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inkwell-cms/InkWell/app/controllers"
	"github.com/inkwell-cms/InkWell/internal/pkg/middleware"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	// Article browsing
	app.Get("/articles", controllers.HandleArticleIndex)
	app.Get("/articles/:id", controllers.HandleArticleShow)

	// Category and tag browsing
	app.Get("/categories", controllers.HandleCategoryIndex)
	app.Get("/categories/:slug", controllers.HandleCategoryShow)
	app.Get("/tags", controllers.HandleTagIndex)
	app.Get("/tags/:id", controllers.HandleTagShow)

	// Static pages
	app.Get("/about", controllers.HandleAbout)

	// User profiles (self or admin, enforced by the permission engine)
	app.Get("/users/:id", middleware.RequireAuth, controllers.HandleUserShow)

	// Auth
	app.Post("/logout", middleware.RequireAuth, controllers.HandleAuthLogout)
}

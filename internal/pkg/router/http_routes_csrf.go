package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/csrf"

	"github.com/inkwell-cms/InkWell/app/controllers"
	"github.com/inkwell-cms/InkWell/internal/pkg/env"
	"github.com/inkwell-cms/InkWell/internal/pkg/middleware"
)

func (h HttpRouter) registerCSRFProtectedRoutes(app *fiber.App) {
	csrfConf := csrf.Config{
		KeyLookup:      "form:_csrf",
		ContextKey:     "csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		CookieSecure:   !env.IsDev(),
	}

	group := app.Group("", cors.New(), csrf.New(csrfConf))
	group.Get("/", controllers.HandleStart)

	// Auth
	group.Get("/login", controllers.HandleAuthLogin)
	group.Post("/login", controllers.HandleAuthLogin)
	group.Get("/register", controllers.HandleAuthRegister)
	group.Post("/register", controllers.HandleAuthRegister)

	// Comments and article images
	group.Post("/articles/:id/comments", middleware.RequireAuth, controllers.HandleCommentCreate)
	group.Post("/articles/:id/image", middleware.RequireAuth, controllers.HandleArticleImageUpload)
	group.Post("/comments/delete/:id", middleware.RequireAdmin, controllers.HandleCommentDelete)

	// User profile
	group.Get("/users/:id/edit", middleware.RequireAuth, controllers.HandleUserEdit)
	group.Post("/users/:id/edit", middleware.RequireAuth, controllers.HandleUserEdit)
	group.Post("/users/:id/password", middleware.RequireAuth, controllers.HandleUserChangePassword)

	// Article management
	group.Get("/admin/articles/new", middleware.RequireAdmin, controllers.HandleArticleNew)
	group.Post("/admin/articles/new", middleware.RequireAdmin, controllers.HandleArticleNew)
	group.Get("/admin/articles/:id/edit", middleware.RequireAdmin, controllers.HandleArticleEdit)
	group.Post("/admin/articles/:id/edit", middleware.RequireAdmin, controllers.HandleArticleEdit)
	group.Post("/admin/articles/:id/delete", middleware.RequireAdmin, controllers.HandleArticleDelete)

	// Category management
	group.Get("/admin/categories/new", middleware.RequireAdmin, controllers.HandleCategoryNew)
	group.Post("/admin/categories/new", middleware.RequireAdmin, controllers.HandleCategoryNew)
	group.Get("/admin/categories/:id/edit", middleware.RequireAdmin, controllers.HandleCategoryEdit)
	group.Post("/admin/categories/:id/edit", middleware.RequireAdmin, controllers.HandleCategoryEdit)
	group.Post("/admin/categories/:id/delete", middleware.RequireAdmin, controllers.HandleCategoryDelete)

	// Tag management
	group.Get("/admin/tags/new", middleware.RequireAdmin, controllers.HandleTagNew)
	group.Post("/admin/tags/new", middleware.RequireAdmin, controllers.HandleTagNew)
	group.Get("/admin/tags/:id/edit", middleware.RequireAdmin, controllers.HandleTagEdit)
	group.Post("/admin/tags/:id/edit", middleware.RequireAdmin, controllers.HandleTagEdit)
	group.Post("/admin/tags/:id/delete", middleware.RequireAdmin, controllers.HandleTagDelete)

	// Role management
	group.Get("/admin/users/:id/roles", middleware.RequireAdmin, controllers.HandleUserEditRoles)
	group.Post("/admin/users/:id/roles", middleware.RequireAdmin, controllers.HandleUserEditRoles)
}

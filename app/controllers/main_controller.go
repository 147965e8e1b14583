package controllers

import (
	"github.com/gofiber/fiber/v2"
)

// HandleStart renders the homepage, which is the latest-articles listing.
func HandleStart(c *fiber.Ctx) error {
	return HandleArticleIndex(c)
}

// HandleAbout renders the static about page.
func HandleAbout(c *fiber.Ctx) error {
	return c.Render("about", baseViewData(c, "About"))
}

package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/inkwell-cms/InkWell/internal/pkg/apperr"
	"github.com/inkwell-cms/InkWell/internal/pkg/logger"
	"github.com/inkwell-cms/InkWell/internal/pkg/security"
	"github.com/inkwell-cms/InkWell/internal/pkg/usercontext"
)

// currentActor resolves the request session into a permission-engine actor.
func currentActor(c *fiber.Ctx) security.Actor {
	return usercontext.GetUserContext(c).Actor()
}

// baseViewData collects the values every page template expects.
func baseViewData(c *fiber.Ctx, title string) fiber.Map {
	userCtx := usercontext.GetUserContext(c)
	data := fiber.Map{
		"Title":      title,
		"IsLoggedIn": userCtx.IsLoggedIn,
		"IsAdmin":    userCtx.IsAdmin,
		"Nickname":   userCtx.Nickname,
		"UserID":     userCtx.UserID,
	}
	fm := flash.Get(c)
	if len(fm) > 0 {
		data["FlashType"] = fm["type"]
		data["FlashMessage"] = fm["message"]
	}
	if token, ok := c.Locals("csrf").(string); ok {
		data["CSRFToken"] = token
	}
	return data
}

// parseIDParam reads a positive numeric route parameter.
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fiber.ErrNotFound
	}
	return uint(id), nil
}

// pageParam reads the ?page= query value; the service normalizes bad input.
func pageParam(c *fiber.Ctx) int {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil {
		return 1
	}
	return page
}

// handleServiceError maps a service failure onto the right HTTP response.
// Validation and business-rule failures flash back to redirectTo so the user
// can correct the form; everything else becomes a status page.
func handleServiceError(c *fiber.Ctx, err error, redirectTo string) error {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		return c.Status(fiber.StatusNotFound).Render("error", fiber.Map{
			"Title":   "Not Found",
			"Status":  fiber.StatusNotFound,
			"Message": "The requested resource was not found.",
		})
	case apperr.KindAuthorizationDenied:
		return c.Status(fiber.StatusForbidden).Render("error", fiber.Map{
			"Title":   "Access Denied",
			"Status":  fiber.StatusForbidden,
			"Message": "You are not allowed to perform this action.",
		})
	case apperr.KindValidation, apperr.KindBusinessRule:
		fm := fiber.Map{
			"type":    "error",
			"message": err.Error(),
		}
		return flash.WithError(c, fm).Redirect(redirectTo)
	default:
		logger.Log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
		return c.Status(fiber.StatusInternalServerError).Render("error", fiber.Map{
			"Title":   "Server Error",
			"Status":  fiber.StatusInternalServerError,
			"Message": "Something went wrong. Please try again later.",
		})
	}
}

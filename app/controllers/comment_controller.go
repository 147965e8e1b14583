package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/inkwell-cms/InkWell/app/services"
)

// HandleCommentCreate posts a comment on an article.
func HandleCommentCreate(c *fiber.Ctx) error {
	articleID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	articleURL := "/articles/" + strconv.FormatUint(uint64(articleID), 10)

	_, err = services.GetServices().Comment.Create(
		currentActor(c),
		articleID,
		c.FormValue("header"),
		c.FormValue("content"),
	)
	if err != nil {
		return handleServiceError(c, err, articleURL)
	}

	fm := fiber.Map{
		"type":    "success",
		"message": "Comment posted",
	}
	return flash.WithSuccess(c, fm).Redirect(articleURL)
}

// HandleCommentDelete removes a comment. Only admins may do this; authors
// cannot take back their own comments.
func HandleCommentDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := services.GetServices().Comment.Delete(currentActor(c), id); err != nil {
		return handleServiceError(c, err, "/")
	}

	fm := fiber.Map{
		"type":    "success",
		"message": "Comment deleted",
	}

	redirectTo := c.FormValue("redirect_to", "/")
	return flash.WithSuccess(c, fm).Redirect(redirectTo)
}

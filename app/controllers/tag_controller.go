package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/inkwell-cms/InkWell/app/repository"
	"github.com/inkwell-cms/InkWell/app/services"
)

// HandleTagIndex renders the paginated tag list.
func HandleTagIndex(c *fiber.Ctx) error {
	page, err := services.GetServices().Tag.GetPaginatedList(pageParam(c))
	if err != nil {
		return handleServiceError(c, err, "/")
	}

	data := baseViewData(c, "Tags")
	data["Tags"] = page.Items
	data["Page"] = page.Page
	data["TotalPages"] = page.TotalPages()
	data["HasPrev"] = page.HasPrev()
	data["HasNext"] = page.HasNext()

	return c.Render("tag/index", data)
}

// HandleTagShow renders a tag with the published articles carrying it.
func HandleTagShow(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	svc := services.GetServices()

	tag, err := svc.Tag.Get(id)
	if err != nil {
		return handleServiceError(c, err, "/tags")
	}

	articles, err := svc.Article.GetPaginatedList(pageParam(c), repository.ArticleFilters{TagID: tag.ID}, currentActor(c))
	if err != nil {
		return handleServiceError(c, err, "/tags")
	}

	data := baseViewData(c, tag.Name)
	data["Tag"] = tag
	data["Articles"] = articles.Items
	data["Page"] = articles.Page
	data["TotalPages"] = articles.TotalPages()
	data["HasPrev"] = articles.HasPrev()
	data["HasNext"] = articles.HasNext()

	return c.Render("tag/show", data)
}

// HandleTagNew renders the creation form and processes its submission.
func HandleTagNew(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		if _, err := services.GetServices().Tag.Create(currentActor(c), c.FormValue("name")); err != nil {
			return handleServiceError(c, err, "/admin/tags/new")
		}

		fm := fiber.Map{
			"type":    "success",
			"message": "Tag created",
		}
		return flash.WithSuccess(c, fm).Redirect("/tags")
	}

	data := baseViewData(c, "New Tag")
	data["Tag"] = nil

	return c.Render("tag/form", data)
}

// HandleTagEdit renames a tag.
func HandleTagEdit(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	svc := services.GetServices()

	if c.Method() == fiber.MethodPost {
		if _, err := svc.Tag.Rename(currentActor(c), id, c.FormValue("name")); err != nil {
			return handleServiceError(c, err, "/admin/tags/"+c.Params("id")+"/edit")
		}

		fm := fiber.Map{
			"type":    "success",
			"message": "Tag updated",
		}
		return flash.WithSuccess(c, fm).Redirect("/tags")
	}

	tag, err := svc.Tag.Get(id)
	if err != nil {
		return handleServiceError(c, err, "/tags")
	}

	data := baseViewData(c, "Edit Tag")
	data["Tag"] = tag

	return c.Render("tag/form", data)
}

// HandleTagDelete removes a tag and detaches it from all articles.
func HandleTagDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := services.GetServices().Tag.Delete(currentActor(c), id); err != nil {
		return handleServiceError(c, err, "/tags")
	}

	fm := fiber.Map{
		"type":    "success",
		"message": "Tag deleted",
	}
	return flash.WithSuccess(c, fm).Redirect("/tags")
}

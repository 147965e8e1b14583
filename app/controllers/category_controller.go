package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/inkwell-cms/InkWell/app/repository"
	"github.com/inkwell-cms/InkWell/app/services"
)

// HandleCategoryIndex renders the paginated category list.
func HandleCategoryIndex(c *fiber.Ctx) error {
	page, err := services.GetServices().Category.GetPaginatedList(pageParam(c))
	if err != nil {
		return handleServiceError(c, err, "/")
	}

	data := baseViewData(c, "Categories")
	data["Categories"] = page.Items
	data["Page"] = page.Page
	data["TotalPages"] = page.TotalPages()
	data["HasPrev"] = page.HasPrev()
	data["HasNext"] = page.HasNext()

	return c.Render("category/index", data)
}

// HandleCategoryShow renders a category resolved by slug, with the published
// articles filed under it.
func HandleCategoryShow(c *fiber.Ctx) error {
	svc := services.GetServices()

	category, err := svc.Category.GetBySlug(c.Params("slug"))
	if err != nil {
		return handleServiceError(c, err, "/categories")
	}

	articles, err := svc.Article.GetPaginatedList(pageParam(c), repository.ArticleFilters{CategoryID: category.ID}, currentActor(c))
	if err != nil {
		return handleServiceError(c, err, "/categories")
	}

	data := baseViewData(c, category.Name)
	data["Category"] = category
	data["Articles"] = articles.Items
	data["Page"] = articles.Page
	data["TotalPages"] = articles.TotalPages()
	data["HasPrev"] = articles.HasPrev()
	data["HasNext"] = articles.HasNext()

	return c.Render("category/show", data)
}

// HandleCategoryNew renders the creation form and processes its submission.
func HandleCategoryNew(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		if _, err := services.GetServices().Category.Create(currentActor(c), c.FormValue("name")); err != nil {
			return handleServiceError(c, err, "/admin/categories/new")
		}

		fm := fiber.Map{
			"type":    "success",
			"message": "Category created",
		}
		return flash.WithSuccess(c, fm).Redirect("/categories")
	}

	data := baseViewData(c, "New Category")
	data["Category"] = nil

	return c.Render("category/form", data)
}

// HandleCategoryEdit renames a category; its slug follows the new name.
func HandleCategoryEdit(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	svc := services.GetServices()

	if c.Method() == fiber.MethodPost {
		category, err := svc.Category.Rename(currentActor(c), id, c.FormValue("name"))
		if err != nil {
			return handleServiceError(c, err, "/admin/categories/"+c.Params("id")+"/edit")
		}

		fm := fiber.Map{
			"type":    "success",
			"message": "Category updated",
		}
		return flash.WithSuccess(c, fm).Redirect("/categories/" + category.Slug)
	}

	category, err := svc.Category.Get(id)
	if err != nil {
		return handleServiceError(c, err, "/categories")
	}

	data := baseViewData(c, "Edit Category")
	data["Category"] = category

	return c.Render("category/form", data)
}

// HandleCategoryDelete removes an empty category. Categories that still hold
// articles are rejected with a flash message.
func HandleCategoryDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := services.GetServices().Category.Delete(currentActor(c), id); err != nil {
		return handleServiceError(c, err, "/categories")
	}

	fm := fiber.Map{
		"type":    "success",
		"message": "Category deleted",
	}
	return flash.WithSuccess(c, fm).Redirect("/categories")
}

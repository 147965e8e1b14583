package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/inkwell-cms/InkWell/app/models"
	"github.com/inkwell-cms/InkWell/app/repository"
	"github.com/inkwell-cms/InkWell/app/services"
)

// HandleArticleIndex renders the paginated article list, optionally filtered
// by category and tag. Drafts only show up for admins.
func HandleArticleIndex(c *fiber.Ctx) error {
	svc := services.GetServices()
	filters := articleFilters(c)

	page, err := svc.Article.GetPaginatedList(pageParam(c), filters, currentActor(c))
	if err != nil {
		return handleServiceError(c, err, "/")
	}

	categories, err := svc.Category.GetAll()
	if err != nil {
		return handleServiceError(c, err, "/")
	}
	tags, err := svc.Tag.GetAll()
	if err != nil {
		return handleServiceError(c, err, "/")
	}

	data := baseViewData(c, "Articles")
	data["Articles"] = page.Items
	data["Page"] = page.Page
	data["TotalPages"] = page.TotalPages()
	data["HasPrev"] = page.HasPrev()
	data["HasNext"] = page.HasNext()
	data["Categories"] = categories
	data["Tags"] = tags
	data["FilterCategoryID"] = filters.CategoryID
	data["FilterTagID"] = filters.TagID

	return c.Render("article/index", data)
}

// HandleArticleShow renders a single article with its latest comments.
func HandleArticleShow(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	svc := services.GetServices()
	article, err := svc.Article.Get(id, currentActor(c))
	if err != nil {
		return handleServiceError(c, err, "/")
	}

	comments, err := svc.Comment.GetLatestByArticle(article.ID, services.DefaultLatestCommentsLimit)
	if err != nil {
		return handleServiceError(c, err, "/")
	}
	file, err := svc.File.GetForArticle(article.ID)
	if err != nil {
		return handleServiceError(c, err, "/")
	}

	data := baseViewData(c, article.Title)
	data["Article"] = article
	data["Comments"] = comments
	data["File"] = file

	return c.Render("article/show", data)
}

// HandleArticleNew renders the creation form and processes its submission.
func HandleArticleNew(c *fiber.Ctx) error {
	svc := services.GetServices()

	if c.Method() == fiber.MethodPost {
		article, err := svc.Article.Create(currentActor(c), articleInput(c))
		if err != nil {
			return handleServiceError(c, err, "/admin/articles/new")
		}

		fm := fiber.Map{
			"type":    "success",
			"message": "Article created",
		}
		return flash.WithSuccess(c, fm).Redirect("/articles/" + strconv.FormatUint(uint64(article.ID), 10))
	}

	return renderArticleForm(c, nil)
}

// HandleArticleEdit renders the edit form and processes its submission.
func HandleArticleEdit(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	svc := services.GetServices()

	if c.Method() == fiber.MethodPost {
		article, err := svc.Article.Update(currentActor(c), id, articleInput(c))
		if err != nil {
			return handleServiceError(c, err, "/admin/articles/"+c.Params("id")+"/edit")
		}

		fm := fiber.Map{
			"type":    "success",
			"message": "Article updated",
		}
		return flash.WithSuccess(c, fm).Redirect("/articles/" + strconv.FormatUint(uint64(article.ID), 10))
	}

	article, err := svc.Article.Get(id, currentActor(c))
	if err != nil {
		return handleServiceError(c, err, "/")
	}
	return renderArticleForm(c, article)
}

// HandleArticleDelete removes an article together with its comments.
func HandleArticleDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := services.GetServices().Article.Delete(currentActor(c), id); err != nil {
		return handleServiceError(c, err, "/")
	}

	fm := fiber.Map{
		"type":    "success",
		"message": "Article deleted",
	}
	return flash.WithSuccess(c, fm).Redirect("/")
}

func renderArticleForm(c *fiber.Ctx, article *models.Article) error {
	svc := services.GetServices()

	categories, err := svc.Category.GetAll()
	if err != nil {
		return handleServiceError(c, err, "/")
	}
	tags, err := svc.Tag.GetAll()
	if err != nil {
		return handleServiceError(c, err, "/")
	}

	title := "New Article"
	selectedTags := map[uint]bool{}
	if article != nil {
		title = "Edit Article"
		for _, t := range article.Tags {
			selectedTags[t.ID] = true
		}
	}
	data := baseViewData(c, title)
	data["Article"] = article
	data["Categories"] = categories
	data["Tags"] = tags
	data["SelectedTags"] = selectedTags
	data["Statuses"] = []string{models.ARTICLE_STATUS_DRAFT, models.ARTICLE_STATUS_PUBLISHED}

	return c.Render("article/form", data)
}

func articleFilters(c *fiber.Ctx) repository.ArticleFilters {
	var filters repository.ArticleFilters
	if v, err := strconv.ParseUint(c.Query("category"), 10, 32); err == nil {
		filters.CategoryID = uint(v)
	}
	if v, err := strconv.ParseUint(c.Query("tag"), 10, 32); err == nil {
		filters.TagID = uint(v)
	}
	return filters
}

func articleInput(c *fiber.Ctx) services.ArticleInput {
	input := services.ArticleInput{
		Title:   c.FormValue("title"),
		Content: c.FormValue("content"),
		Status:  c.FormValue("status"),
	}
	if v, err := strconv.ParseUint(c.FormValue("category_id"), 10, 32); err == nil {
		input.CategoryID = uint(v)
	}
	for _, raw := range c.Context().PostArgs().PeekMulti("tags") {
		if v, err := strconv.ParseUint(string(raw), 10, 32); err == nil {
			input.TagIDs = append(input.TagIDs, uint(v))
		}
	}
	return input
}

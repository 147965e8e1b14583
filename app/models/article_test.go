package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validArticle() *Article {
	return &Article{
		Title:      "A proper title",
		Content:    "Content long enough to pass validation",
		Status:     ARTICLE_STATUS_DRAFT,
		CategoryID: 1,
	}
}

func TestArticleValidate(t *testing.T) {
	assert.NoError(t, validArticle().Validate())

	short := validArticle()
	short.Title = "abc"
	assert.Error(t, short.Validate(), "title below minimum length")

	thin := validArticle()
	thin.Content = "too short"
	assert.Error(t, thin.Validate(), "content below minimum length")

	badStatus := validArticle()
	badStatus.Status = "archived"
	assert.Error(t, badStatus.Validate(), "status outside the allowed set")

	orphan := validArticle()
	orphan.CategoryID = 0
	assert.Error(t, orphan.Validate(), "category is mandatory")
}

func TestArticleIsPublished(t *testing.T) {
	a := validArticle()
	assert.False(t, a.IsPublished())

	a.Status = ARTICLE_STATUS_PUBLISHED
	assert.True(t, a.IsPublished())
}

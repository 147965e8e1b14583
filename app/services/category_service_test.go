package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-cms/InkWell/app/models"
	"github.com/inkwell-cms/InkWell/internal/pkg/apperr"
)

type categoryFixture struct {
	svc        *CategoryService
	categories *fakeCategoryRepo
	articles   *fakeArticleRepo
}

func newCategoryFixture() *categoryFixture {
	f := &categoryFixture{
		categories: newFakeCategoryRepo(),
		articles:   newFakeArticleRepo(),
	}
	f.svc = NewCategoryService(f.categories, f.articles)
	return f
}

func TestCategoryCreateAssignsSlug(t *testing.T) {
	f := newCategoryFixture()

	category, err := f.svc.Create(adminActor, "Travel Tips")
	require.NoError(t, err)
	assert.Equal(t, "travel-tips-1", category.Slug)

	second, err := f.svc.Create(adminActor, "Food")
	require.NoError(t, err)
	assert.Equal(t, "food-2", second.Slug)
}

func TestCategoryCreateRequiresAdmin(t *testing.T) {
	f := newCategoryFixture()

	_, err := f.svc.Create(readerActor, "Forbidden")
	assert.True(t, apperr.IsKind(err, apperr.KindAuthorizationDenied))
}

func TestCategoryCreateDuplicateName(t *testing.T) {
	f := newCategoryFixture()

	_, err := f.svc.Create(adminActor, "Travel")
	require.NoError(t, err)

	_, err = f.svc.Create(adminActor, "Travel")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestCategoryRenameRegeneratesSlug(t *testing.T) {
	f := newCategoryFixture()

	category, err := f.svc.Create(adminActor, "Old Name")
	require.NoError(t, err)

	renamed, err := f.svc.Rename(adminActor, category.ID, "New Name")
	require.NoError(t, err)
	assert.Equal(t, "New Name", renamed.Name)
	assert.Equal(t, "new-name-1", renamed.Slug)

	_, err = f.svc.Rename(readerActor, category.ID, "Nope")
	assert.True(t, apperr.IsKind(err, apperr.KindAuthorizationDenied))
}

func TestCategoryDeleteBlockedWhileArticlesRemain(t *testing.T) {
	f := newCategoryFixture()

	category, err := f.svc.Create(adminActor, "Busy")
	require.NoError(t, err)

	now := time.Now()
	require.NoError(t, f.articles.Create(&models.Article{
		Title:      "Still filed here",
		Content:    "Content long enough for validation",
		Status:     models.ARTICLE_STATUS_PUBLISHED,
		CategoryID: category.ID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}))

	err = f.svc.Delete(adminActor, category.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindBusinessRule))

	// category must still exist
	_, err = f.svc.Get(category.ID)
	assert.NoError(t, err)
}

func TestCategoryDeleteEmpty(t *testing.T) {
	f := newCategoryFixture()

	category, err := f.svc.Create(adminActor, "Empty")
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(adminActor, category.ID))

	_, err = f.svc.Get(category.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestCategoryGetBySlug(t *testing.T) {
	f := newCategoryFixture()

	created, err := f.svc.Create(adminActor, "Findable")
	require.NoError(t, err)

	got, err := f.svc.GetBySlug(created.Slug)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = f.svc.GetBySlug("missing-slug")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-cms/InkWell/app/models"
	"github.com/inkwell-cms/InkWell/internal/pkg/apperr"
	"github.com/inkwell-cms/InkWell/internal/pkg/security"
)

var pngData = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

type fileFixture struct {
	svc      *FileService
	files    *fakeFileRepo
	articles *fakeArticleRepo
	store    *fakeStorage
	article  *models.Article
}

func newFileFixture(t *testing.T) *fileFixture {
	t.Helper()
	f := &fileFixture{
		files:    newFakeFileRepo(),
		articles: newFakeArticleRepo(),
		store:    newFakeStorage(),
	}
	f.svc = NewFileService(f.files, f.articles, f.store)

	now := time.Now()
	f.article = &models.Article{
		Title:      "Illustrated article",
		Content:    "Content long enough for validation",
		Status:     models.ARTICLE_STATUS_PUBLISHED,
		CategoryID: 1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, f.articles.Create(f.article))
	return f
}

func TestUploadForArticle(t *testing.T) {
	f := newFileFixture(t)

	file, err := f.svc.UploadForArticle(adminActor, f.article.ID, "cover.png", pngData)
	require.NoError(t, err)
	assert.NotZero(t, file.ID)
	assert.Contains(t, f.store.stored, file.Path)
	assert.Equal(t, f.article.ID, f.files.attachments[file.ID])
}

func TestUploadRequiresAuthAndEditGrant(t *testing.T) {
	f := newFileFixture(t)

	_, err := f.svc.UploadForArticle(security.Anonymous, f.article.ID, "cover.png", pngData)
	assert.True(t, apperr.IsKind(err, apperr.KindAuthorizationDenied))

	// non-admins may not edit articles, so they may not attach images either
	_, err = f.svc.UploadForArticle(readerActor, f.article.ID, "cover.png", pngData)
	assert.True(t, apperr.IsKind(err, apperr.KindAuthorizationDenied))
}

func TestUploadUnknownArticle(t *testing.T) {
	f := newFileFixture(t)

	_, err := f.svc.UploadForArticle(adminActor, 99, "cover.png", pngData)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	assert.Empty(t, f.store.stored, "nothing stored for a missing article")
}

func TestUploadRejectsNonImages(t *testing.T) {
	f := newFileFixture(t)

	_, err := f.svc.UploadForArticle(adminActor, f.article.ID, "script.html", []byte("<!DOCTYPE html><script></script>"))
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	assert.Empty(t, f.store.stored)
}

func TestUploadReplacesExistingFile(t *testing.T) {
	f := newFileFixture(t)

	first, err := f.svc.UploadForArticle(adminActor, f.article.ID, "v1.png", pngData)
	require.NoError(t, err)
	oldPath := first.Path

	second, err := f.svc.UploadForArticle(adminActor, f.article.ID, "v2.png", pngData)
	require.NoError(t, err)

	// same record, new content
	assert.Equal(t, first.ID, second.ID)
	assert.NotEqual(t, oldPath, second.Path)
	assert.NotContains(t, f.store.stored, oldPath, "old blob is gone")
	assert.Contains(t, f.store.stored, second.Path)

	// old content is removed before the new one is written
	assert.Equal(t, []string{"store:" + oldPath, "remove:" + oldPath, "store:" + second.Path}, f.store.ops)
}

func TestGetForArticle(t *testing.T) {
	f := newFileFixture(t)

	got, err := f.svc.GetForArticle(f.article.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "no file attached yet")

	uploaded, err := f.svc.UploadForArticle(adminActor, f.article.ID, "cover.png", pngData)
	require.NoError(t, err)

	got, err = f.svc.GetForArticle(f.article.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, uploaded.ID, got.ID)
}

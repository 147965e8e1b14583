package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/inkwell-cms/InkWell/app/models"
	"github.com/inkwell-cms/InkWell/app/repository"
	"github.com/inkwell-cms/InkWell/internal/pkg/apperr"
	"github.com/inkwell-cms/InkWell/internal/pkg/logger"
	"github.com/inkwell-cms/InkWell/internal/pkg/security"
	"github.com/inkwell-cms/InkWell/internal/pkg/storage"
	"github.com/inkwell-cms/InkWell/internal/pkg/upload"
)

// FileService orchestrates article image uploads. Each article carries at
// most one file record; re-uploading replaces the stored content in place.
type FileService struct {
	files    repository.FileRepository
	articles repository.ArticleRepository
	store    storage.Storage
}

func NewFileService(files repository.FileRepository, articles repository.ArticleRepository, store storage.Storage) *FileService {
	return &FileService{files: files, articles: articles, store: store}
}

// UploadForArticle validates and stores an image for an article. The first
// upload creates a file record and attaches it; later uploads reuse the
// record and swap the stored content, removing the old blob first.
func (s *FileService) UploadForArticle(actor security.Actor, articleID uint, filename string, data []byte) (*models.File, error) {
	if !actor.IsAuthenticated() {
		return nil, apperr.Denied()
	}

	article, err := s.articles.GetByID(articleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("article")
		}
		return nil, apperr.FromDB(err)
	}
	if !security.Can(actor, security.ActionEdit, article) {
		return nil, apperr.Denied()
	}

	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	if _, err := upload.ValidateImageBySniff(filename, head); err != nil {
		return nil, apperr.Validation(err.Error(), err)
	}

	existing, err := s.files.FirstByArticle(article.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.FromDB(err)
	}

	if existing != nil {
		// Replace content, keep the record. The old blob goes first so a
		// failed store never leaves two files on disk.
		if err := s.store.Remove(existing.Path); err != nil {
			return nil, apperr.Storage(err)
		}
		path, err := s.store.Store(data, filename)
		if err != nil {
			return nil, apperr.Storage(err)
		}
		existing.Path = path
		if err := s.files.Update(existing); err != nil {
			return nil, apperr.FromDB(err)
		}
		logger.Log.Info().Uint("article_id", article.ID).Str("path", path).Msg("replaced article image")
		return existing, nil
	}

	path, err := s.store.Store(data, filename)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	file := &models.File{Path: path}
	if err := file.Validate(); err != nil {
		return nil, apperr.Validation("invalid file", err)
	}
	if err := s.files.Create(file); err != nil {
		return nil, apperr.FromDB(err)
	}
	if err := s.files.AttachToArticle(file.ID, article.ID); err != nil {
		return nil, apperr.FromDB(err)
	}
	logger.Log.Info().Uint("article_id", article.ID).Str("path", path).Msg("stored article image")
	return file, nil
}

// GetForArticle returns the article's file record, or nil when it has none.
func (s *FileService) GetForArticle(articleID uint) (*models.File, error) {
	file, err := s.files.FirstByArticle(articleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperr.FromDB(err)
	}
	return file, nil
}

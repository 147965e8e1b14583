package services

import (
	"time"

	"github.com/inkwell-cms/InkWell/app/models"
	"github.com/inkwell-cms/InkWell/app/repository"
	"github.com/inkwell-cms/InkWell/internal/pkg/apperr"
	"github.com/inkwell-cms/InkWell/internal/pkg/pagination"
	"github.com/inkwell-cms/InkWell/internal/pkg/security"
)

// ArticleInput carries the user-editable article fields. Timestamps and
// identifiers are always server-assigned.
type ArticleInput struct {
	Title      string
	Content    string
	Status     string
	CategoryID uint
	TagIDs     []uint
}

// ArticleService orchestrates article reads and mutations with permission
// checks and list-level visibility rules.
type ArticleService struct {
	articles   repository.ArticleRepository
	categories repository.CategoryRepository
	tags       repository.TagRepository
}

func NewArticleService(articles repository.ArticleRepository, categories repository.CategoryRepository, tags repository.TagRepository) *ArticleService {
	return &ArticleService{articles: articles, categories: categories, tags: tags}
}

// GetPaginatedList returns one page of articles, newest first. Non-admin and
// anonymous actors only ever see published articles; the restriction is not
// overridable by filters.
func (s *ArticleService) GetPaginatedList(page int, filters repository.ArticleFilters, actor security.Actor) (pagination.Page[models.Article], error) {
	page = pagination.NormalizePage(page)
	includeDrafts := actor.IsAdmin()

	items, err := s.articles.List(pagination.Offset(page, pagination.DefaultPerPage), pagination.DefaultPerPage, filters, includeDrafts)
	if err != nil {
		return pagination.Page[models.Article]{}, apperr.FromDB(err)
	}
	total, err := s.articles.Count(filters, includeDrafts)
	if err != nil {
		return pagination.Page[models.Article]{}, apperr.FromDB(err)
	}

	return pagination.New(items, page, pagination.DefaultPerPage, total), nil
}

// Get loads a single article. Published articles are readable by anyone;
// drafts require a VIEW grant from the permission engine.
func (s *ArticleService) Get(id uint, actor security.Actor) (*models.Article, error) {
	article, err := s.articles.GetByID(id)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	if !article.IsPublished() && !security.Can(actor, security.ActionView, article) {
		return nil, apperr.Denied()
	}
	return article, nil
}

// Create persists a new article after a CREATE grant.
func (s *ArticleService) Create(actor security.Actor, input ArticleInput) (*models.Article, error) {
	if !security.Can(actor, security.ActionCreate, &models.Article{}) {
		return nil, apperr.Denied()
	}
	if _, err := s.categories.GetByID(input.CategoryID); err != nil {
		return nil, apperr.NotFound("category")
	}

	now := time.Now()
	article := &models.Article{
		Title:      input.Title,
		Content:    input.Content,
		Status:     input.Status,
		CategoryID: input.CategoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if article.Status == "" {
		article.Status = models.ARTICLE_STATUS_DRAFT
	}
	if err := article.Validate(); err != nil {
		return nil, apperr.Validation("invalid article", err)
	}

	tags, err := s.resolveTags(input.TagIDs)
	if err != nil {
		return nil, err
	}

	if err := s.articles.Create(article); err != nil {
		return nil, apperr.FromDB(err)
	}
	if len(tags) > 0 {
		if err := s.articles.ReplaceTags(article, tags); err != nil {
			return nil, apperr.FromDB(err)
		}
	}
	return article, nil
}

// Update mutates an existing article after an EDIT grant and refreshes its
// update timestamp.
func (s *ArticleService) Update(actor security.Actor, id uint, input ArticleInput) (*models.Article, error) {
	article, err := s.articles.GetByID(id)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	if !security.Can(actor, security.ActionEdit, article) {
		return nil, apperr.Denied()
	}
	if input.CategoryID != article.CategoryID {
		if _, err := s.categories.GetByID(input.CategoryID); err != nil {
			return nil, apperr.NotFound("category")
		}
	}

	article.Title = input.Title
	article.Content = input.Content
	article.Status = input.Status
	article.CategoryID = input.CategoryID
	article.UpdatedAt = time.Now()
	if err := article.Validate(); err != nil {
		return nil, apperr.Validation("invalid article", err)
	}

	tags, err := s.resolveTags(input.TagIDs)
	if err != nil {
		return nil, err
	}

	if err := s.articles.Update(article); err != nil {
		return nil, apperr.FromDB(err)
	}
	if err := s.articles.ReplaceTags(article, tags); err != nil {
		return nil, apperr.FromDB(err)
	}
	return article, nil
}

// Delete removes an article after a DELETE grant. Owned comments go with it;
// tags and files survive with only the association removed.
func (s *ArticleService) Delete(actor security.Actor, id uint) error {
	article, err := s.articles.GetByID(id)
	if err != nil {
		return apperr.FromDB(err)
	}
	if !security.Can(actor, security.ActionDelete, article) {
		return apperr.Denied()
	}
	if err := s.articles.Delete(article.ID); err != nil {
		return apperr.FromDB(err)
	}
	return nil
}

func (s *ArticleService) resolveTags(tagIDs []uint) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		tag, err := s.tags.GetByID(tagID)
		if err != nil {
			return nil, apperr.NotFound("tag")
		}
		tags = append(tags, *tag)
	}
	return tags, nil
}

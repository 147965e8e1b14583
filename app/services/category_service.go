package services

import (
	"github.com/inkwell-cms/InkWell/app/models"
	"github.com/inkwell-cms/InkWell/app/repository"
	"github.com/inkwell-cms/InkWell/internal/pkg/apperr"
	"github.com/inkwell-cms/InkWell/internal/pkg/pagination"
	"github.com/inkwell-cms/InkWell/internal/pkg/security"
	"github.com/inkwell-cms/InkWell/internal/pkg/slug"
)

// CategoryService orchestrates category mutations, including slug assignment
// and the "no delete while articles are attached" rule.
type CategoryService struct {
	categories repository.CategoryRepository
	articles   repository.ArticleRepository
}

func NewCategoryService(categories repository.CategoryRepository, articles repository.ArticleRepository) *CategoryService {
	return &CategoryService{categories: categories, articles: articles}
}

// GetPaginatedList returns one page of categories.
func (s *CategoryService) GetPaginatedList(page int) (pagination.Page[models.Category], error) {
	page = pagination.NormalizePage(page)

	items, err := s.categories.List(pagination.Offset(page, pagination.DefaultPerPage), pagination.DefaultPerPage)
	if err != nil {
		return pagination.Page[models.Category]{}, apperr.FromDB(err)
	}
	total, err := s.categories.Count()
	if err != nil {
		return pagination.Page[models.Category]{}, apperr.FromDB(err)
	}

	return pagination.New(items, page, pagination.DefaultPerPage, total), nil
}

// GetAll returns every category, for filter dropdowns and forms.
func (s *CategoryService) GetAll() ([]models.Category, error) {
	categories, err := s.categories.GetAll()
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	return categories, nil
}

func (s *CategoryService) Get(id uint) (*models.Category, error) {
	category, err := s.categories.GetByID(id)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	return category, nil
}

func (s *CategoryService) GetBySlug(categorySlug string) (*models.Category, error) {
	category, err := s.categories.GetBySlug(categorySlug)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	return category, nil
}

// Create persists a new category and assigns its slug from the new id.
func (s *CategoryService) Create(actor security.Actor, name string) (*models.Category, error) {
	if !actor.IsAdmin() {
		return nil, apperr.Denied()
	}

	category := &models.Category{Name: name}
	if err := category.Validate(); err != nil {
		return nil, apperr.Validation("invalid category", err)
	}
	if err := s.categories.Create(category, slug.Make); err != nil {
		return nil, apperr.FromDB(err)
	}
	return category, nil
}

// Rename changes a category's name after an EDIT grant. The slug is
// regenerated from the new name; it is never client-supplied.
func (s *CategoryService) Rename(actor security.Actor, id uint, name string) (*models.Category, error) {
	category, err := s.categories.GetByID(id)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	if !security.Can(actor, security.ActionEdit, category) {
		return nil, apperr.Denied()
	}

	category.Name = name
	category.Slug = slug.Make(name, category.ID)
	if err := category.Validate(); err != nil {
		return nil, apperr.Validation("invalid category", err)
	}
	if err := s.categories.Update(category); err != nil {
		return nil, apperr.FromDB(err)
	}
	return category, nil
}

// Delete removes a category after a DELETE grant. A category that still has
// articles attached is never deleted.
func (s *CategoryService) Delete(actor security.Actor, id uint) error {
	category, err := s.categories.GetByID(id)
	if err != nil {
		return apperr.FromDB(err)
	}
	if !security.Can(actor, security.ActionDelete, category) {
		return apperr.Denied()
	}

	count, err := s.articles.CountByCategory(category.ID)
	if err != nil {
		return apperr.FromDB(err)
	}
	if count > 0 {
		return apperr.BusinessRule("category still contains articles")
	}

	if err := s.categories.Delete(category.ID); err != nil {
		return apperr.FromDB(err)
	}
	return nil
}

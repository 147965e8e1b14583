package services

import (
	"github.com/inkwell-cms/InkWell/app/models"
	"github.com/inkwell-cms/InkWell/app/repository"
	"github.com/inkwell-cms/InkWell/internal/pkg/apperr"
	"github.com/inkwell-cms/InkWell/internal/pkg/pagination"
	"github.com/inkwell-cms/InkWell/internal/pkg/security"
)

// TagService orchestrates tag mutations.
type TagService struct {
	tags repository.TagRepository
}

func NewTagService(tags repository.TagRepository) *TagService {
	return &TagService{tags: tags}
}

// GetPaginatedList returns one page of tags.
func (s *TagService) GetPaginatedList(page int) (pagination.Page[models.Tag], error) {
	page = pagination.NormalizePage(page)

	items, err := s.tags.List(pagination.Offset(page, pagination.DefaultPerPage), pagination.DefaultPerPage)
	if err != nil {
		return pagination.Page[models.Tag]{}, apperr.FromDB(err)
	}
	total, err := s.tags.Count()
	if err != nil {
		return pagination.Page[models.Tag]{}, apperr.FromDB(err)
	}

	return pagination.New(items, page, pagination.DefaultPerPage, total), nil
}

// GetAll returns every tag, for filter dropdowns and forms.
func (s *TagService) GetAll() ([]models.Tag, error) {
	tags, err := s.tags.GetAll()
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	return tags, nil
}

func (s *TagService) Get(id uint) (*models.Tag, error) {
	tag, err := s.tags.GetByID(id)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	return tag, nil
}

// Create persists a new tag.
func (s *TagService) Create(actor security.Actor, name string) (*models.Tag, error) {
	if !actor.IsAdmin() {
		return nil, apperr.Denied()
	}

	tag := &models.Tag{Name: name}
	if err := tag.Validate(); err != nil {
		return nil, apperr.Validation("invalid tag", err)
	}
	if err := s.tags.Create(tag); err != nil {
		return nil, apperr.FromDB(err)
	}
	return tag, nil
}

// Rename changes a tag's name after an EDIT grant.
func (s *TagService) Rename(actor security.Actor, id uint, name string) (*models.Tag, error) {
	tag, err := s.tags.GetByID(id)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	if !security.Can(actor, security.ActionEdit, tag) {
		return nil, apperr.Denied()
	}

	tag.Name = name
	if err := tag.Validate(); err != nil {
		return nil, apperr.Validation("invalid tag", err)
	}
	if err := s.tags.Update(tag); err != nil {
		return nil, apperr.FromDB(err)
	}
	return tag, nil
}

// Delete removes a tag after a DELETE grant, detaching it from all articles.
func (s *TagService) Delete(actor security.Actor, id uint) error {
	tag, err := s.tags.GetByID(id)
	if err != nil {
		return apperr.FromDB(err)
	}
	if !security.Can(actor, security.ActionDelete, tag) {
		return apperr.Denied()
	}
	if err := s.tags.Delete(tag.ID); err != nil {
		return apperr.FromDB(err)
	}
	return nil
}

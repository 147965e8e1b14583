package repository

import (
	"gorm.io/gorm"

	"github.com/inkwell-cms/InkWell/app/models"
)

// tagRepository implements the TagRepository interface
type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new tag repository instance
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

// Create creates a new tag in the database
func (r *tagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

// GetByID retrieves a tag by its ID
func (r *tagRepository) GetByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.First(&tag, id).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// Update updates an existing tag in the database
func (r *tagRepository) Update(tag *models.Tag) error {
	return r.db.Save(tag).Error
}

// Delete detaches the tag from all articles, then removes it. Articles
// themselves are never deleted with the tag.
func (r *tagRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&models.ArticleTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Tag{}, id).Error
	})
}

// List retrieves a paginated list of tags ordered by name
func (r *tagRepository) List(offset, limit int) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Order("name ASC").Offset(offset).Limit(limit).Find(&tags).Error
	return tags, err
}

// GetAll retrieves all tags without pagination, for filter dropdowns
func (r *tagRepository) GetAll() ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Order("name ASC").Find(&tags).Error
	return tags, err
}

// Count returns the total number of tags
func (r *tagRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Tag{}).Count(&count).Error
	return count, err
}

package repository

import (
	"gorm.io/gorm"

	"github.com/inkwell-cms/InkWell/app/models"
)

// categoryRepository implements the CategoryRepository interface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// Create inserts the category and assigns its slug from the new id. The slug
// needs the auto-assigned identifier, so both steps run in one transaction.
func (r *categoryRepository) Create(category *models.Category, makeSlug func(name string, id uint) string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(category).Error; err != nil {
			return err
		}
		category.Slug = makeSlug(category.Name, category.ID)
		return tx.Model(category).Update("slug", category.Slug).Error
	})
}

// GetByID retrieves a category by its ID
func (r *categoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetBySlug retrieves a category by its slug
func (r *categoryRepository) GetBySlug(slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("slug = ?", slug).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Update updates an existing category in the database
func (r *categoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

// Delete removes a category by its ID
func (r *categoryRepository) Delete(id uint) error {
	return r.db.Delete(&models.Category{}, id).Error
}

// List retrieves a paginated list of categories ordered by name
func (r *categoryRepository) List(offset, limit int) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("name ASC").Offset(offset).Limit(limit).Find(&categories).Error
	return categories, err
}

// GetAll retrieves all categories without pagination, for filter dropdowns
func (r *categoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

// Count returns the total number of categories
func (r *categoryRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Category{}).Count(&count).Error
	return count, err
}

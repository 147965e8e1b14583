package repository

import (
	"gorm.io/gorm"

	"github.com/inkwell-cms/InkWell/app/models"
)

// articleRepository implements the ArticleRepository interface
type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new article repository instance
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// Create creates a new article in the database
func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

// GetByID retrieves an article with its category, tags and files
func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Category").Preload("Tags").Preload("Files").
		First(&article, id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// Update updates an existing article in the database
func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

// ReplaceTags swaps the article's tag associations for the given set
func (r *articleRepository) ReplaceTags(article *models.Article, tags []models.Tag) error {
	return r.db.Model(article).Association("Tags").Replace(tags)
}

// Delete removes an article, its owned comments, and its many-to-many
// association rows. Tag and File rows themselves are left untouched.
func (r *articleRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", id).Delete(&models.ArticleTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", id).Delete(&models.ArticleFile{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Article{}, id).Error
	})
}

// List retrieves a page of articles ordered by creation time, newest first.
// Drafts are excluded unless includeDrafts is set; filters are ANDed.
func (r *articleRepository) List(offset, limit int, filters ArticleFilters, includeDrafts bool) ([]models.Article, error) {
	var articles []models.Article
	err := r.listQuery(filters, includeDrafts).
		Preload("Category").Preload("Tags").
		Order("articles.created_at DESC").
		Offset(offset).Limit(limit).
		Find(&articles).Error
	return articles, err
}

// Count returns the total number of articles matching the listing restrictions
func (r *articleRepository) Count(filters ArticleFilters, includeDrafts bool) (int64, error) {
	var count int64
	err := r.listQuery(filters, includeDrafts).
		Distinct("articles.id").
		Count(&count).Error
	return count, err
}

// CountByCategory returns the number of articles attached to a category
func (r *articleRepository) CountByCategory(categoryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Article{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}

func (r *articleRepository) listQuery(filters ArticleFilters, includeDrafts bool) *gorm.DB {
	query := r.db.Model(&models.Article{})
	if !includeDrafts {
		query = query.Where("articles.status = ?", models.ARTICLE_STATUS_PUBLISHED)
	}
	if filters.CategoryID != 0 {
		query = query.Where("articles.category_id = ?", filters.CategoryID)
	}
	if filters.TagID != 0 {
		query = query.
			Joins("JOIN articles_tags ON articles_tags.article_id = articles.id").
			Where("articles_tags.tag_id = ?", filters.TagID)
	}
	return query
}

package repository

import (
	"gorm.io/gorm"

	"github.com/inkwell-cms/InkWell/app/models"
)

// commentRepository implements the CommentRepository interface
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository instance
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create creates a new comment in the database
func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetByID retrieves a comment with its author and article
func (r *commentRepository) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Preload("User").Preload("Article").First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Delete removes a comment by its ID
func (r *commentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Comment{}, id).Error
}

// LatestByArticle returns the newest comments for an article. Identifiers
// are monotonically assigned, so id DESC is creation order, newest first.
func (r *commentRepository) LatestByArticle(articleID uint, limit int) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("User").
		Where("article_id = ?", articleID).
		Order("id DESC").Limit(limit).
		Find(&comments).Error
	return comments, err
}

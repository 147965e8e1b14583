package repository

import (
	"gorm.io/gorm"

	"github.com/inkwell-cms/InkWell/app/models"
)

// fileRepository implements the FileRepository interface
type fileRepository struct {
	db *gorm.DB
}

// NewFileRepository creates a new file repository instance
func NewFileRepository(db *gorm.DB) FileRepository {
	return &fileRepository{db: db}
}

// Create creates a new file record in the database
func (r *fileRepository) Create(file *models.File) error {
	return r.db.Create(file).Error
}

// GetByID retrieves a file by its ID
func (r *fileRepository) GetByID(id uint) (*models.File, error) {
	var file models.File
	err := r.db.First(&file, id).Error
	if err != nil {
		return nil, err
	}
	return &file, nil
}

// Update updates an existing file record in the database
func (r *fileRepository) Update(file *models.File) error {
	return r.db.Save(file).Error
}

// FirstByArticle returns the image file currently attached to an article,
// or gorm.ErrRecordNotFound when the article has none.
func (r *fileRepository) FirstByArticle(articleID uint) (*models.File, error) {
	var file models.File
	err := r.db.
		Joins("JOIN articles_files ON articles_files.file_id = files.id").
		Where("articles_files.article_id = ?", articleID).
		Order("files.id ASC").
		First(&file).Error
	if err != nil {
		return nil, err
	}
	return &file, nil
}

// AttachToArticle links a file to an article
func (r *fileRepository) AttachToArticle(fileID, articleID uint) error {
	return r.db.Create(&models.ArticleFile{ArticleID: articleID, FileID: fileID}).Error
}

package repository

import (
	"gorm.io/gorm"

	"github.com/inkwell-cms/InkWell/app/models"
)

// ArticleFilters narrows article listings. Zero values mean "no filter";
// set filters are combined with AND.
type ArticleFilters struct {
	CategoryID uint
	TagID      uint
}

// ArticleRepository defines the interface for article-related database operations
type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	Update(article *models.Article) error
	ReplaceTags(article *models.Article, tags []models.Tag) error
	// Delete removes the article with its owned comments and detaches
	// tag/file associations, leaving the tag and file rows intact.
	Delete(id uint) error
	List(offset, limit int, filters ArticleFilters, includeDrafts bool) ([]models.Article, error)
	Count(filters ArticleFilters, includeDrafts bool) (int64, error)
	CountByCategory(categoryID uint) (int64, error)
}

// CategoryRepository defines the interface for category-related database operations
type CategoryRepository interface {
	// Create inserts the category and persists the slug produced by makeSlug
	// from the freshly assigned id, in one transaction.
	Create(category *models.Category, makeSlug func(name string, id uint) string) error
	GetByID(id uint) (*models.Category, error)
	GetBySlug(slug string) (*models.Category, error)
	Update(category *models.Category) error
	Delete(id uint) error
	List(offset, limit int) ([]models.Category, error)
	GetAll() ([]models.Category, error)
	Count() (int64, error)
}

// TagRepository defines the interface for tag-related database operations
type TagRepository interface {
	Create(tag *models.Tag) error
	GetByID(id uint) (*models.Tag, error)
	Update(tag *models.Tag) error
	// Delete detaches the tag from all articles before removing it.
	Delete(id uint) error
	List(offset, limit int) ([]models.Tag, error)
	GetAll() ([]models.Tag, error)
	Count() (int64, error)
}

// CommentRepository defines the interface for comment-related database operations
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id uint) (*models.Comment, error)
	Delete(id uint) error
	LatestByArticle(articleID uint, limit int) ([]models.Comment, error)
}

// FileRepository defines the interface for file-related database operations
type FileRepository interface {
	Create(file *models.File) error
	GetByID(id uint) (*models.File, error)
	Update(file *models.File) error
	FirstByArticle(articleID uint) (*models.File, error)
	AttachToArticle(fileID, articleID uint) error
}

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	List(offset, limit int) ([]models.User, error)
	Count() (int64, error)
	// GetLatestAdmin returns the most-recently-registered admin-role user,
	// or nil when no admin exists.
	GetLatestAdmin() (*models.User, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	User     UserRepository
	Article  ArticleRepository
	Category CategoryRepository
	Tag      TagRepository
	Comment  CommentRepository
	File     FileRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:     NewUserRepository(db),
		Article:  NewArticleRepository(db),
		Category: NewCategoryRepository(db),
		Tag:      NewTagRepository(db),
		Comment:  NewCommentRepository(db),
		File:     NewFileRepository(db),
	}
}

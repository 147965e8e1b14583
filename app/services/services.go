package services

import (
	"sync"

	"github.com/inkwell-cms/InkWell/app/repository"
	"github.com/inkwell-cms/InkWell/internal/pkg/storage"
)

// Services holds all application service instances
type Services struct {
	Article  *ArticleService
	Category *CategoryService
	Tag      *TagService
	Comment  *CommentService
	User     *UserService
	File     *FileService
}

// NewServices wires all services from a repository set and storage backend.
func NewServices(repos *repository.Repositories, store storage.Storage) *Services {
	return &Services{
		Article:  NewArticleService(repos.Article, repos.Category, repos.Tag),
		Category: NewCategoryService(repos.Category, repos.Article),
		Tag:      NewTagService(repos.Tag),
		Comment:  NewCommentService(repos.Comment, repos.Article),
		User:     NewUserService(repos.User),
		File:     NewFileService(repos.File, repos.Article, store),
	}
}

// Global services instance
var globalServices *Services
var servicesOnce sync.Once

// InitializeServices initializes the global services instance
func InitializeServices(repos *repository.Repositories, store storage.Storage) {
	servicesOnce.Do(func() {
		globalServices = NewServices(repos, store)
	})
}

// GetServices returns the global services instance
func GetServices() *Services {
	if globalServices == nil {
		panic("Services not initialized. Call InitializeServices first.")
	}
	return globalServices
}

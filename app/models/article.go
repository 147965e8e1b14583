package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	ARTICLE_STATUS_DRAFT     = "draft"
	ARTICLE_STATUS_PUBLISHED = "published"
)

// Article timestamps are assigned by the services, not by GORM hooks, so that
// creation and mutation order stays observable in the orchestration layer.
type Article struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"uniqueIndex;type:varchar(255)" json:"title" validate:"required,min=5,max=255"`
	Content    string    `gorm:"type:text" json:"content" validate:"required,min=10,max=5000"`
	Status     string    `gorm:"type:varchar(50);default:'draft'" json:"status" validate:"oneof=draft published"`
	CategoryID uint      `gorm:"index;not null" json:"category_id" validate:"required"`
	Category   Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty" validate:"-"`
	Tags       []Tag     `gorm:"many2many:articles_tags;" json:"tags,omitempty"`
	Files      []File    `gorm:"many2many:articles_files;" json:"files,omitempty"`
	Comments   []Comment `gorm:"foreignKey:ArticleID" json:"comments,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}

func (Article) TableName() string {
	return "articles"
}

func (a *Article) Validate() error {
	v := validator.New()

	return v.Struct(a)
}

// IsPublished reports whether the article is visible to non-admin readers.
func (a *Article) IsPublished() bool {
	return a.Status == ARTICLE_STATUS_PUBLISHED
}

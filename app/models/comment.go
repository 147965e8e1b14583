package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Comments are never edited after creation, so only CreatedAt is tracked.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Header    string    `gorm:"type:varchar(255)" json:"header" validate:"required,min=3,max=255"`
	Content   string    `gorm:"type:varchar(255)" json:"content" validate:"required,min=5,max=255"`
	ArticleID uint      `gorm:"index;not null" json:"article_id" validate:"required"`
	Article   Article   `gorm:"foreignKey:ArticleID" json:"article,omitempty" validate:"-"`
	UserID    uint      `gorm:"index;not null" json:"user_id" validate:"required"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty" validate:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (c *Comment) Validate() error {
	v := validator.New()

	return v.Struct(c)
}

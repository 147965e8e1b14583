package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;type:varchar(255)" json:"name" validate:"required,min=3,max=255"`
	Articles  []Article `gorm:"many2many:articles_tags;" json:"articles,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (t *Tag) Validate() error {
	v := validator.New()

	return v.Struct(t)
}

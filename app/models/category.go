package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;type:varchar(255)" json:"name" validate:"required,min=1,max=255"`
	Slug      string    `gorm:"uniqueIndex;type:varchar(512)" json:"slug"`
	Articles  []Article `gorm:"foreignKey:CategoryID" json:"articles,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}

func (c *Category) Validate() error {
	v := validator.New()

	return v.Struct(c)
}

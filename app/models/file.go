package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// File records a stored upload. Path is the generated storage-relative name,
// never the client-supplied filename.
type File struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Path      string    `gorm:"uniqueIndex;type:varchar(191)" json:"path" validate:"required,min=1,max=191"`
	Articles  []Article `gorm:"many2many:articles_files;" json:"articles,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (f *File) Validate() error {
	v := validator.New()

	return v.Struct(f)
}

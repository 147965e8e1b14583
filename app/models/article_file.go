package models

// ArticleFile is the join table between articles and files.
type ArticleFile struct {
	ArticleID uint `gorm:"primaryKey"`
	FileID    uint `gorm:"primaryKey"`
}

func (ArticleFile) TableName() string {
	return "articles_files"
}

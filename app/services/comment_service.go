package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/inkwell-cms/InkWell/app/models"
	"github.com/inkwell-cms/InkWell/app/repository"
	"github.com/inkwell-cms/InkWell/internal/pkg/apperr"
	"github.com/inkwell-cms/InkWell/internal/pkg/security"
)

// DefaultLatestCommentsLimit caps the comment strip on the article page.
const DefaultLatestCommentsLimit = 5

// CommentService orchestrates comment creation and deletion.
type CommentService struct {
	comments repository.CommentRepository
	articles repository.ArticleRepository
}

func NewCommentService(comments repository.CommentRepository, articles repository.ArticleRepository) *CommentService {
	return &CommentService{comments: comments, articles: articles}
}

// Create posts a comment as the acting user. The target article id comes from
// the caller and must resolve to an existing article before anything is
// persisted; anonymous actors are rejected.
func (s *CommentService) Create(actor security.Actor, articleID uint, header, content string) (*models.Comment, error) {
	if !actor.IsAuthenticated() {
		return nil, apperr.Denied()
	}

	article, err := s.articles.GetByID(articleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("article")
		}
		return nil, apperr.FromDB(err)
	}

	comment := &models.Comment{
		Header:    header,
		Content:   content,
		ArticleID: article.ID,
		UserID:    actor.ID,
	}
	if err := comment.Validate(); err != nil {
		return nil, apperr.Validation("invalid comment", err)
	}
	if err := s.comments.Create(comment); err != nil {
		return nil, apperr.FromDB(err)
	}
	return comment, nil
}

// Delete removes a comment after a DELETE grant. Authors cannot delete their
// own comments; only admins hold the grant.
func (s *CommentService) Delete(actor security.Actor, id uint) error {
	comment, err := s.comments.GetByID(id)
	if err != nil {
		return apperr.FromDB(err)
	}
	if !security.Can(actor, security.ActionDelete, comment) {
		return apperr.Denied()
	}
	if err := s.comments.Delete(comment.ID); err != nil {
		return apperr.FromDB(err)
	}
	return nil
}

// GetLatestByArticle returns the newest comments for an article.
func (s *CommentService) GetLatestByArticle(articleID uint, limit int) ([]models.Comment, error) {
	if limit <= 0 {
		limit = DefaultLatestCommentsLimit
	}
	comments, err := s.comments.LatestByArticle(articleID, limit)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	return comments, nil
}

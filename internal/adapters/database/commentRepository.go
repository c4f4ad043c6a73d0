package database

import (
	"context"

	"blogfeed/internal/core/comment"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentRepositoryDatabase struct {
	DB *gorm.DB
}

func NewCommentRepositoryDatabase(db *gorm.DB) *CommentRepositoryDatabase {
	return &CommentRepositoryDatabase{DB: db}
}

func (repo *CommentRepositoryDatabase) Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error) {
	if err := repo.DB.WithContext(ctx).Omit(clause.Associations).Create(c).Error; err != nil {
		return nil, errors.Wrap(err, "create comment")
	}
	return c, nil
}

func (repo *CommentRepositoryDatabase) ListByPostID(ctx context.Context, postID string) ([]*comment.Comment, error) {
	var comments []*comment.Comment
	if err := repo.DB.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created ASC").
		Order("id ASC").
		Find(&comments).Error; err != nil {
		return nil, errors.Wrap(err, "list comments")
	}
	return comments, nil
}

package commentapp

import (
	"context"
	"strings"
	"time"

	"blogfeed/internal/config"
	commentEntity "blogfeed/internal/core/comment"
	postEntity "blogfeed/internal/core/post"
	commentPort "blogfeed/internal/ports/comment"
	postPort "blogfeed/internal/ports/post"

	"github.com/gofrs/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type CommentService struct {
	CommentRepository commentPort.CommentRepository
	PostRepository    postPort.PostRepository
	Now               func() time.Time
}

func NewCommentService(commentRepo commentPort.CommentRepository, postRepo postPort.PostRepository) *CommentService {
	return &CommentService{
		CommentRepository: commentRepo,
		PostRepository:    postRepo,
		Now:               time.Now,
	}
}

func (s *CommentService) AddComment(ctx context.Context, postID, authorID, text string) (*commentPort.CommentDTO, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, commentEntity.ErrEmptyText
	}
	pid, err := uuid.FromString(postID)
	if err != nil {
		return nil, postEntity.ErrNotFound
	}
	aid, err := uuid.FromString(authorID)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid author id %q", authorID)
	}
	if _, err := s.PostRepository.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	c, err := s.CommentRepository.Create(ctx, &commentEntity.Comment{
		PostID:   pid,
		AuthorID: aid,
		Text:     text,
		Created:  s.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	config.Logger.Info("Comment added", zap.String("postID", postID), zap.String("authorID", authorID))
	return commentPort.FromEntity(c), nil
}

// ListByPost returns the post's comments oldest first.
func (s *CommentService) ListByPost(ctx context.Context, postID string) ([]*commentPort.CommentDTO, error) {
	if _, err := uuid.FromString(postID); err != nil {
		return nil, postEntity.ErrNotFound
	}
	comments, err := s.CommentRepository.ListByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	dtos := make([]*commentPort.CommentDTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, commentPort.FromEntity(c))
	}
	return dtos, nil
}

package comment

import (
	"context"
	"time"

	"blogfeed/internal/core/comment"
	userPort "blogfeed/internal/ports/user"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *comment.Comment) (*comment.Comment, error)
	// ListByPostID returns comments oldest first with Author loaded.
	ListByPostID(ctx context.Context, postID string) ([]*comment.Comment, error)
}

type CommentDTO struct {
	ID      string            `json:"id"`
	PostID  string            `json:"post_id"`
	Text    string            `json:"text"`
	Created time.Time         `json:"created"`
	Author  *userPort.UserDTO `json:"author,omitempty"`
}

func FromEntity(c *comment.Comment) *CommentDTO {
	dto := &CommentDTO{
		ID:      c.ID.String(),
		PostID:  c.PostID.String(),
		Text:    c.Text,
		Created: c.Created,
	}
	if c.Author.ID == c.AuthorID {
		dto.Author = userPort.FromEntity(&c.Author)
	}
	return dto
}

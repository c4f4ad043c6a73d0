package post

import (
	"context"
	"time"

	"blogfeed/internal/core/post"
	groupPort "blogfeed/internal/ports/group"
	userPort "blogfeed/internal/ports/user"
)

// PostRepository is the storage port for posts. List returns posts matching the
// filter ordered by pub_date descending, with Author and Group loaded.
type PostRepository interface {
	Create(ctx context.Context, post *post.Post) (*post.Post, error)
	FindByID(ctx context.Context, id string) (*post.Post, error)
	Update(ctx context.Context, post *post.Post) error
	Count(ctx context.Context, filter post.Filter) (int64, error)
	List(ctx context.Context, filter post.Filter, offset, limit int) ([]*post.Post, error)
}

type PostDTO struct {
	ID       string              `json:"id"`
	Text     string              `json:"text"`
	PubDate  time.Time           `json:"pub_date"`
	Image    string              `json:"image,omitempty"`
	AuthorID string              `json:"author_id"`
	Author   *userPort.UserDTO   `json:"author,omitempty"`
	Group    *groupPort.GroupDTO `json:"group,omitempty"`
}

func FromEntity(p *post.Post) *PostDTO {
	dto := &PostDTO{
		ID:       p.ID.String(),
		Text:     p.Text,
		PubDate:  p.PubDate,
		Image:    p.Image,
		AuthorID: p.AuthorID.String(),
		Group:    groupPort.FromEntity(p.Group),
	}
	if p.Author.ID == p.AuthorID {
		dto.Author = userPort.FromEntity(&p.Author)
	}
	return dto
}

func FromEntities(posts []*post.Post) []*PostDTO {
	dtos := make([]*PostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, FromEntity(p))
	}
	return dtos
}

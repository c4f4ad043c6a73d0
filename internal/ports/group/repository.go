package group

import (
	"context"

	"blogfeed/internal/core/group"
)

type GroupRepository interface {
	Create(ctx context.Context, group *group.Group) (*group.Group, error)
	FindBySlug(ctx context.Context, slug string) (*group.Group, error)
	List(ctx context.Context) ([]*group.Group, error)
}

type GroupDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

func FromEntity(g *group.Group) *GroupDTO {
	if g == nil {
		return nil
	}
	dto := &GroupDTO{ID: g.ID.String(), Title: g.Title, Slug: g.Slug}
	if g.Description != nil {
		dto.Description = *g.Description
	}
	return dto
}

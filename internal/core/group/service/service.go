package groupapp

import (
	"context"
	"strings"

	"blogfeed/internal/config"
	groupEntity "blogfeed/internal/core/group"
	groupPort "blogfeed/internal/ports/group"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type GroupService struct {
	GroupRepository groupPort.GroupRepository
}

func NewGroupService(repo groupPort.GroupRepository) *GroupService {
	return &GroupService{GroupRepository: repo}
}

func (s *GroupService) CreateGroup(ctx context.Context, title, slug, description string) (*groupPort.GroupDTO, error) {
	title = strings.TrimSpace(title)
	slug = strings.TrimSpace(slug)
	if title == "" || slug == "" {
		return nil, groupEntity.ErrInvalid
	}

	g := &groupEntity.Group{Title: title, Slug: slug}
	if d := strings.TrimSpace(description); d != "" {
		g.Description = &d
	}
	created, err := s.GroupRepository.Create(ctx, g)
	if err != nil {
		return nil, err
	}
	return groupPort.FromEntity(created), nil
}

// EnsureGroup returns the group with slug, creating it when missing.
func (s *GroupService) EnsureGroup(ctx context.Context, slug, title string) (*groupPort.GroupDTO, error) {
	existing, err := s.GroupRepository.FindBySlug(ctx, slug)
	if err == nil {
		return groupPort.FromEntity(existing), nil
	}
	if !errors.Is(err, groupEntity.ErrNotFound) {
		return nil, err
	}

	created, err := s.CreateGroup(ctx, title, slug, "")
	if errors.Is(err, groupEntity.ErrAlreadyExists) {
		existing, err = s.GroupRepository.FindBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		return groupPort.FromEntity(existing), nil
	}
	if err != nil {
		return nil, err
	}
	config.Logger.Info("Group created", zap.String("slug", slug))
	return created, nil
}

func (s *GroupService) GetBySlug(ctx context.Context, slug string) (*groupPort.GroupDTO, error) {
	g, err := s.GroupRepository.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return groupPort.FromEntity(g), nil
}

func (s *GroupService) ListGroups(ctx context.Context) ([]*groupPort.GroupDTO, error) {
	groups, err := s.GroupRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]*groupPort.GroupDTO, 0, len(groups))
	for _, g := range groups {
		dtos = append(dtos, groupPort.FromEntity(g))
	}
	return dtos, nil
}

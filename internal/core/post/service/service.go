package postapp

import (
	"context"
	"strings"
	"time"

	"blogfeed/internal/config"
	groupEntity "blogfeed/internal/core/group"
	postEntity "blogfeed/internal/core/post"
	groupPort "blogfeed/internal/ports/group"
	postPort "blogfeed/internal/ports/post"

	"github.com/gofrs/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type PostService struct {
	PostRepository  postPort.PostRepository
	GroupRepository groupPort.GroupRepository
	// Now stamps pub_date on new posts.
	Now func() time.Time
}

func NewPostService(postRepo postPort.PostRepository, groupRepo groupPort.GroupRepository) *PostService {
	return &PostService{
		PostRepository:  postRepo,
		GroupRepository: groupRepo,
		Now:             time.Now,
	}
}

// CreatePost publishes text by authorID, optionally into the group with
// groupSlug.
func (s *PostService) CreatePost(ctx context.Context, authorID, text, groupSlug string) (*postPort.PostDTO, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, postEntity.ErrEmptyText
	}
	aid, err := uuid.FromString(authorID)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid author id %q", authorID)
	}
	g, err := s.resolveGroup(ctx, groupSlug)
	if err != nil {
		return nil, err
	}

	p := &postEntity.Post{
		Text:     text,
		PubDate:  s.Now().UTC(),
		AuthorID: aid,
		Group:    g,
	}
	if g != nil {
		p.GroupID = &g.ID
	}

	created, err := s.PostRepository.Create(ctx, p)
	if err != nil {
		config.Logger.Error("Failed to create post", zap.String("authorID", authorID), zap.Error(err))
		return nil, err
	}
	config.Logger.Info("Post created", zap.String("postID", created.ID.String()), zap.String("authorID", authorID))
	return postPort.FromEntity(created), nil
}

func (s *PostService) GetPost(ctx context.Context, id string) (*postPort.PostDTO, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return postPort.FromEntity(p), nil
}

// EditPost replaces text and group. Only the author may edit; pub_date and
// author are kept.
func (s *PostService) EditPost(ctx context.Context, id, editorID, text, groupSlug string) (*postPort.PostDTO, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.AuthorID.String() != editorID {
		config.Logger.Warn("Edit rejected", zap.String("postID", id), zap.String("editorID", editorID))
		return nil, postEntity.ErrForbidden
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, postEntity.ErrEmptyText
	}
	g, err := s.resolveGroup(ctx, groupSlug)
	if err != nil {
		return nil, err
	}

	p.Text = text
	p.Group = g
	p.GroupID = nil
	if g != nil {
		p.GroupID = &g.ID
	}
	if err := s.PostRepository.Update(ctx, p); err != nil {
		return nil, err
	}
	return postPort.FromEntity(p), nil
}

func (s *PostService) find(ctx context.Context, id string) (*postEntity.Post, error) {
	if _, err := uuid.FromString(id); err != nil {
		return nil, postEntity.ErrNotFound
	}
	return s.PostRepository.FindByID(ctx, id)
}

func (s *PostService) resolveGroup(ctx context.Context, slug string) (*groupEntity.Group, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, nil
	}
	return s.GroupRepository.FindBySlug(ctx, slug)
}

package feedapp

import (
	"context"

	"blogfeed/internal/core/feed"
	"blogfeed/internal/core/paginator"
	postEntity "blogfeed/internal/core/post"
	feedPort "blogfeed/internal/ports/feed"
	followerPort "blogfeed/internal/ports/follower"
	groupPort "blogfeed/internal/ports/group"
	postPort "blogfeed/internal/ports/post"
	userPort "blogfeed/internal/ports/user"

	"github.com/gofrs/uuid"
	"github.com/pkg/errors"
)

// FollowRegistry is the part of the follower service the feeds read from.
type FollowRegistry interface {
	AuthorsFollowedBy(ctx context.Context, userID string) ([]uuid.UUID, error)
	IsFollowing(ctx context.Context, userID, authorID string) (bool, error)
	Counts(ctx context.Context, userID string) (*followerPort.CountsDTO, error)
}

// FeedService composes the paginated listing views. Every view orders posts
// newest first and loads only the requested window.
type FeedService struct {
	PostRepository  postPort.PostRepository
	GroupRepository groupPort.GroupRepository
	UserRepository  userPort.UserRepository
	Follows         FollowRegistry
	PageSize        int
}

func NewFeedService(
	postRepo postPort.PostRepository,
	groupRepo groupPort.GroupRepository,
	userRepo userPort.UserRepository,
	follows FollowRegistry,
	pageSize int,
) *FeedService {
	return &FeedService{
		PostRepository:  postRepo,
		GroupRepository: groupRepo,
		UserRepository:  userRepo,
		Follows:         follows,
		PageSize:        pageSize,
	}
}

// Index lists every post.
func (s *FeedService) Index(ctx context.Context, rawPage string) (*feedPort.FeedDTO, error) {
	return s.window(ctx, feed.KindIndex, postEntity.Filter{}, rawPage)
}

// IndexPageNumber resolves rawPage against the current number of posts.
func (s *FeedService) IndexPageNumber(ctx context.Context, rawPage string) (int, error) {
	count, err := s.PostRepository.Count(ctx, postEntity.Filter{})
	if err != nil {
		return 0, errors.Wrap(err, "index page")
	}
	return paginator.New(int(count), s.PageSize).GetPage(rawPage).Number, nil
}

// Group lists the posts of the group with slug.
func (s *FeedService) Group(ctx context.Context, slug, rawPage string) (*feedPort.GroupFeedDTO, error) {
	g, err := s.GroupRepository.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	w, err := s.window(ctx, feed.KindGroup, postEntity.Filter{GroupID: &g.ID}, rawPage)
	if err != nil {
		return nil, err
	}
	return &feedPort.GroupFeedDTO{FeedDTO: *w, Group: groupPort.FromEntity(g)}, nil
}

// Profile lists the posts of username together with their follow counts.
// viewerID may be empty for anonymous viewers.
func (s *FeedService) Profile(ctx context.Context, username, viewerID, rawPage string) (*feedPort.ProfileFeedDTO, error) {
	author, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	w, err := s.window(ctx, feed.KindProfile, postEntity.Filter{AuthorID: &author.ID}, rawPage)
	if err != nil {
		return nil, err
	}

	authorID := author.ID.String()
	counts, err := s.Follows.Counts(ctx, authorID)
	if err != nil {
		return nil, err
	}
	res := &feedPort.ProfileFeedDTO{
		FeedDTO:   *w,
		Author:    userPort.FromEntity(author),
		Followers: counts.Followers,
		Following: counts.Following,
		CanFollow: viewerID != "" && viewerID != authorID,
	}
	if res.CanFollow {
		res.IsFollowing, err = s.Follows.IsFollowing(ctx, viewerID, authorID)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Follow lists posts by the authors userID follows. Following nobody yields
// an empty page.
func (s *FeedService) Follow(ctx context.Context, userID, rawPage string) (*feedPort.FeedDTO, error) {
	authors, err := s.Follows.AuthorsFollowedBy(ctx, userID)
	if err != nil {
		return nil, err
	}
	if authors == nil {
		authors = []uuid.UUID{}
	}
	return s.window(ctx, feed.KindFollow, postEntity.Filter{AuthorIDs: authors}, rawPage)
}

func (s *FeedService) window(ctx context.Context, kind feed.Kind, filter postEntity.Filter, rawPage string) (*feedPort.FeedDTO, error) {
	count, err := s.PostRepository.Count(ctx, filter)
	if err != nil {
		return nil, errors.Wrapf(err, "%s feed", kind)
	}
	page := paginator.New(int(count), s.PageSize).GetPage(rawPage)

	posts := []*postPort.PostDTO{}
	if page.Limit > 0 {
		found, err := s.PostRepository.List(ctx, filter, page.Offset, page.Limit)
		if err != nil {
			return nil, errors.Wrapf(err, "%s feed", kind)
		}
		posts = postPort.FromEntities(found)
	}
	return &feedPort.FeedDTO{Kind: kind, Posts: posts, Page: page}, nil
}

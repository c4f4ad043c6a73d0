package followerapp

import (
	"context"

	"blogfeed/internal/config"
	followerEntity "blogfeed/internal/core/follower"
	followerPort "blogfeed/internal/ports/follower"

	"github.com/gofrs/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type FollowerService struct {
	FollowerRepository followerPort.FollowerRepository
}

func NewFollowerService(repo followerPort.FollowerRepository) *FollowerService {
	return &FollowerService{
		FollowerRepository: repo,
	}
}

// FollowUser adds the edge userID -> authorID. Following twice is a no-op.
func (s *FollowerService) FollowUser(ctx context.Context, userID, authorID string) error {
	uid, err := uuid.FromString(userID)
	if err != nil {
		return errors.Wrapf(err, "invalid user id %q", userID)
	}
	aid, err := uuid.FromString(authorID)
	if err != nil {
		return errors.Wrapf(err, "invalid author id %q", authorID)
	}
	if uid == aid {
		config.Logger.Warn("Cannot follow yourself", zap.String("userID", userID))
		return followerEntity.ErrSelfFollow
	}

	following, err := s.FollowerRepository.IsFollowing(ctx, uid.String(), aid.String())
	if err != nil {
		return err
	}
	if following {
		return nil
	}

	_, err = s.FollowerRepository.FollowUser(ctx, &followerEntity.Follower{
		UserID:   uid,
		AuthorID: aid,
	})
	if err != nil {
		return err
	}
	config.Logger.Info("User followed author", zap.String("userID", userID), zap.String("authorID", authorID))
	return nil
}

// UnfollowUser removes the edge if present.
func (s *FollowerService) UnfollowUser(ctx context.Context, userID, authorID string) error {
	return s.FollowerRepository.UnfollowUser(ctx, userID, authorID)
}

func (s *FollowerService) GetFollowersByUserID(ctx context.Context, authorID string) ([]*followerPort.FollowerDTO, error) {
	followers, err := s.FollowerRepository.GetFollowersByUserID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	return toDTOs(followers), nil
}

func (s *FollowerService) GetFollowingByUserID(ctx context.Context, userID string) ([]*followerPort.FollowerDTO, error) {
	following, err := s.FollowerRepository.GetFollowingByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toDTOs(following), nil
}

// AuthorsFollowedBy returns the ids of every author userID follows. The result
// is never nil.
func (s *FollowerService) AuthorsFollowedBy(ctx context.Context, userID string) ([]uuid.UUID, error) {
	following, err := s.FollowerRepository.GetFollowingByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(following))
	for _, f := range following {
		ids = append(ids, f.AuthorID)
	}
	return ids, nil
}

func (s *FollowerService) IsFollowing(ctx context.Context, userID, authorID string) (bool, error) {
	if userID == "" || authorID == "" {
		return false, nil
	}
	return s.FollowerRepository.IsFollowing(ctx, userID, authorID)
}

func (s *FollowerService) Counts(ctx context.Context, userID string) (*followerPort.CountsDTO, error) {
	followers, err := s.FollowerRepository.CountFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	following, err := s.FollowerRepository.CountFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &followerPort.CountsDTO{Followers: followers, Following: following}, nil
}

func toDTOs(edges []*followerEntity.Follower) []*followerPort.FollowerDTO {
	dtos := make([]*followerPort.FollowerDTO, 0, len(edges))
	for _, f := range edges {
		dtos = append(dtos, &followerPort.FollowerDTO{
			ID:       f.ID.String(),
			UserID:   f.UserID.String(),
			AuthorID: f.AuthorID.String(),
		})
	}
	return dtos
}

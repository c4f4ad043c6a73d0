package follower

import (
	"context"

	"blogfeed/internal/core/follower"
)

// FollowerRepository is the storage port for follow edges. userID is the
// follower, authorID the followed user.
type FollowerRepository interface {
	FollowUser(ctx context.Context, follower *follower.Follower) (*follower.Follower, error)
	UnfollowUser(ctx context.Context, userID, authorID string) error
	GetFollowersByUserID(ctx context.Context, authorID string) ([]*follower.Follower, error)
	GetFollowingByUserID(ctx context.Context, userID string) ([]*follower.Follower, error)
	IsFollowing(ctx context.Context, userID, authorID string) (bool, error)
	CountFollowers(ctx context.Context, authorID string) (int64, error)
	CountFollowing(ctx context.Context, userID string) (int64, error)
}

type FollowerDTO struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	AuthorID string `json:"authorId"`
}

type CountsDTO struct {
	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
}

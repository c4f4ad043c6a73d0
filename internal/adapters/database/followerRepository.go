package database

import (
	"context"

	"blogfeed/internal/core/follower"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowerRepositoryDatabase implements FollowerRepository on gorm.
type FollowerRepositoryDatabase struct {
	DB *gorm.DB
}

func NewFollowerRepositoryDatabase(db *gorm.DB) *FollowerRepositoryDatabase {
	return &FollowerRepositoryDatabase{DB: db}
}

// FollowUser inserts the edge; an existing (user, author) pair is left untouched.
func (repo *FollowerRepositoryDatabase) FollowUser(ctx context.Context, f *follower.Follower) (*follower.Follower, error) {
	if err := repo.DB.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(f).Error; err != nil {
		return nil, errors.Wrap(err, "create follow")
	}
	return f, nil
}

func (repo *FollowerRepositoryDatabase) UnfollowUser(ctx context.Context, userID, authorID string) error {
	if err := repo.DB.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&follower.Follower{}).Error; err != nil {
		return errors.Wrap(err, "delete follow")
	}
	return nil
}

func (repo *FollowerRepositoryDatabase) GetFollowersByUserID(ctx context.Context, authorID string) ([]*follower.Follower, error) {
	var followers []*follower.Follower
	if err := repo.DB.WithContext(ctx).Where("author_id = ?", authorID).Find(&followers).Error; err != nil {
		return nil, errors.Wrap(err, "list followers")
	}
	return followers, nil
}

func (repo *FollowerRepositoryDatabase) GetFollowingByUserID(ctx context.Context, userID string) ([]*follower.Follower, error) {
	var following []*follower.Follower
	if err := repo.DB.WithContext(ctx).Where("user_id = ?", userID).Find(&following).Error; err != nil {
		return nil, errors.Wrap(err, "list following")
	}
	return following, nil
}

func (repo *FollowerRepositoryDatabase) IsFollowing(ctx context.Context, userID, authorID string) (bool, error) {
	var count int64
	if err := repo.DB.WithContext(ctx).
		Model(&follower.Follower{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "check follow")
	}
	return count > 0, nil
}

func (repo *FollowerRepositoryDatabase) CountFollowers(ctx context.Context, authorID string) (int64, error) {
	var count int64
	if err := repo.DB.WithContext(ctx).Model(&follower.Follower{}).Where("author_id = ?", authorID).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "count followers")
	}
	return count, nil
}

func (repo *FollowerRepositoryDatabase) CountFollowing(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := repo.DB.WithContext(ctx).Model(&follower.Follower{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "count following")
	}
	return count, nil
}

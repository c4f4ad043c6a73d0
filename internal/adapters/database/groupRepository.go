package database

import (
	"context"

	"blogfeed/internal/core/group"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type GroupRepositoryDatabase struct {
	DB *gorm.DB
}

func NewGroupRepositoryDatabase(db *gorm.DB) *GroupRepositoryDatabase {
	return &GroupRepositoryDatabase{DB: db}
}

func (repo *GroupRepositoryDatabase) Create(ctx context.Context, g *group.Group) (*group.Group, error) {
	if err := repo.DB.WithContext(ctx).Create(g).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, group.ErrAlreadyExists
		}
		return nil, errors.Wrap(err, "create group")
	}
	return g, nil
}

func (repo *GroupRepositoryDatabase) FindBySlug(ctx context.Context, slug string) (*group.Group, error) {
	var g group.Group
	if err := repo.DB.WithContext(ctx).Where("slug = ?", slug).First(&g).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, group.ErrNotFound
		}
		return nil, errors.Wrapf(err, "find group %q", slug)
	}
	return &g, nil
}

func (repo *GroupRepositoryDatabase) List(ctx context.Context) ([]*group.Group, error) {
	var groups []*group.Group
	if err := repo.DB.WithContext(ctx).Order("title ASC").Find(&groups).Error; err != nil {
		return nil, errors.Wrap(err, "list groups")
	}
	return groups, nil
}

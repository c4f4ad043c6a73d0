package database

import (
	"context"

	"blogfeed/internal/core/post"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepositoryDatabase implements PostRepository on gorm.
type PostRepositoryDatabase struct {
	DB *gorm.DB
}

func NewPostRepositoryDatabase(db *gorm.DB) *PostRepositoryDatabase {
	return &PostRepositoryDatabase{DB: db}
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := repo.DB.WithContext(ctx).Omit(clause.Associations).Create(p).Error; err != nil {
		return nil, errors.Wrap(err, "create post")
	}
	return p, nil
}

func (repo *PostRepositoryDatabase) FindByID(ctx context.Context, id string) (*post.Post, error) {
	var p post.Post
	if err := repo.DB.WithContext(ctx).
		Preload("Author").
		Preload("Group").
		Where("id = ?", id).
		First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, post.ErrNotFound
		}
		return nil, errors.Wrap(err, "find post")
	}
	return &p, nil
}

// Update writes the mutable fields only; author and pub_date never change.
func (repo *PostRepositoryDatabase) Update(ctx context.Context, p *post.Post) error {
	res := repo.DB.WithContext(ctx).
		Model(&post.Post{}).
		Where("id = ?", p.ID.String()).
		Updates(map[string]any{
			"text":     p.Text,
			"group_id": p.GroupID,
			"image":    p.Image,
		})
	if res.Error != nil {
		return errors.Wrap(res.Error, "update post")
	}
	return nil
}

func (repo *PostRepositoryDatabase) Count(ctx context.Context, filter post.Filter) (int64, error) {
	var n int64
	if err := scopeFilter(repo.DB.WithContext(ctx).Model(&post.Post{}), filter).Count(&n).Error; err != nil {
		return 0, errors.Wrap(err, "count posts")
	}
	return n, nil
}

func (repo *PostRepositoryDatabase) List(ctx context.Context, filter post.Filter, offset, limit int) ([]*post.Post, error) {
	var posts []*post.Post
	if err := scopeFilter(repo.DB.WithContext(ctx), filter).
		Preload("Author").
		Preload("Group").
		Order("pub_date DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, errors.Wrap(err, "list posts")
	}
	return posts, nil
}

func scopeFilter(q *gorm.DB, f post.Filter) *gorm.DB {
	if f.GroupID != nil {
		q = q.Where("group_id = ?", f.GroupID.String())
	}
	if f.AuthorID != nil {
		q = q.Where("author_id = ?", f.AuthorID.String())
	}
	if f.AuthorIDs != nil {
		if len(f.AuthorIDs) == 0 {
			return q.Where("1 = 0")
		}
		ids := make([]string, 0, len(f.AuthorIDs))
		for _, id := range f.AuthorIDs {
			ids = append(ids, id.String())
		}
		q = q.Where("author_id IN ?", ids)
	}
	return q
}

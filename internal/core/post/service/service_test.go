package postapp

import (
	"context"
	"testing"
	"time"

	"blogfeed/internal/adapters/database"
	"blogfeed/internal/adapters/database/dbtest"
	groupEntity "blogfeed/internal/core/group"
	postEntity "blogfeed/internal/core/post"
	userEntity "blogfeed/internal/core/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc  *PostService
	ann  string
	bob  string
	cats *groupEntity.Group
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := dbtest.Open(t)
	ctx := context.Background()
	users := database.NewUserRepositoryDatabase(db)
	groups := database.NewGroupRepositoryDatabase(db)

	ann, err := users.Create(ctx, &userEntity.User{Username: "ann", Password: "x"})
	require.NoError(t, err)
	bob, err := users.Create(ctx, &userEntity.User{Username: "bob", Password: "x"})
	require.NoError(t, err)
	cats, err := groups.Create(ctx, &groupEntity.Group{Title: "Cats", Slug: "cats"})
	require.NoError(t, err)

	svc := NewPostService(database.NewPostRepositoryDatabase(db), groups)
	clock := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return &fixture{svc: svc, ann: ann.ID.String(), bob: bob.ID.String(), cats: cats}
}

func TestCreatePost(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.svc.CreatePost(ctx, f.ann, "  hello  ", "cats")
	require.NoError(t, err)
	assert.Equal(t, "hello", p.Text)
	require.NotNil(t, p.Group)
	assert.Equal(t, "cats", p.Group.Slug)
	assert.Equal(t, time.UTC, p.PubDate.Location())

	got, err := f.svc.GetPost(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "ann", got.Author.Username)

	_, err = f.svc.CreatePost(ctx, f.ann, "   ", "")
	assert.ErrorIs(t, err, postEntity.ErrEmptyText)

	_, err = f.svc.CreatePost(ctx, f.ann, "hi", "no-such-group")
	assert.ErrorIs(t, err, groupEntity.ErrNotFound)

	plain, err := f.svc.CreatePost(ctx, f.ann, "no group", "")
	require.NoError(t, err)
	assert.Nil(t, plain.Group)
}

func TestGetPostUnknown(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.GetPost(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, postEntity.ErrNotFound)
	_, err = f.svc.GetPost(context.Background(), "6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	assert.ErrorIs(t, err, postEntity.ErrNotFound)
}

func TestEditPost(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p, err := f.svc.CreatePost(ctx, f.ann, "first", "cats")
	require.NoError(t, err)

	_, err = f.svc.EditPost(ctx, p.ID, f.bob, "hijacked", "")
	assert.ErrorIs(t, err, postEntity.ErrForbidden)

	_, err = f.svc.EditPost(ctx, p.ID, f.ann, " ", "")
	assert.ErrorIs(t, err, postEntity.ErrEmptyText)

	edited, err := f.svc.EditPost(ctx, p.ID, f.ann, "second", "")
	require.NoError(t, err)
	assert.Equal(t, "second", edited.Text)
	assert.Nil(t, edited.Group)

	got, err := f.svc.GetPost(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "second", got.Text)
	assert.Nil(t, got.Group)
	assert.True(t, p.PubDate.Equal(got.PubDate))
	assert.Equal(t, f.ann, got.AuthorID)
}

package feedapp

import (
	"context"
	"fmt"
	"testing"
	"time"

	"blogfeed/internal/adapters/database"
	"blogfeed/internal/adapters/database/dbtest"
	followerapp "blogfeed/internal/core/follower/service"
	groupEntity "blogfeed/internal/core/group"
	postEntity "blogfeed/internal/core/post"
	userEntity "blogfeed/internal/core/user"
	followerPort "blogfeed/internal/ports/follower"
	postPort "blogfeed/internal/ports/post"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	t       *testing.T
	db      *gorm.DB
	feeds   *FeedService
	follows *followerapp.FollowerService
	clock   time.Time
}

func newFixture(t *testing.T, pageSize int) *fixture {
	db := dbtest.Open(t)
	follows := followerapp.NewFollowerService(database.NewFollowerRepositoryDatabase(db))
	return &fixture{
		t:  t,
		db: db,
		feeds: NewFeedService(
			database.NewPostRepositoryDatabase(db),
			database.NewGroupRepositoryDatabase(db),
			database.NewUserRepositoryDatabase(db),
			follows,
			pageSize,
		),
		follows: follows,
		clock:   time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (f *fixture) user(name string) *userEntity.User {
	u, err := database.NewUserRepositoryDatabase(f.db).Create(context.Background(), &userEntity.User{Username: name, Password: "x"})
	require.NoError(f.t, err)
	return u
}

func (f *fixture) group(slug string) *groupEntity.Group {
	g, err := database.NewGroupRepositoryDatabase(f.db).Create(context.Background(), &groupEntity.Group{Title: slug, Slug: slug})
	require.NoError(f.t, err)
	return g
}

// post publishes one minute after the previous post.
func (f *fixture) post(author *userEntity.User, g *groupEntity.Group, text string) *postEntity.Post {
	f.clock = f.clock.Add(time.Minute)
	p := &postEntity.Post{Text: text, PubDate: f.clock, AuthorID: author.ID}
	if g != nil {
		p.GroupID = &g.ID
	}
	created, err := database.NewPostRepositoryDatabase(f.db).Create(context.Background(), p)
	require.NoError(f.t, err)
	return created
}

func texts(posts []*postPort.PostDTO) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Text)
	}
	return out
}

func TestIndexPagination(t *testing.T) {
	f := newFixture(t, 10)
	ann := f.user("ann")
	for i := 1; i <= 11; i++ {
		f.post(ann, nil, fmt.Sprintf("post %d", i))
	}
	ctx := context.Background()

	first, err := f.feeds.Index(ctx, "")
	require.NoError(t, err)
	assert.Len(t, first.Posts, 10)
	assert.Equal(t, "post 11", first.Posts[0].Text)
	assert.Equal(t, 2, first.Page.NumPages)
	assert.True(t, first.Page.HasNext())

	second, err := f.feeds.Index(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, []string{"post 1"}, texts(second.Posts))
	assert.False(t, second.Page.HasNext())

	clamped, err := f.feeds.Index(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, 2, clamped.Page.Number)
	assert.Equal(t, texts(second.Posts), texts(clamped.Posts))

	junk, err := f.feeds.Index(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, 1, junk.Page.Number)
	assert.Equal(t, texts(first.Posts), texts(junk.Posts))
}

func TestIndexPageNumber(t *testing.T) {
	f := newFixture(t, 10)
	ann := f.user("ann")
	for i := 1; i <= 11; i++ {
		f.post(ann, nil, fmt.Sprintf("post %d", i))
	}
	ctx := context.Background()

	for raw, want := range map[string]int{
		"":                     1,
		"abc":                  1,
		"-4":                   1,
		"2":                    2,
		"3":                    2,
		"99999999999999999999": 2,
	} {
		n, err := f.feeds.IndexPageNumber(ctx, raw)
		require.NoError(t, err)
		assert.Equal(t, want, n, "raw=%q", raw)
	}
}

func TestIndexEmpty(t *testing.T) {
	f := newFixture(t, 10)
	page, err := f.feeds.Index(context.Background(), "7")
	require.NoError(t, err)
	assert.Empty(t, page.Posts)
	assert.NotNil(t, page.Posts)
	assert.Equal(t, 1, page.Page.Number)
	assert.Equal(t, 1, page.Page.NumPages)
}

func TestGroupFeed(t *testing.T) {
	f := newFixture(t, 10)
	ann := f.user("ann")
	bob := f.user("bob")
	cats := f.group("cats")
	dogs := f.group("dogs")
	f.post(ann, cats, "c1")
	f.post(bob, dogs, "d1")
	f.post(bob, cats, "c2")
	f.post(ann, nil, "loose")

	res, err := f.feeds.Group(context.Background(), "cats", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"c2", "c1"}, texts(res.Posts))
	assert.Equal(t, "cats", res.Group.Slug)

	_, err = f.feeds.Group(context.Background(), "birds", "")
	assert.ErrorIs(t, err, groupEntity.ErrNotFound)
}

func TestProfileFeed(t *testing.T) {
	f := newFixture(t, 10)
	ctx := context.Background()
	ann := f.user("ann")
	bob := f.user("bob")
	f.post(ann, nil, "a1")
	f.post(bob, nil, "b1")
	f.post(ann, nil, "a2")
	require.NoError(t, f.follows.FollowUser(ctx, bob.ID.String(), ann.ID.String()))

	res, err := f.feeds.Profile(ctx, "ann", bob.ID.String(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a2", "a1"}, texts(res.Posts))
	assert.Equal(t, 2, res.PostCount())
	assert.Equal(t, int64(1), res.Followers)
	assert.Equal(t, int64(0), res.Following)
	assert.True(t, res.CanFollow)
	assert.True(t, res.IsFollowing)

	own, err := f.feeds.Profile(ctx, "ann", ann.ID.String(), "")
	require.NoError(t, err)
	assert.False(t, own.CanFollow)
	assert.False(t, own.IsFollowing)

	anon, err := f.feeds.Profile(ctx, "bob", "", "")
	require.NoError(t, err)
	assert.False(t, anon.CanFollow)
	assert.Equal(t, int64(1), anon.Following)

	_, err = f.feeds.Profile(ctx, "ghost", "", "")
	assert.ErrorIs(t, err, userEntity.ErrNotFound)
}

func TestFollowFeed(t *testing.T) {
	f := newFixture(t, 10)
	ctx := context.Background()
	ann := f.user("ann")
	bob := f.user("bob")
	cat := f.user("cat")
	f.post(bob, nil, "b1")
	f.post(cat, nil, "c1")
	f.post(ann, nil, "a1")
	f.post(bob, nil, "b2")

	empty, err := f.feeds.Follow(ctx, ann.ID.String(), "")
	require.NoError(t, err)
	assert.Empty(t, empty.Posts)

	require.NoError(t, f.follows.FollowUser(ctx, ann.ID.String(), bob.ID.String()))
	res, err := f.feeds.Follow(ctx, ann.ID.String(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"b2", "b1"}, texts(res.Posts))

	require.NoError(t, f.follows.FollowUser(ctx, ann.ID.String(), cat.ID.String()))
	res, err = f.feeds.Follow(ctx, ann.ID.String(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"b2", "c1", "b1"}, texts(res.Posts))

	require.NoError(t, f.follows.UnfollowUser(ctx, ann.ID.String(), bob.ID.String()))
	res, err = f.feeds.Follow(ctx, ann.ID.String(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"c1"}, texts(res.Posts))
}

type failingRegistry struct{}

func (failingRegistry) AuthorsFollowedBy(context.Context, string) ([]uuid.UUID, error) {
	return nil, assert.AnError
}
func (failingRegistry) IsFollowing(context.Context, string, string) (bool, error) {
	return false, assert.AnError
}
func (failingRegistry) Counts(context.Context, string) (*followerPort.CountsDTO, error) {
	return nil, assert.AnError
}

func TestFollowFeedRegistryError(t *testing.T) {
	f := newFixture(t, 10)
	f.feeds.Follows = failingRegistry{}
	_, err := f.feeds.Follow(context.Background(), "anyone", "")
	assert.ErrorIs(t, err, assert.AnError)
}

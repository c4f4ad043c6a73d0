package commentapp

import (
	"context"
	"testing"
	"time"

	"blogfeed/internal/adapters/database"
	"blogfeed/internal/adapters/database/dbtest"
	commentEntity "blogfeed/internal/core/comment"
	postEntity "blogfeed/internal/core/post"
	userEntity "blogfeed/internal/core/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndListComments(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	ann, err := database.NewUserRepositoryDatabase(db).Create(ctx, &userEntity.User{Username: "ann", Password: "x"})
	require.NoError(t, err)
	posts := database.NewPostRepositoryDatabase(db)
	p, err := posts.Create(ctx, &postEntity.Post{Text: "post", PubDate: time.Now().UTC(), AuthorID: ann.ID})
	require.NoError(t, err)

	s := NewCommentService(database.NewCommentRepositoryDatabase(db), posts)
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.Now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	_, err = s.AddComment(ctx, p.ID.String(), ann.ID.String(), "  ")
	assert.ErrorIs(t, err, commentEntity.ErrEmptyText)

	_, err = s.AddComment(ctx, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", ann.ID.String(), "lost")
	assert.ErrorIs(t, err, postEntity.ErrNotFound)

	_, err = s.AddComment(ctx, p.ID.String(), ann.ID.String(), "first")
	require.NoError(t, err)
	_, err = s.AddComment(ctx, p.ID.String(), ann.ID.String(), "second")
	require.NoError(t, err)

	list, err := s.ListByPost(ctx, p.ID.String())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Text)
	assert.Equal(t, "second", list[1].Text)
	assert.Equal(t, "ann", list[0].Author.Username)

	_, err = s.ListByPost(ctx, "garbage")
	assert.ErrorIs(t, err, postEntity.ErrNotFound)
}

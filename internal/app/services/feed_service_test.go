package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emre/postova/internal/pkg/apperrors"
)

func newFeedFixture() (*fakeUserStore, *fakeGroupStore, *fakeFollowStore, *fakePostStore, FeedService) {
	users := newFakeUserStore()
	groups := newFakeGroupStore()
	follows := newFakeFollowStore()
	posts := newFakePostStore(follows)
	svc := NewFeedService(posts, groups, users, follows, 10, zerolog.Nop())
	return users, groups, follows, posts, svc
}

func TestFeedServiceListAll(t *testing.T) {
	ctx := context.Background()

	users, _, _, posts, svc := newFeedFixture()
	author := users.addUser("leo")
	for i := 1; i <= 13; i++ {
		posts.addPost(author.ID, fmt.Sprintf("post %d", i), nil)
	}

	t.Run("first page is full and newest first", func(t *testing.T) {
		feed, err := svc.ListAll(ctx, 1)
		require.NoError(t, err)

		require.Len(t, feed.Posts, 10)
		assert.Equal(t, "post 13", feed.Posts[0].Text)
		assert.Equal(t, "post 4", feed.Posts[9].Text)
		assert.Equal(t, int64(13), feed.Pagination.TotalItems)
		assert.Equal(t, 2, feed.Pagination.TotalPages)
		assert.True(t, feed.Pagination.HasNext)
		assert.False(t, feed.Pagination.HasPrevious)
	})

	t.Run("second page holds the remainder", func(t *testing.T) {
		feed, err := svc.ListAll(ctx, 2)
		require.NoError(t, err)

		require.Len(t, feed.Posts, 3)
		assert.Equal(t, "post 3", feed.Posts[0].Text)
		assert.Equal(t, "post 1", feed.Posts[2].Text)
		assert.False(t, feed.Pagination.HasNext)
		assert.True(t, feed.Pagination.HasPrevious)
	})

	t.Run("page beyond the last clamps to the last", func(t *testing.T) {
		feed, err := svc.ListAll(ctx, 99)
		require.NoError(t, err)

		assert.Equal(t, 2, feed.Pagination.Number)
		assert.Len(t, feed.Posts, 3)
	})

	t.Run("empty store yields one empty page", func(t *testing.T) {
		_, _, _, _, emptySvc := newFeedFixture()
		feed, err := emptySvc.ListAll(ctx, 1)
		require.NoError(t, err)

		assert.Empty(t, feed.Posts)
		assert.Equal(t, 1, feed.Pagination.TotalPages)
		assert.False(t, feed.Pagination.HasNext)
	})
}

func TestFeedServiceListByGroup(t *testing.T) {
	ctx := context.Background()

	users, groups, _, posts, svc := newFeedFixture()
	author := users.addUser("leo")
	nature := groups.addGroup("Nature", "nature")
	tech := groups.addGroup("Tech", "tech")

	posts.addPost(author.ID, "forest walk", &nature.ID)
	posts.addPost(author.ID, "new keyboard", &tech.ID)
	posts.addPost(author.ID, "mountain trip", &nature.ID)
	posts.addPost(author.ID, "ungrouped", nil)

	t.Run("unknown slug is not found", func(t *testing.T) {
		_, err := svc.ListByGroup(ctx, "no-such-group", 1)
		assert.ErrorIs(t, err, apperrors.ErrGroupNotFound)
	})

	t.Run("only the group's posts, with the group header", func(t *testing.T) {
		feed, err := svc.ListByGroup(ctx, "nature", 1)
		require.NoError(t, err)

		assert.Equal(t, "Nature", feed.Group.Title)
		require.Len(t, feed.Posts, 2)
		assert.Equal(t, "mountain trip", feed.Posts[0].Text)
		assert.Equal(t, "forest walk", feed.Posts[1].Text)
		assert.Equal(t, int64(2), feed.Pagination.TotalItems)
	})
}

func TestFeedServiceListByAuthor(t *testing.T) {
	ctx := context.Background()

	users, _, follows, posts, svc := newFeedFixture()
	leo := users.addUser("leo")
	mia := users.addUser("mia")

	posts.addPost(leo.ID, "leo one", nil)
	posts.addPost(mia.ID, "mia one", nil)
	posts.addPost(leo.ID, "leo two", nil)

	t.Run("unknown username is not found", func(t *testing.T) {
		_, err := svc.ListByAuthor(ctx, "ghost", 0, 1)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("profile carries post count and only the author's posts", func(t *testing.T) {
		profile, err := svc.ListByAuthor(ctx, "leo", 0, 1)
		require.NoError(t, err)

		assert.Equal(t, "leo", profile.Author.Username)
		assert.Equal(t, int64(2), profile.PostCount)
		require.Len(t, profile.Posts, 2)
		assert.Equal(t, "leo two", profile.Posts[0].Text)
	})

	t.Run("following flag reflects the viewer", func(t *testing.T) {
		_, err := follows.Create(ctx, mia.ID, leo.ID)
		require.NoError(t, err)

		profile, err := svc.ListByAuthor(ctx, "leo", mia.ID, 1)
		require.NoError(t, err)
		assert.True(t, profile.Following)

		profile, err = svc.ListByAuthor(ctx, "leo", leo.ID, 1)
		require.NoError(t, err)
		assert.False(t, profile.Following)
	})

	t.Run("anonymous viewer never follows", func(t *testing.T) {
		profile, err := svc.ListByAuthor(ctx, "leo", 0, 1)
		require.NoError(t, err)
		assert.False(t, profile.Following)
	})
}

func TestFeedServiceListFollowed(t *testing.T) {
	ctx := context.Background()

	users, _, follows, posts, svc := newFeedFixture()
	x := users.addUser("xavier")
	y := users.addUser("yara")
	z := users.addUser("zoe")

	posts.addPost(x.ID, "by xavier", nil)
	posts.addPost(y.ID, "by yara", nil)
	posts.addPost(z.ID, "by zoe", nil)

	_, err := follows.Create(ctx, x.ID, y.ID)
	require.NoError(t, err)

	t.Run("follower sees only followed authors' posts", func(t *testing.T) {
		feed, err := svc.ListFollowed(ctx, x.ID, 1)
		require.NoError(t, err)

		require.Len(t, feed.Posts, 1)
		assert.Equal(t, "by yara", feed.Posts[0].Text)
	})

	t.Run("own posts are not part of the followed feed", func(t *testing.T) {
		feed, err := svc.ListFollowed(ctx, x.ID, 1)
		require.NoError(t, err)
		for _, p := range feed.Posts {
			assert.NotEqual(t, "by xavier", p.Text)
		}
	})

	t.Run("non-followed authors are excluded", func(t *testing.T) {
		feed, err := svc.ListFollowed(ctx, y.ID, 1)
		require.NoError(t, err)
		assert.Empty(t, feed.Posts)
		assert.Equal(t, 1, feed.Pagination.TotalPages)
	})

	t.Run("anonymous viewer is rejected", func(t *testing.T) {
		_, err := svc.ListFollowed(ctx, 0, 1)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}

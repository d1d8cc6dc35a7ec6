package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emre/postova/internal/pkg/apperrors"
)

func TestFollowServiceFollow(t *testing.T) {
	ctx := context.Background()

	users := newFakeUserStore()
	follows := newFakeFollowStore()
	svc := NewFollowService(follows, users, zerolog.Nop())

	leo := users.addUser("leo")
	mia := users.addUser("mia")

	t.Run("follow creates the edge", func(t *testing.T) {
		require.NoError(t, svc.Follow(ctx, leo.ID, "mia"))

		following, err := svc.IsFollowing(ctx, leo.ID, mia.ID)
		require.NoError(t, err)
		assert.True(t, following)
	})

	t.Run("double follow leaves a single edge", func(t *testing.T) {
		require.NoError(t, svc.Follow(ctx, leo.ID, "mia"))
		require.NoError(t, svc.Follow(ctx, leo.ID, "mia"))

		authors, err := svc.FollowedAuthors(ctx, leo.ID)
		require.NoError(t, err)
		assert.Equal(t, []int64{mia.ID}, authors)
	})

	t.Run("self follow is silently ignored", func(t *testing.T) {
		require.NoError(t, svc.Follow(ctx, leo.ID, "leo"))

		following, err := svc.IsFollowing(ctx, leo.ID, leo.ID)
		require.NoError(t, err)
		assert.False(t, following)
	})

	t.Run("unknown author is not found", func(t *testing.T) {
		err := svc.Follow(ctx, leo.ID, "ghost")
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("anonymous user is rejected", func(t *testing.T) {
		err := svc.Follow(ctx, 0, "mia")
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}

func TestFollowServiceUnfollow(t *testing.T) {
	ctx := context.Background()

	users := newFakeUserStore()
	follows := newFakeFollowStore()
	svc := NewFollowService(follows, users, zerolog.Nop())

	leo := users.addUser("leo")
	mia := users.addUser("mia")

	t.Run("unfollow removes the edge", func(t *testing.T) {
		require.NoError(t, svc.Follow(ctx, leo.ID, "mia"))
		require.NoError(t, svc.Unfollow(ctx, leo.ID, "mia"))

		following, err := svc.IsFollowing(ctx, leo.ID, mia.ID)
		require.NoError(t, err)
		assert.False(t, following)
	})

	t.Run("unfollowing a non-followed author is a no-op", func(t *testing.T) {
		require.NoError(t, svc.Unfollow(ctx, leo.ID, "mia"))
	})

	t.Run("anonymous user is rejected", func(t *testing.T) {
		err := svc.Unfollow(ctx, 0, "mia")
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}

func TestFollowServiceIsFollowing(t *testing.T) {
	ctx := context.Background()

	users := newFakeUserStore()
	follows := newFakeFollowStore()
	svc := NewFollowService(follows, users, zerolog.Nop())

	mia := users.addUser("mia")

	t.Run("anonymous viewer follows no one", func(t *testing.T) {
		following, err := svc.IsFollowing(ctx, 0, mia.ID)
		require.NoError(t, err)
		assert.False(t, following)
	})

	t.Run("anonymous viewer cannot list followed authors", func(t *testing.T) {
		_, err := svc.FollowedAuthors(ctx, 0)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}

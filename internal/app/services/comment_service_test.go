package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emre/postova/internal/app/models/dto"
	"github.com/emre/postova/internal/pkg/apperrors"
)

func TestCommentServiceAdd(t *testing.T) {
	ctx := context.Background()

	users := newFakeUserStore()
	posts := newFakePostStore(newFakeFollowStore())
	comments := &fakeCommentStore{}
	svc := NewCommentService(comments, posts, users)

	author := users.addUser("leo")
	commenter := users.addUser("mia")
	post := posts.addPost(author.ID, "a post", nil)

	t.Run("adds a comment with the author attached", func(t *testing.T) {
		resp, err := svc.Add(ctx, commenter.ID, post.ID, &dto.CreateCommentRequest{Text: "well said"})
		require.NoError(t, err)

		assert.Equal(t, "well said", resp.Text)
		assert.Equal(t, "mia", resp.Author.Username)
	})

	t.Run("commenting a missing post is not found", func(t *testing.T) {
		_, err := svc.Add(ctx, commenter.ID, 999, &dto.CreateCommentRequest{Text: "hello?"})
		assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
	})

	t.Run("empty text is rejected", func(t *testing.T) {
		_, err := svc.Add(ctx, commenter.ID, post.ID, &dto.CreateCommentRequest{Text: "  "})
		assert.ErrorIs(t, err, apperrors.ErrEmptyText)
	})

	t.Run("anonymous commenter is rejected", func(t *testing.T) {
		_, err := svc.Add(ctx, 0, post.ID, &dto.CreateCommentRequest{Text: "hi"})
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}

func TestCommentServiceListByPost(t *testing.T) {
	ctx := context.Background()

	users := newFakeUserStore()
	posts := newFakePostStore(newFakeFollowStore())
	comments := &fakeCommentStore{}
	svc := NewCommentService(comments, posts, users)

	author := users.addUser("leo")
	post := posts.addPost(author.ID, "a post", nil)

	t.Run("listing a missing post is not found", func(t *testing.T) {
		_, err := svc.ListByPost(ctx, 999)
		assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
	})

	t.Run("comments come back in insertion order", func(t *testing.T) {
		_, err := svc.Add(ctx, author.ID, post.ID, &dto.CreateCommentRequest{Text: "first"})
		require.NoError(t, err)
		_, err = svc.Add(ctx, author.ID, post.ID, &dto.CreateCommentRequest{Text: "second"})
		require.NoError(t, err)

		list, err := svc.ListByPost(ctx, post.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "first", list[0].Text)
		assert.Equal(t, "second", list[1].Text)
	})
}

package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emre/postova/internal/app/models"
	"github.com/emre/postova/internal/app/models/dto"
	"github.com/emre/postova/internal/pkg/apperrors"
)

func newPostFixture() (*fakeUserStore, *fakeGroupStore, *fakePostStore, *fakeCommentStore, PostService) {
	users := newFakeUserStore()
	groups := newFakeGroupStore()
	follows := newFakeFollowStore()
	posts := newFakePostStore(follows)
	comments := &fakeCommentStore{}
	svc := NewPostService(posts, groups, comments, &fakeFileStore{}, nil, nil, zerolog.Nop())
	return users, groups, posts, comments, svc
}

func TestPostServiceCreate(t *testing.T) {
	ctx := context.Background()

	users, groups, posts, _, svc := newPostFixture()
	author := users.addUser("leo")
	nature := groups.addGroup("Nature", "nature")

	t.Run("creates a post with publication date", func(t *testing.T) {
		resp, err := svc.Create(ctx, author.ID, &dto.CreatePostRequest{Text: "hello"}, nil)
		require.NoError(t, err)

		assert.NotZero(t, resp.ID)
		assert.Equal(t, "hello", resp.Text)
		assert.False(t, resp.PubDate.IsZero())
	})

	t.Run("group assignment requires an existing group", func(t *testing.T) {
		missing := int64(999)
		_, err := svc.Create(ctx, author.ID, &dto.CreatePostRequest{Text: "hi", GroupID: &missing}, nil)
		assert.ErrorIs(t, err, apperrors.ErrGroupNotFound)

		resp, err := svc.Create(ctx, author.ID, &dto.CreatePostRequest{Text: "hi", GroupID: &nature.ID}, nil)
		require.NoError(t, err)

		stored, err := posts.GetByID(ctx, resp.ID)
		require.NoError(t, err)
		require.NotNil(t, stored.GroupID)
		assert.Equal(t, nature.ID, *stored.GroupID)
	})

	t.Run("empty and whitespace text are rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, author.ID, &dto.CreatePostRequest{Text: ""}, nil)
		assert.ErrorIs(t, err, apperrors.ErrEmptyText)

		_, err = svc.Create(ctx, author.ID, &dto.CreatePostRequest{Text: "   \n\t"}, nil)
		assert.ErrorIs(t, err, apperrors.ErrEmptyText)
	})

	t.Run("anonymous author is rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, 0, &dto.CreatePostRequest{Text: "hello"}, nil)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}

func TestPostServiceUpdate(t *testing.T) {
	ctx := context.Background()

	users, _, posts, _, svc := newPostFixture()
	author := users.addUser("leo")
	other := users.addUser("mia")
	post := posts.addPost(author.ID, "original", nil)

	t.Run("only the author may edit", func(t *testing.T) {
		_, err := svc.Update(ctx, other.ID, post.ID, &dto.UpdatePostRequest{Text: "hijacked"}, nil)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("edit changes text but never the publication date", func(t *testing.T) {
		resp, err := svc.Update(ctx, author.ID, post.ID, &dto.UpdatePostRequest{Text: "edited"}, nil)
		require.NoError(t, err)

		assert.Equal(t, "edited", resp.Text)
		assert.True(t, resp.PubDate.Equal(post.PubDate))
	})

	t.Run("unknown post is not found", func(t *testing.T) {
		_, err := svc.Update(ctx, author.ID, 999, &dto.UpdatePostRequest{Text: "x"}, nil)
		assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
	})

	t.Run("empty replacement text is rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, author.ID, post.ID, &dto.UpdatePostRequest{Text: " "}, nil)
		assert.ErrorIs(t, err, apperrors.ErrEmptyText)
	})
}

func TestPostServiceDelete(t *testing.T) {
	ctx := context.Background()

	users, _, posts, _, svc := newPostFixture()
	author := users.addUser("leo")
	other := users.addUser("mia")
	post := posts.addPost(author.ID, "to delete", nil)

	t.Run("only the author may delete", func(t *testing.T) {
		err := svc.Delete(ctx, other.ID, post.ID)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("author delete removes the post", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, author.ID, post.ID))

		_, err := svc.Get(ctx, post.ID)
		assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
	})
}

func TestPostServiceGet(t *testing.T) {
	ctx := context.Background()

	users, _, posts, comments, svc := newPostFixture()
	author := users.addUser("leo")
	posts.addPost(author.ID, "first", nil)
	post := posts.addPost(author.ID, "second", nil)

	require.NoError(t, comments.Create(ctx, &models.Comment{PostID: post.ID, AuthorID: author.ID, Text: "nice"}))

	t.Run("detail carries comments and author post count", func(t *testing.T) {
		detail, err := svc.Get(ctx, post.ID)
		require.NoError(t, err)

		assert.Equal(t, "second", detail.Post.Text)
		require.Len(t, detail.Comments, 1)
		assert.Equal(t, "nice", detail.Comments[0].Text)
		assert.Equal(t, int64(2), detail.PostCount)
	})

	t.Run("unknown post is not found", func(t *testing.T) {
		_, err := svc.Get(ctx, 999)
		assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
	})
}

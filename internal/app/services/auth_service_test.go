package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emre/postova/internal/app/models/dto"
	"github.com/emre/postova/internal/pkg/apperrors"
	"github.com/emre/postova/internal/pkg/auth"
)

func newAuthFixture() (*fakeUserStore, *fakeTokenStore, AuthService) {
	users := newFakeUserStore()
	tokens := newFakeTokenStore()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "postova-test",
	})
	return users, tokens, NewAuthService(users, tokens, jwtService, zerolog.Nop())
}

func TestAuthServiceRegister(t *testing.T) {
	ctx := context.Background()

	_, _, svc := newAuthFixture()

	t.Run("register issues a token pair", func(t *testing.T) {
		resp, err := svc.Register(ctx, &dto.RegisterRequest{
			Username: "leo",
			Email:    "leo@example.com",
			Password: "sup3r-secret",
		})
		require.NoError(t, err)

		assert.Equal(t, "leo", resp.User.Username)
		assert.NotEmpty(t, resp.Token.AccessToken)
		assert.NotEmpty(t, resp.Token.RefreshToken)
		assert.Equal(t, "Bearer", resp.Token.TokenType)
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		_, err := svc.Register(ctx, &dto.RegisterRequest{
			Username: "leo",
			Email:    "other@example.com",
			Password: "sup3r-secret",
		})
		assert.ErrorIs(t, err, apperrors.ErrUsernameAlreadyExists)
	})
}

func TestAuthServiceLogin(t *testing.T) {
	ctx := context.Background()

	_, _, svc := newAuthFixture()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "leo",
		Email:    "leo@example.com",
		Password: "sup3r-secret",
	})
	require.NoError(t, err)

	t.Run("valid credentials log in", func(t *testing.T) {
		resp, err := svc.Login(ctx, &dto.LoginRequest{Username: "leo", Password: "sup3r-secret"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token.AccessToken)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{Username: "leo", Password: "wrong"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown user gets the same rejection", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{Username: "ghost", Password: "whatever"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestAuthServiceRefresh(t *testing.T) {
	ctx := context.Background()

	_, tokens, svc := newAuthFixture()

	registered, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "leo",
		Email:    "leo@example.com",
		Password: "sup3r-secret",
	})
	require.NoError(t, err)

	t.Run("refresh rotates the token", func(t *testing.T) {
		resp, err := svc.Refresh(ctx, &dto.RefreshTokenRequest{RefreshToken: registered.Token.RefreshToken})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)

		// The presented token is single-use
		_, err = tokens.Find(ctx, registered.Token.RefreshToken)
		assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
	})

	t.Run("unknown refresh token is rejected", func(t *testing.T) {
		_, err := svc.Refresh(ctx, &dto.RefreshTokenRequest{RefreshToken: "not-a-token"})
		assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
	})
}

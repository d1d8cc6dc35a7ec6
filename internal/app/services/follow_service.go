package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/emre/postova/internal/pkg/apperrors"
	"github.com/emre/postova/internal/pkg/dberrors"
)

// FollowService maintains the directed follow graph between users.
type FollowService interface {
	// Follow creates the edge user->author unless it already exists or the
	// user is the author; both cases are silent no-ops.
	Follow(ctx context.Context, userID int64, username string) error
	// Unfollow deletes the edge if present; no-op otherwise.
	Unfollow(ctx context.Context, userID int64, username string) error
	// IsFollowing reports whether viewer follows author; always false for an
	// anonymous viewer.
	IsFollowing(ctx context.Context, viewerID, authorID int64) (bool, error)
	// FollowedAuthors returns the IDs of the authors the user follows.
	FollowedAuthors(ctx context.Context, userID int64) ([]int64, error)
}

type followServiceImpl struct {
	followRepo FollowStore
	userRepo   UserReader
	logger     zerolog.Logger
}

// NewFollowService creates a new FollowService
func NewFollowService(followRepo FollowStore, userRepo UserReader, logger zerolog.Logger) FollowService {
	return &followServiceImpl{
		followRepo: followRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (s *followServiceImpl) Follow(ctx context.Context, userID int64, username string) error {
	if userID <= 0 {
		return apperrors.ErrUnauthorized
	}

	author, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}

	// Self-follow is silently ignored
	if author.ID == userID {
		return nil
	}

	created, err := s.followRepo.Create(ctx, userID, author.ID)
	if err != nil {
		// A concurrent insert that beat us to the unique constraint is the
		// same outcome as the edge already existing
		if dberrors.IsUniqueViolation(err) {
			return nil
		}
		return err
	}

	if created {
		s.logger.Debug().
			Int64("userID", userID).
			Int64("authorID", author.ID).
			Msg("Follow edge created")
	}

	return nil
}

func (s *followServiceImpl) Unfollow(ctx context.Context, userID int64, username string) error {
	if userID <= 0 {
		return apperrors.ErrUnauthorized
	}

	author, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}

	// Deleting an absent edge is not an error
	_, err = s.followRepo.Delete(ctx, userID, author.ID)
	return err
}

func (s *followServiceImpl) IsFollowing(ctx context.Context, viewerID, authorID int64) (bool, error) {
	if viewerID <= 0 {
		return false, nil
	}
	return s.followRepo.Exists(ctx, viewerID, authorID)
}

func (s *followServiceImpl) FollowedAuthors(ctx context.Context, userID int64) ([]int64, error) {
	if userID <= 0 {
		return nil, apperrors.ErrUnauthorized
	}
	return s.followRepo.ListAuthorIDs(ctx, userID)
}

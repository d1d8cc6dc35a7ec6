package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/emre/postova/internal/app/models/dto"
	"github.com/emre/postova/internal/pkg/apperrors"
	"github.com/emre/postova/internal/pkg/pagination"
)

// FeedService builds the paginated feeds. All operations are read-only.
type FeedService interface {
	// ListAll returns one page of the global feed.
	ListAll(ctx context.Context, page int) (*dto.FeedResponse, error)
	// ListByGroup returns one page of a group's posts; ErrGroupNotFound when
	// no group has the slug.
	ListByGroup(ctx context.Context, slug string, page int) (*dto.GroupFeedResponse, error)
	// ListByAuthor returns an author's profile with one page of their posts
	// and their total post count; ErrUserNotFound for an unknown username.
	// viewerID 0 means anonymous, in which case Following is always false.
	ListByAuthor(ctx context.Context, username string, viewerID int64, page int) (*dto.ProfileResponse, error)
	// ListFollowed returns one page of posts by authors the viewer follows;
	// ErrUnauthorized for an anonymous viewer.
	ListFollowed(ctx context.Context, viewerID int64, page int) (*dto.FeedResponse, error)
}

type feedServiceImpl struct {
	postRepo   PostReader
	groupRepo  GroupStore
	userRepo   UserReader
	followRepo FollowStore
	pageSize   int
	logger     zerolog.Logger
}

// NewFeedService creates a new FeedService. pageSize is the process-wide
// items-per-page setting.
func NewFeedService(
	postRepo PostReader,
	groupRepo GroupStore,
	userRepo UserReader,
	followRepo FollowStore,
	pageSize int,
	logger zerolog.Logger,
) FeedService {
	if pageSize <= 0 {
		pageSize = pagination.DefaultPageSize
	}
	return &feedServiceImpl{
		postRepo:   postRepo,
		groupRepo:  groupRepo,
		userRepo:   userRepo,
		followRepo: followRepo,
		pageSize:   pageSize,
		logger:     logger,
	}
}

func (s *feedServiceImpl) ListAll(ctx context.Context, page int) (*dto.FeedResponse, error) {
	total, err := s.postRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	pg := pagination.Paginate(total, page, s.pageSize)
	posts, err := s.postRepo.ListAll(ctx, pg.Size, pg.Offset())
	if err != nil {
		return nil, err
	}

	return &dto.FeedResponse{
		Posts:      dto.FromPosts(posts),
		Pagination: pg,
	}, nil
}

func (s *feedServiceImpl) ListByGroup(ctx context.Context, slug string, page int) (*dto.GroupFeedResponse, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	total, err := s.postRepo.CountByGroupID(ctx, group.ID)
	if err != nil {
		return nil, err
	}

	pg := pagination.Paginate(total, page, s.pageSize)
	posts, err := s.postRepo.ListByGroupID(ctx, group.ID, pg.Size, pg.Offset())
	if err != nil {
		return nil, err
	}

	return &dto.GroupFeedResponse{
		Group:      dto.FromGroup(group),
		Posts:      dto.FromPosts(posts),
		Pagination: pg,
	}, nil
}

func (s *feedServiceImpl) ListByAuthor(ctx context.Context, username string, viewerID int64, page int) (*dto.ProfileResponse, error) {
	author, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	total, err := s.postRepo.CountByAuthorID(ctx, author.ID)
	if err != nil {
		return nil, err
	}

	pg := pagination.Paginate(total, page, s.pageSize)
	posts, err := s.postRepo.ListByAuthorID(ctx, author.ID, pg.Size, pg.Offset())
	if err != nil {
		return nil, err
	}

	// Anonymous viewers never follow anyone
	following := false
	if viewerID > 0 {
		following, err = s.followRepo.Exists(ctx, viewerID, author.ID)
		if err != nil {
			return nil, err
		}
	}

	return &dto.ProfileResponse{
		Author:     dto.FromUser(author),
		PostCount:  total,
		Following:  following,
		Posts:      dto.FromPosts(posts),
		Pagination: pg,
	}, nil
}

func (s *feedServiceImpl) ListFollowed(ctx context.Context, viewerID int64, page int) (*dto.FeedResponse, error) {
	if viewerID <= 0 {
		return nil, apperrors.ErrUnauthorized
	}

	total, err := s.postRepo.CountFollowed(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	pg := pagination.Paginate(total, page, s.pageSize)
	posts, err := s.postRepo.ListFollowed(ctx, viewerID, pg.Size, pg.Offset())
	if err != nil {
		return nil, err
	}

	return &dto.FeedResponse{
		Posts:      dto.FromPosts(posts),
		Pagination: pg,
	}, nil
}

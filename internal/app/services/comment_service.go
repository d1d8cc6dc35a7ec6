package services

import (
	"context"
	"strings"

	"github.com/emre/postova/internal/app/models"
	"github.com/emre/postova/internal/app/models/dto"
	"github.com/emre/postova/internal/pkg/apperrors"
)

// CommentService handles commenting on posts.
type CommentService interface {
	// Add creates a comment on a post; the actor must be authenticated and
	// the text non-empty.
	Add(ctx context.Context, actorID, postID int64, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	// ListByPost returns all comments of a post, oldest first.
	ListByPost(ctx context.Context, postID int64) ([]dto.CommentResponse, error)
}

type commentServiceImpl struct {
	commentRepo CommentStore
	postRepo    PostStore
	userRepo    UserReader
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo CommentStore, postRepo PostStore, userRepo UserReader) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

func (s *commentServiceImpl) Add(ctx context.Context, actorID, postID int64, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if actorID <= 0 {
		return nil, apperrors.ErrUnauthorized
	}
	if strings.TrimSpace(req.Text) == "" {
		return nil, apperrors.ErrEmptyText
	}

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:   postID,
		AuthorID: actorID,
		Text:     req.Text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	if author, err := s.userRepo.FindByID(ctx, actorID); err == nil {
		comment.Author = author
	}

	resp := dto.FromComment(comment)
	return &resp, nil
}

func (s *commentServiceImpl) ListByPost(ctx context.Context, postID int64) ([]dto.CommentResponse, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}

	return dto.FromComments(comments), nil
}

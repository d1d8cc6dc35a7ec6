package services

import (
	"context"
	"mime/multipart"
	"strings"

	"github.com/rs/zerolog"

	"github.com/emre/postova/internal/app/models"
	"github.com/emre/postova/internal/app/models/dto"
	"github.com/emre/postova/internal/pkg/apperrors"
	"github.com/emre/postova/internal/pkg/events"
	"github.com/emre/postova/internal/pkg/filestorage"
)

// PostService handles publishing, reading, editing and deleting posts.
type PostService interface {
	Create(ctx context.Context, authorID int64, req *dto.CreatePostRequest, image *multipart.FileHeader) (*dto.PostResponse, error)
	Get(ctx context.Context, postID int64) (*dto.PostDetailResponse, error)
	Update(ctx context.Context, actorID, postID int64, req *dto.UpdatePostRequest, image *multipart.FileHeader) (*dto.PostResponse, error)
	Delete(ctx context.Context, actorID, postID int64) error
}

type postServiceImpl struct {
	postRepo    PostStore
	groupRepo   GroupStore
	commentRepo CommentStore
	fileRepo    FileStore
	fileStorage *filestorage.LocalStorage
	publisher   *events.Publisher
	logger      zerolog.Logger
}

// NewPostService creates a new PostService
func NewPostService(
	postRepo PostStore,
	groupRepo GroupStore,
	commentRepo CommentStore,
	fileRepo FileStore,
	fileStorage *filestorage.LocalStorage,
	publisher *events.Publisher,
	logger zerolog.Logger,
) PostService {
	return &postServiceImpl{
		postRepo:    postRepo,
		groupRepo:   groupRepo,
		commentRepo: commentRepo,
		fileRepo:    fileRepo,
		fileStorage: fileStorage,
		publisher:   publisher,
		logger:      logger,
	}
}

func (s *postServiceImpl) Create(ctx context.Context, authorID int64, req *dto.CreatePostRequest, image *multipart.FileHeader) (*dto.PostResponse, error) {
	if authorID <= 0 {
		return nil, apperrors.ErrUnauthorized
	}
	if strings.TrimSpace(req.Text) == "" {
		return nil, apperrors.ErrEmptyText
	}

	if req.GroupID != nil {
		if _, err := s.groupRepo.GetByID(ctx, *req.GroupID); err != nil {
			return nil, err
		}
	}

	imageFileID, err := s.saveImage(ctx, authorID, image)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Text:        req.Text,
		AuthorID:    authorID,
		GroupID:     req.GroupID,
		ImageFileID: imageFileID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	// Reload through the read path so author/group/image come back joined
	created, err := s.postRepo.GetByID(ctx, post.ID)
	if err != nil {
		return nil, err
	}

	if err := s.publisher.PublishPostCreated(ctx, created); err != nil {
		s.logger.Warn().Err(err).Int64("postID", created.ID).Msg("Failed to publish post.created event")
	}

	resp := dto.FromPost(created)
	return &resp, nil
}

func (s *postServiceImpl) Get(ctx context.Context, postID int64) (*dto.PostDetailResponse, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}

	postCount, err := s.postRepo.CountByAuthorID(ctx, post.AuthorID)
	if err != nil {
		return nil, err
	}

	return &dto.PostDetailResponse{
		Post:      dto.FromPost(post),
		Comments:  dto.FromComments(comments),
		PostCount: postCount,
	}, nil
}

func (s *postServiceImpl) Update(ctx context.Context, actorID, postID int64, req *dto.UpdatePostRequest, image *multipart.FileHeader) (*dto.PostResponse, error) {
	if actorID <= 0 {
		return nil, apperrors.ErrUnauthorized
	}
	if strings.TrimSpace(req.Text) == "" {
		return nil, apperrors.ErrEmptyText
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	// Only the author may edit; the publication timestamp never changes
	if post.AuthorID != actorID {
		return nil, apperrors.NewForbiddenError("only the author can edit this post")
	}

	if req.GroupID != nil {
		if _, err := s.groupRepo.GetByID(ctx, *req.GroupID); err != nil {
			return nil, err
		}
	}

	post.Text = req.Text
	post.GroupID = req.GroupID

	if image != nil {
		imageFileID, err := s.saveImage(ctx, actorID, image)
		if err != nil {
			return nil, err
		}
		post.ImageFileID = imageFileID
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	updated, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	resp := dto.FromPost(updated)
	return &resp, nil
}

func (s *postServiceImpl) Delete(ctx context.Context, actorID, postID int64) error {
	if actorID <= 0 {
		return apperrors.ErrUnauthorized
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.AuthorID != actorID {
		return apperrors.NewForbiddenError("only the author can delete this post")
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return err
	}

	if err := s.publisher.PublishPostDeleted(ctx, postID); err != nil {
		s.logger.Warn().Err(err).Int64("postID", postID).Msg("Failed to publish post.deleted event")
	}

	return nil
}

// saveImage stores the uploaded image and records it, returning the file ID.
// A nil header means no image was attached.
func (s *postServiceImpl) saveImage(ctx context.Context, uploaderID int64, header *multipart.FileHeader) (*int64, error) {
	if header == nil {
		return nil, nil
	}

	url, err := s.fileStorage.SaveFileWithPath(header, "posts")
	if err != nil {
		return nil, err
	}

	file := &models.File{
		FileName:   header.Filename,
		FilePath:   url,
		FileURL:    url,
		FileSize:   header.Size,
		FileType:   header.Header.Get("Content-Type"),
		UploadedBy: uploaderID,
	}

	id, err := s.fileRepo.Create(ctx, file)
	if err != nil {
		return nil, err
	}

	return &id, nil
}

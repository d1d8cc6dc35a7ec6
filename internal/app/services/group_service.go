package services

import (
	"context"

	"github.com/emre/postova/internal/app/models"
	"github.com/emre/postova/internal/app/models/dto"
	"github.com/emre/postova/internal/pkg/apperrors"
	"github.com/emre/postova/internal/pkg/dberrors"
)

// GroupService handles group administration.
type GroupService interface {
	Create(ctx context.Context, req *dto.CreateGroupRequest) (*dto.GroupResponse, error)
	GetBySlug(ctx context.Context, slug string) (*dto.GroupResponse, error)
	GetAll(ctx context.Context) ([]dto.GroupResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateGroupRequest) (*dto.GroupResponse, error)
	Delete(ctx context.Context, id int64) error
}

type groupServiceImpl struct {
	groupRepo GroupStore
}

// NewGroupService creates a new GroupService
func NewGroupService(groupRepo GroupStore) GroupService {
	return &groupServiceImpl{groupRepo: groupRepo}
}

func (s *groupServiceImpl) Create(ctx context.Context, req *dto.CreateGroupRequest) (*dto.GroupResponse, error) {
	group := &models.Group{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
	}

	if err := s.groupRepo.Create(ctx, group); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrGroupAlreadyExists
		}
		return nil, err
	}

	resp := dto.FromGroup(group)
	return &resp, nil
}

func (s *groupServiceImpl) GetBySlug(ctx context.Context, slug string) (*dto.GroupResponse, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	resp := dto.FromGroup(group)
	return &resp, nil
}

func (s *groupServiceImpl) GetAll(ctx context.Context) ([]dto.GroupResponse, error) {
	groups, err := s.groupRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.GroupResponse, 0, len(groups))
	for i := range groups {
		responses = append(responses, dto.FromGroup(&groups[i]))
	}
	return responses, nil
}

func (s *groupServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateGroupRequest) (*dto.GroupResponse, error) {
	group, err := s.groupRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	group.Title = req.Title
	group.Description = req.Description

	if err := s.groupRepo.Update(ctx, group); err != nil {
		return nil, err
	}

	resp := dto.FromGroup(group)
	return &resp, nil
}

func (s *groupServiceImpl) Delete(ctx context.Context, id int64) error {
	// Posts survive group deletion; the FK rule clears their group reference
	return s.groupRepo.Delete(ctx, id)
}

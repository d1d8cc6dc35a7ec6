package dto

import (
	"github.com/emre/postova/internal/app/models"
	"github.com/emre/postova/internal/pkg/pagination"
)

// CreateGroupRequest represents a request to create a group
type CreateGroupRequest struct {
	Title       string `json:"title" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
}

// UpdateGroupRequest represents a request to update a group
type UpdateGroupRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// GroupResponse represents a group in API responses
type GroupResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// GroupFeedResponse is the group header plus one page of its posts
type GroupFeedResponse struct {
	Group      GroupResponse   `json:"group"`
	Posts      []PostResponse  `json:"posts"`
	Pagination pagination.Page `json:"pagination"`
}

// FromGroup converts a models.Group to a GroupResponse
func FromGroup(group *models.Group) GroupResponse {
	if group == nil {
		return GroupResponse{}
	}
	return GroupResponse{
		ID:          group.ID,
		Title:       group.Title,
		Slug:        group.Slug,
		Description: group.Description,
	}
}

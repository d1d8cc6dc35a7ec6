package dto

import (
	"time"

	"github.com/emre/postova/internal/app/models"
	"github.com/emre/postova/internal/pkg/pagination"
)

// CreatePostRequest represents the multipart form for publishing a post
type CreatePostRequest struct {
	Text    string `form:"text" binding:"required"`
	GroupID *int64 `form:"groupId"`
}

// UpdatePostRequest represents the multipart form for editing a post
type UpdatePostRequest struct {
	Text    string `form:"text" binding:"required"`
	GroupID *int64 `form:"groupId"`
}

// PostResponse represents a post in API responses
type PostResponse struct {
	ID       int64              `json:"id"`
	Text     string             `json:"text"`
	PubDate  time.Time          `json:"pubDate"`
	Author   UserBasicResponse  `json:"author"`
	Group    *GroupResponse     `json:"group,omitempty"`
	ImageURL *string            `json:"imageUrl,omitempty"`
}

// PostDetailResponse is a post together with its comments and the author's
// total post count
type PostDetailResponse struct {
	Post      PostResponse      `json:"post"`
	Comments  []CommentResponse `json:"comments"`
	PostCount int64             `json:"postCount"`
}

// FeedResponse represents one page of a feed
type FeedResponse struct {
	Posts      []PostResponse  `json:"posts"`
	Pagination pagination.Page `json:"pagination"`
}

// FromPost converts a models.Post to a PostResponse
func FromPost(post *models.Post) PostResponse {
	if post == nil {
		return PostResponse{}
	}

	resp := PostResponse{
		ID:      post.ID,
		Text:    post.Text,
		PubDate: post.PubDate,
	}

	if post.Author != nil {
		resp.Author = FromUser(post.Author)
	} else {
		resp.Author = UserBasicResponse{ID: post.AuthorID}
	}

	if post.Group != nil {
		group := FromGroup(post.Group)
		resp.Group = &group
	}

	if post.Image != nil {
		resp.ImageURL = &post.Image.FileURL
	}

	return resp
}

// FromPosts converts a post slice, always yielding a non-nil slice
func FromPosts(posts []models.Post) []PostResponse {
	responses := make([]PostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, FromPost(&posts[i]))
	}
	return responses
}

package dto

import (
	"time"

	"github.com/emre/postova/internal/app/models"
)

// CreateCommentRequest represents a request to comment on a post
type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// CommentResponse represents a comment in API responses
type CommentResponse struct {
	ID      int64             `json:"id"`
	PostID  int64             `json:"postId"`
	Author  UserBasicResponse `json:"author"`
	Text    string            `json:"text"`
	Created time.Time         `json:"created"`
}

// FromComment converts a models.Comment to a CommentResponse
func FromComment(comment *models.Comment) CommentResponse {
	if comment == nil {
		return CommentResponse{}
	}

	resp := CommentResponse{
		ID:      comment.ID,
		PostID:  comment.PostID,
		Text:    comment.Text,
		Created: comment.Created,
	}

	if comment.Author != nil {
		resp.Author = FromUser(comment.Author)
	} else {
		resp.Author = UserBasicResponse{ID: comment.AuthorID}
	}

	return resp
}

// FromComments converts a comment slice, always yielding a non-nil slice
func FromComments(comments []models.Comment) []CommentResponse {
	responses := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, FromComment(&comments[i]))
	}
	return responses
}

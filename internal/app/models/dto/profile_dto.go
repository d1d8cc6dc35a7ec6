package dto

import (
	"github.com/emre/postova/internal/app/models"
	"github.com/emre/postova/internal/pkg/pagination"
)

// UserBasicResponse represents minimal user information embedded in other
// responses
type UserBasicResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// ProfileResponse is an author's profile header plus one page of their posts
type ProfileResponse struct {
	Author     UserBasicResponse `json:"author"`
	PostCount  int64             `json:"postCount"`
	Following  bool              `json:"following"`
	Posts      []PostResponse    `json:"posts"`
	Pagination pagination.Page   `json:"pagination"`
}

// FromUser converts a models.User to a UserBasicResponse
func FromUser(user *models.User) UserBasicResponse {
	if user == nil {
		return UserBasicResponse{}
	}
	return UserBasicResponse{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

package models

import "time"

// Comment represents a comment on a post. Comments are owned by their post
// and disappear with it.
type Comment struct {
	ID       int64     `json:"id" db:"id"`
	PostID   int64     `json:"postId" db:"post_id"`
	AuthorID int64     `json:"authorId" db:"author_id"`
	Text     string    `json:"text" db:"text"`
	Created  time.Time `json:"created" db:"created"`

	// Related entities
	Author *User `json:"author,omitempty"`
}

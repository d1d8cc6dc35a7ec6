package models

import "time"

// Follow is a directed edge from a follower to a followed author. The
// (user, author) pair is unique and a user never follows themselves.
type Follow struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	AuthorID  int64     `json:"authorId" db:"author_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

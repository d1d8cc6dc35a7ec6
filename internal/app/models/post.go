package models

import "time"

// Post represents a published entry. PubDate is set once at creation and
// never changes; text, group and image are mutable by the author only.
type Post struct {
	ID          int64     `json:"id" db:"id"`
	Text        string    `json:"text" db:"text"`
	PubDate     time.Time `json:"pubDate" db:"pub_date"`
	AuthorID    int64     `json:"authorId" db:"author_id"`
	GroupID     *int64    `json:"groupId,omitempty" db:"group_id"`
	ImageFileID *int64    `json:"imageFileId,omitempty" db:"image_file_id"`

	// Related entities
	Author *User  `json:"author,omitempty"`
	Group  *Group `json:"group,omitempty"`
	Image  *File  `json:"image,omitempty"`
}

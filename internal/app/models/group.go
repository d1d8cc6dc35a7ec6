package models

// Group represents a topic posts can be filed under. Groups reference posts
// but never own them; deleting a group leaves its posts without a group.
type Group struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Slug        string `json:"slug" db:"slug"`
	Description string `json:"description" db:"description"`
}

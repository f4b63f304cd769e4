package models

import "time"

// Note is a private reading note attached to a book by a user. Notes are
// listed newest-first, filtered by book and author.
type Note struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id,omitempty"`
	BookID    int64     `json:"book_id,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// NotesFilter selects which notes GET /notes returns. BookID and UserID are
// both required; Page is 1-based.
type NotesFilter struct {
	BookID int64
	UserID int64
	Page   int
}

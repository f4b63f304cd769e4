package models

import "time"

// Review is a user's rated review of a book. Reviews are immutable after
// creation and are listed newest-first joined with the reviewer and the book.
type Review struct {
	ID     int64 `json:"id"`
	BookID int64 `json:"book_id"`
	UserID int64 `json:"user_id"`

	// Username, Title, Author and CoverURL are populated by the joined
	// listing query; they are not columns of the reviews table.
	Username string `json:"username,omitempty"`
	Title    string `json:"title,omitempty"`
	Author   string `json:"author,omitempty"`
	CoverURL string `json:"cover_url,omitempty"`

	Review    string    `json:"review"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Review model.
func (r Review) TableName() string {
	return "reviews"
}

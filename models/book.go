package models

// Book represents a reviewed title. Books are created implicitly on the
// first contribution mentioning the title; the title is unique, and a second
// contributor of the same title reuses the existing row.
type Book struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	CoverURL string `json:"cover_url"`
	Author   string `json:"author"`
}

// TableName returns the name of the database table
// associated with the Book model.
func (b Book) TableName() string {
	return "books"
}

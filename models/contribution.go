package models

// Contribution is the request payload of POST /add/. It carries the book
// being written about plus an optional review and an optional note; at least
// one of Review and Note must be non-empty.
type Contribution struct {
	// UserID is the authenticated contributor. Populated from the session,
	// never from the request body.
	UserID int64 `json:"-"`

	Title    string `json:"title"`
	CoverURL string `json:"cover_url"`
	Author   string `json:"author"`

	// Review is the review text; empty means no review is created.
	Review string `json:"review"`

	// Rating accompanies the review. Ignored when Review is empty.
	Rating int `json:"rating"`

	// Note is the private note text; empty means no note is created.
	Note string `json:"note"`
}

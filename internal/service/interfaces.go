package service

import (
	"context"

	"github.com/shelfnotes/shelfnotes-server/models"
)

// AuthService handles account registration and credential verification.
type AuthService interface {
	// Register creates a new account from the submitted username, email
	// and plain-text password, hashing the password before storage.
	// Returns ErrInvalidDataProvided when a required field is empty and
	// store.ErrUserAlreadyExists when the username or email is taken.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login verifies the submitted credential (username or email) and
	// password against the stored hash. Returns store.ErrNoUserWasFound
	// when no account matches and ErrWrongPassword on hash mismatch.
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)

	// UserByID resolves a session user id back to the full user record,
	// failing with store.ErrNoUserWasFound when the account vanished.
	UserByID(ctx context.Context, id int64) (models.User, error)
}

// LibraryService serves the review feed, per-book notes, and contributions.
type LibraryService interface {
	// ListReviews returns one page of the public review feed, newest
	// first. Page numbers are 1-based; values below 1 fall back to 1.
	ListReviews(ctx context.Context, page int) ([]models.Review, error)

	// ListNotes returns one page of a user's notes on one book, newest
	// first. Returns ErrInvalidDataProvided when the book or user filter
	// is missing.
	ListNotes(ctx context.Context, filter models.NotesFilter) ([]models.Note, error)

	// AddContribution upserts the book by title and creates the review
	// and/or note it carries. Returns ErrNothingToAdd when both texts are
	// empty and ErrInvalidDataProvided when the title is missing.
	AddContribution(ctx context.Context, contribution models.Contribution) error
}

// AppInfoService exposes application metadata such as the running version.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

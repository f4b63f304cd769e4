package store

import (
	"context"

	"github.com/shelfnotes/shelfnotes-server/models"
)

// UserRepository persists and retrieves user accounts.
type UserRepository interface {
	// CreateUser inserts a new user and returns the persisted record with
	// server-assigned fields. Returns ErrUserAlreadyExists when the
	// username or email uniqueness constraint is violated.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsernameOrEmail looks a user up by the single credential
	// string submitted at login, matching either column. Returns
	// ErrNoUserWasFound when no row matches.
	FindUserByUsernameOrEmail(ctx context.Context, credential string) (models.User, error)

	// FindUserByID resolves a session user id back to the full record.
	// Returns ErrNoUserWasFound when the id no longer resolves.
	FindUserByID(ctx context.Context, id int64) (models.User, error)
}

// BookRepository persists books with upsert-or-fetch semantics keyed on title.
type BookRepository interface {
	// UpsertBook inserts the book unless its title already exists, in
	// which case the pre-existing row is returned instead. The operation
	// is atomic at the database level.
	UpsertBook(ctx context.Context, book models.Book) (models.Book, error)
}

// ReviewRepository persists reviews and serves the public review listing.
type ReviewRepository interface {
	CreateReview(ctx context.Context, review models.Review) (models.Review, error)

	// ListReviews returns reviews joined with their book and reviewer,
	// newest first, windowed by limit/offset.
	ListReviews(ctx context.Context, limit, offset uint64) ([]models.Review, error)
}

// NoteRepository persists notes and serves the per-book, per-user listing.
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// ListNotes returns the notes of one user on one book, newest first,
	// windowed by limit/offset.
	ListNotes(ctx context.Context, bookID, userID int64, limit, offset uint64) ([]models.Note, error)
}

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same username or email already
	// exists in the database.
	ErrUserAlreadyExists = errors.New("username or email already exists")

	// ErrNoUserWasFound is returned when a query expected to match exactly
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoBookWasFound is returned when the upsert-or-fetch on books
	// produces no row at all, which indicates a broken invariant: either
	// the insert or the fallback select must return the book.
	ErrNoBookWasFound = errors.New("no book was found")

	// ErrReferencedRowMissing is returned when an INSERT of a review or
	// note fails its foreign-key check, i.e. the referenced book or user
	// row no longer exists.
	ErrReferencedRowMissing = errors.New("referenced book or user does not exist")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan listing rows")
)

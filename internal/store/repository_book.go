package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shelfnotes/shelfnotes-server/internal/logger"
	"github.com/shelfnotes/shelfnotes-server/models"
)

// bookRepository is the PostgreSQL-backed implementation of [BookRepository].
type bookRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBookRepository constructs a [BookRepository] backed by the provided
// database connection and logger.
func NewBookRepository(db *DB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating book repository")
	return &bookRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertBook inserts the book unless its title already exists, in which case
// the pre-existing row is returned instead. The [upsertBook] CTE makes the
// insert-or-fetch a single atomic statement, so two concurrent contributors
// of the same title always converge on one book row.
//
// Error handling:
//   - Driver-level error → wrapped as "unexpected DB error".
//   - No row at all ([sql.ErrNoRows] from the scan) → [ErrNoBookWasFound];
//     the query contract guarantees one row, so this signals a broken
//     invariant rather than a user mistake.
func (r *bookRepository) UpsertBook(ctx context.Context, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, upsertBook, book.Title, book.CoverURL, book.Author)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*bookRepository.UpsertBook").Msg("error: row is nil")
		return models.Book{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var savedBook models.Book
	if err := row.Scan(&savedBook.ID, &savedBook.Title, &savedBook.CoverURL, &savedBook.Author); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Book{}, ErrNoBookWasFound
		}
		log.Err(err).Str("func", "*bookRepository.UpsertBook").Msg("error: scanning error")
		return models.Book{}, err
	}

	return savedBook, nil
}

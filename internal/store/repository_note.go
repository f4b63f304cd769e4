package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/shelfnotes/shelfnotes-server/internal/logger"
	"github.com/shelfnotes/shelfnotes-server/models"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

// CreateNote persists a note row and returns it with server-assigned fields
// (ID, CreatedAt).
//
// Error handling mirrors [reviewRepository.CreateReview]: foreign-key
// violations map to [ErrReferencedRowMissing], anything else is wrapped.
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createNote, note.UserID, note.BookID, note.Content)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Note{}, ErrReferencedRowMissing
		default:
			return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var savedNote models.Note
	if err := row.Scan(&savedNote.ID, &savedNote.UserID, &savedNote.BookID, &savedNote.Content, &savedNote.CreatedAt); err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Note{}, ErrReferencedRowMissing
		}
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error: scanning error")
		return models.Note{}, err
	}

	return savedNote, nil
}

// ListNotes returns one page of the notes a user left on one book, newest
// first. Only the columns the client renders (id, content, created_at) are
// selected; the filter keys stay out of the payload.
func (r *noteRepository) ListNotes(ctx context.Context, bookID, userID int64, limit, offset uint64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(bookID, userID, limit, offset)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error building listing query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error executing listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, limit)
	for rows.Next() {
		var note models.Note
		if err := rows.Scan(&note.ID, &note.Content, &note.CreatedAt); err != nil {
			log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error scanning listing row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

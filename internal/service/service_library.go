package service

import (
	"context"
	"fmt"

	"github.com/shelfnotes/shelfnotes-server/internal/logger"
	"github.com/shelfnotes/shelfnotes-server/internal/store"
	"github.com/shelfnotes/shelfnotes-server/models"
)

// pageSize is the fixed number of rows returned by every listing page.
const pageSize = 10

// libraryService is the concrete implementation of LibraryService.
// It coordinates books, reviews and notes: listings are plain repository
// reads, while AddContribution composes a book upsert with the creation of
// the texts attached to it.
type libraryService struct {
	bookRepository   store.BookRepository
	reviewRepository store.ReviewRepository
	noteRepository   store.NoteRepository

	logger *logger.Logger
}

// NewLibraryService constructs a new LibraryService wired to the given
// repositories.
func NewLibraryService(
	bookRepository store.BookRepository,
	reviewRepository store.ReviewRepository,
	noteRepository store.NoteRepository,
	logger *logger.Logger,
) LibraryService {
	return &libraryService{
		bookRepository:   bookRepository,
		reviewRepository: reviewRepository,
		noteRepository:   noteRepository,
		logger:           logger,
	}
}

// ListReviews returns one page of the public review feed, newest first.
// Page numbers below 1 are treated as page 1. A page past the end of the
// feed returns an empty slice, not an error.
func (l *libraryService) ListReviews(ctx context.Context, page int) ([]models.Review, error) {
	log := logger.FromContext(ctx)

	limit, offset := pageWindow(page)
	reviews, err := l.reviewRepository.ListReviews(ctx, limit, offset)
	if err != nil {
		log.Err(err).Int("page", page).Msg("review listing failed")
		return nil, fmt.Errorf("review listing failed: %w", err)
	}

	return reviews, nil
}

// ListNotes returns one page of a user's notes on one book, newest first.
//
// Both filter.BookID and filter.UserID are required; a missing value yields
// ErrInvalidDataProvided rather than an unscoped query.
func (l *libraryService) ListNotes(ctx context.Context, filter models.NotesFilter) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	if filter.BookID == 0 || filter.UserID == 0 {
		log.Error().
			Int64("book_id", filter.BookID).
			Int64("user_id", filter.UserID).
			Msg("invalid notes filter provided")
		return nil, ErrInvalidDataProvided
	}

	limit, offset := pageWindow(filter.Page)
	notes, err := l.noteRepository.ListNotes(ctx, filter.BookID, filter.UserID, limit, offset)
	if err != nil {
		log.Err(err).Int64("book_id", filter.BookID).Int64("user_id", filter.UserID).Msg("note listing failed")
		return nil, fmt.Errorf("note listing failed: %w", err)
	}

	return notes, nil
}

// AddContribution records what a user has to say about a book.
//
// The book is upserted by title first, so contributing to a title somebody
// else already added attaches to the existing row. The review and the note
// are then created independently; either may be absent, but not both.
//
// Returns nil on success or:
//   - ErrInvalidDataProvided if the title is empty or the contributor is unset.
//   - ErrNothingToAdd if both Review and Note are empty.
//   - A wrapped storage error if any of the writes fails.
func (l *libraryService) AddContribution(ctx context.Context, contribution models.Contribution) error {
	log := logger.FromContext(ctx)

	if contribution.Title == "" || contribution.UserID == 0 {
		log.Error().Str("title", contribution.Title).Int64("user_id", contribution.UserID).Msg("invalid contribution provided")
		return ErrInvalidDataProvided
	}
	if contribution.Review == "" && contribution.Note == "" {
		log.Error().Str("title", contribution.Title).Msg("contribution carries neither review nor note")
		return ErrNothingToAdd
	}

	book, err := l.bookRepository.UpsertBook(ctx, models.Book{
		Title:    contribution.Title,
		CoverURL: contribution.CoverURL,
		Author:   contribution.Author,
	})
	if err != nil {
		log.Err(err).Str("title", contribution.Title).Msg("book upsert failed")
		return fmt.Errorf("book upsert failed: %w", err)
	}

	if contribution.Review != "" {
		_, err = l.reviewRepository.CreateReview(ctx, models.Review{
			UserID: contribution.UserID,
			BookID: book.ID,
			Review: contribution.Review,
			Rating: contribution.Rating,
		})
		if err != nil {
			log.Err(err).Int64("book_id", book.ID).Msg("review creation failed")
			return fmt.Errorf("review creation failed: %w", err)
		}
	}

	if contribution.Note != "" {
		_, err = l.noteRepository.CreateNote(ctx, models.Note{
			UserID:  contribution.UserID,
			BookID:  book.ID,
			Content: contribution.Note,
		})
		if err != nil {
			log.Err(err).Int64("book_id", book.ID).Msg("note creation failed")
			return fmt.Errorf("note creation failed: %w", err)
		}
	}

	return nil
}

// pageWindow converts a 1-based page number into a limit/offset pair.
func pageWindow(page int) (limit, offset uint64) {
	if page < 1 {
		page = 1
	}
	return pageSize, uint64(page-1) * pageSize
}

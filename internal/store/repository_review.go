package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/shelfnotes/shelfnotes-server/internal/logger"
	"github.com/shelfnotes/shelfnotes-server/models"
)

// reviewRepository is the PostgreSQL-backed implementation of
// [ReviewRepository].
type reviewRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewReviewRepository constructs a [ReviewRepository] backed by the provided
// database connection and logger.
func NewReviewRepository(db *DB, logger *logger.Logger) ReviewRepository {
	logger.Debug().Msg("creating review repository")
	return &reviewRepository{
		db:     db,
		logger: logger,
	}
}

// CreateReview persists a review row and returns it with server-assigned
// fields (ID, CreatedAt).
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) → [ErrReferencedRowMissing]
//     (the book or user vanished between the upsert and this insert).
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *reviewRepository) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createReview, review.BookID, review.UserID, review.Review, review.Rating)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*reviewRepository.CreateReview").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Review{}, ErrReferencedRowMissing
		default:
			return models.Review{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var savedReview models.Review
	if err := row.Scan(&savedReview.ID, &savedReview.BookID, &savedReview.UserID, &savedReview.Review, &savedReview.Rating, &savedReview.CreatedAt); err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Review{}, ErrReferencedRowMissing
		}
		log.Err(err).Str("func", "*reviewRepository.CreateReview").Msg("error: scanning error")
		return models.Review{}, err
	}

	return savedReview, nil
}

// ListReviews returns one page of the public review feed: reviews joined
// with the reviewer's username and the book's title, author and cover,
// ordered newest first. The window is controlled by limit/offset.
//
// An empty page is not an error; the handler serializes it as an empty list.
func (r *reviewRepository) ListReviews(ctx context.Context, limit, offset uint64) ([]models.Review, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListReviewsQuery(limit, offset)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.ListReviews").Msg("error building listing query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.ListReviews").Msg("error executing listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	reviews := make([]models.Review, 0, limit)
	for rows.Next() {
		var review models.Review
		if err := rows.Scan(
			&review.ID,
			&review.BookID,
			&review.UserID,
			&review.Username,
			&review.Title,
			&review.Author,
			&review.CoverURL,
			&review.Review,
			&review.Rating,
			&review.CreatedAt,
		); err != nil {
			log.Err(err).Str("func", "*reviewRepository.ListReviews").Msg("error scanning listing row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return reviews, nil
}

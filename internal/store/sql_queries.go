package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING id, username, email, password_hash, created_at;`

	findUserByUsernameOrEmail = `SELECT id, username, email, password_hash, created_at
    FROM users
    WHERE username = $1 OR email = $1;`

	findUserByID = `SELECT id, username, email, password_hash, created_at
    FROM users
    WHERE id = $1;`

	// upsertBook inserts a book unless the title is already taken; the
	// fallback branch of the UNION returns the pre-existing row, so exactly
	// one row comes back either way. Atomic at the database level.
	upsertBook = `WITH ins AS (
        INSERT INTO books (title, cover_url, author)
        VALUES ($1, $2, $3)
        ON CONFLICT (title) DO NOTHING
        RETURNING id, title, cover_url, author
    )
    SELECT id, title, cover_url, author FROM ins
    UNION ALL
    SELECT id, title, cover_url, author FROM books
    WHERE title = $1 AND NOT EXISTS (SELECT 1 FROM ins);`

	createReview = `INSERT INTO reviews (book_id, user_id, review, rating)
    VALUES ($1, $2, $3, $4)
    RETURNING id, book_id, user_id, review, rating, created_at;`

	createNote = `INSERT INTO notes (user_id, book_id, content)
    VALUES ($1, $2, $3)
    RETURNING id, user_id, book_id, content, created_at;`
)

// psql builds listing queries with PostgreSQL $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListReviewsQuery produces the joined, newest-first review listing
// window used by GET /posts.
func buildListReviewsQuery(limit, offset uint64) (string, []any, error) {
	return psql.
		Select(
			"r.id",
			"r.book_id",
			"r.user_id",
			"u.username",
			"b.title",
			"b.author",
			"b.cover_url",
			"r.review",
			"r.rating",
			"r.created_at",
		).
		From("reviews r").
		Join("users u ON r.user_id = u.id").
		Join("books b ON r.book_id = b.id").
		OrderBy("r.created_at DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
}

// buildListNotesQuery produces the newest-first note listing window of one
// user on one book, used by GET /notes.
func buildListNotesQuery(bookID, userID int64, limit, offset uint64) (string, []any, error) {
	return psql.
		Select("id", "content", "created_at").
		From("notes").
		Where(sq.Eq{"book_id": bookID, "user_id": userID}).
		OrderBy("created_at DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
}

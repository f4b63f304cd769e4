package store

import (
	"github.com/shelfnotes/shelfnotes-server/internal/logger"
)

// Storages bundles every repository backed by the shared database handle.
// It is the single persistence dependency injected into the service layer.
type Storages struct {
	UserRepository   UserRepository
	BookRepository   BookRepository
	ReviewRepository ReviewRepository
	NoteRepository   NoteRepository
}

// NewStorages constructs all repositories on top of one database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:   NewUserRepository(db, logger),
		BookRepository:   NewBookRepository(db, logger),
		ReviewRepository: NewReviewRepository(db, logger),
		NoteRepository:   NewNoteRepository(db, logger),
	}
}

package service

import (
	"github.com/shelfnotes/shelfnotes-server/internal/config"
	"github.com/shelfnotes/shelfnotes-server/internal/logger"
	"github.com/shelfnotes/shelfnotes-server/internal/store"
)

type Services struct {
	AuthService    AuthService
	LibraryService LibraryService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, logger),
		LibraryService: NewLibraryService(storages.BookRepository, storages.ReviewRepository, storages.NoteRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}

package http

import (
	"github.com/shelfnotes/shelfnotes-server/internal/logger"
	"github.com/shelfnotes/shelfnotes-server/internal/service"
	"github.com/shelfnotes/shelfnotes-server/internal/session"
)

type Handler struct {
	services *service.Services
	sessions *session.Manager

	// frontendOrigin is the single origin allowed to make credentialed
	// cross-origin requests.
	frontendOrigin string

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions *session.Manager, frontendOrigin string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		sessions:       sessions,
		frontendOrigin: frontendOrigin,
		logger:         logger,
	}
}

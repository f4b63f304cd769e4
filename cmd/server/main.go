package main

import (
	"context"
	"fmt"

	"github.com/shelfnotes/shelfnotes-server/internal/config"
	myHTTP "github.com/shelfnotes/shelfnotes-server/internal/handler/http"
	"github.com/shelfnotes/shelfnotes-server/internal/logger"
	"github.com/shelfnotes/shelfnotes-server/internal/server"
	"github.com/shelfnotes/shelfnotes-server/internal/service"
	"github.com/shelfnotes/shelfnotes-server/internal/session"
	"github.com/shelfnotes/shelfnotes-server/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("shelfnotes-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	sessions := session.NewManager(cfg.Auth, log)
	handler := myHTTP.NewHandler(services, sessions, cfg.Server.FrontendOrigin, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

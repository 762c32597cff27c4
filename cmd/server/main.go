package main

import (
	"fmt"

	"github.com/MKhiriev/go-login-keeper/internal/config"
	"github.com/MKhiriev/go-login-keeper/internal/crypto"
	"github.com/MKhiriev/go-login-keeper/internal/handler"
	"github.com/MKhiriev/go-login-keeper/internal/logger"
	"github.com/MKhiriev/go-login-keeper/internal/server"
	"github.com/MKhiriev/go-login-keeper/internal/service"
	"github.com/MKhiriev/go-login-keeper/internal/session"
	"github.com/MKhiriev/go-login-keeper/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("login-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	hasher := crypto.NewPBKDF2Hasher(cfg.App)
	storages := store.NewStorages(cfg.Storage, hasher, log)
	sessions := session.NewManager(cfg.App, log)
	services := service.NewServices(storages, sessions, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
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

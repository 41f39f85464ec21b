package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-weather-keeper/internal/config"
	"github.com/MKhiriev/go-weather-keeper/internal/crypto"
	"github.com/MKhiriev/go-weather-keeper/internal/handler"
	"github.com/MKhiriev/go-weather-keeper/internal/logger"
	"github.com/MKhiriev/go-weather-keeper/internal/server"
	"github.com/MKhiriev/go-weather-keeper/internal/service"
	"github.com/MKhiriev/go-weather-keeper/internal/store"
	"github.com/MKhiriev/go-weather-keeper/internal/utils"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-weather-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	log.Debug().
		Str("driver", cfg.Storage.DB.Driver).
		Str("address", cfg.Server.HTTPAddress).
		Str("hash_algorithm", cfg.App.SecretHashAlgorithm).
		Msg("received configs")

	db, err := store.NewConnect(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if cfg.Storage.DB.AutoMigrate {
		if err = db.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("error applying migrations")
		}
	}

	hasher, err := crypto.NewSecretHasher(cfg.App)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating secret hasher")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, hasher, utils.SystemClock{}, cfg.App, log)

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

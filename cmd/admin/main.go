package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-weather-keeper/internal/admin"
	"github.com/MKhiriev/go-weather-keeper/internal/config"
	"github.com/MKhiriev/go-weather-keeper/internal/crypto"
	"github.com/MKhiriev/go-weather-keeper/internal/logger"
	"github.com/MKhiriev/go-weather-keeper/internal/service"
	"github.com/MKhiriev/go-weather-keeper/internal/store"
	"github.com/MKhiriev/go-weather-keeper/internal/utils"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "weather-admin:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logger.NewLogger("go-weather-admin")
	cfg, err := config.GetAdminConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		return err
	}

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if cfg.Storage.DB.AutoMigrate {
		if err = db.Migrate(); err != nil {
			return fmt.Errorf("error applying migrations: %w", err)
		}
	}

	hasher, err := crypto.NewSecretHasher(cfg.App)
	if err != nil {
		return err
	}

	storages := store.NewStorages(db, log)
	accounts := service.NewAccountService(storages.AccountRepository, hasher, utils.SystemClock{}, log)

	return admin.NewCommand(accounts, os.Stdin, os.Stdout, log).Run(ctx, os.Args[1:])
}

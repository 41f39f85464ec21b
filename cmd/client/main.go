package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-weather-keeper/internal/adapter"
	"github.com/MKhiriev/go-weather-keeper/internal/client"
	"github.com/MKhiriev/go-weather-keeper/internal/config"
	"github.com/MKhiriev/go-weather-keeper/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logger.NewLogger("go-weather-client")
	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	api, err := adapter.NewWeatherClient(cfg.ServerAddress, cfg.Timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating API client")
	}
	api.SetToken(cfg.Token)

	if err = client.NewApp(api, os.Stdin, os.Stdout, log).Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, "weather-client:", err)
		stop()
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sos-relay/internal/config"
	"github.com/MKhiriev/go-sos-relay/internal/handler"
	"github.com/MKhiriev/go-sos-relay/internal/logger"
	"github.com/MKhiriev/go-sos-relay/internal/server"
	"github.com/MKhiriev/go-sos-relay/internal/service"
	"github.com/MKhiriev/go-sos-relay/internal/store"
	"github.com/MKhiriev/go-sos-relay/internal/workers"
	"github.com/MKhiriev/go-sos-relay/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("sos-relay-hub")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.Version == "" {
		cfg.Version = buildVersion
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	info := models.NewAppBuildInfo(cfg.Version, buildDate, buildCommit)
	services, err := service.NewServices(storages, cfg, info, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	jobs := workers.NewWorkers(
		workers.NewSessionSweeper(services.ImportService, cfg.Relay.SessionTTL, cfg.Workers.SweepInterval, log),
	)

	srv, err := server.NewServer(handlers, jobs, cfg, log)
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

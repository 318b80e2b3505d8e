package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sos-relay/internal/adapter"
	"github.com/MKhiriev/go-sos-relay/internal/client"
	"github.com/MKhiriev/go-sos-relay/internal/config"
	"github.com/MKhiriev/go-sos-relay/internal/logger"
	"github.com/MKhiriev/go-sos-relay/internal/qr"
	"github.com/MKhiriev/go-sos-relay/internal/service"
	"github.com/MKhiriev/go-sos-relay/internal/store"
	"github.com/MKhiriev/go-sos-relay/internal/tui"
	"github.com/MKhiriev/go-sos-relay/internal/workers"
	"github.com/MKhiriev/go-sos-relay/models"
)

const role = "sos-relay-client"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger(role).Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	// the terminal UI owns stdout, so the client logs to a file
	log := logger.NewClientLogger(role, cfg.App.LogFile, cfg.App.LogLevel)

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	var hub adapter.HubAdapter
	if cfg.HubEnabled() {
		hub, err = adapter.NewHTTPHubAdapter(cfg.Adapter, cfg.App, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create hub adapter")
		}
	}

	services := service.NewClientServices(storages, hub, cfg, log)

	jobs := []workers.Worker{
		workers.NewSessionSweeper(services.ImportService, cfg.Relay.SessionTTL, cfg.Workers.SweepInterval, log),
	}
	if cfg.HubEnabled() {
		jobs = append(jobs, workers.NewHubSyncWorker(services.HubSyncService, cfg.Workers.SyncInterval, log))
	}

	ui := tui.New(services, qr.NewRenderer(qr.DefaultSize), models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)

	app, err := client.NewApp(services, ui, workers.NewWorkers(jobs...), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
	}
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

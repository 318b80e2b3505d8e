package client

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-sos-relay/internal/logger"
	"github.com/MKhiriev/go-sos-relay/internal/service"
	"github.com/MKhiriev/go-sos-relay/internal/workers"
)

type App struct {
	services *service.ClientServices
	ui       UI
	jobs     *workers.Workers

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, jobs *workers.Workers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, ErrIncompleteApp
	}
	if jobs == nil {
		jobs = workers.NewWorkers()
	}
	return &App{services: services, ui: ui, jobs: jobs, logger: logger}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	log := a.logger.With().Str("func", "App.run").Logger()

	seeded, err := a.services.ShelterService.SeedDefaults(ctx)
	if err != nil {
		return fmt.Errorf("seed shelters: %w", err)
	}
	if seeded {
		log.Info().Msg("built-in shelters stored")
	}

	room, err := a.services.RoomService.Current(ctx)
	if err != nil {
		return fmt.Errorf("prepare room: %w", err)
	}
	log.Info().Str("room_id", room.ID).Msg("client started")

	a.jobs.Start(ctx)
	defer a.jobs.Stop()

	if err = a.ui.MainLoop(ctx); err != nil {
		return fmt.Errorf("terminal ui: %w", err)
	}

	log.Info().Msg("client stopped")
	return nil
}

package handler

import (
	"github.com/MKhiriev/go-sos-relay/internal/config"
	"github.com/MKhiriev/go-sos-relay/internal/handler/http"
	"github.com/MKhiriev/go-sos-relay/internal/logger"
	"github.com/MKhiriev/go-sos-relay/internal/service"
)

// Handlers groups the hub's transport handlers.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.ServerConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, cfg, logger)}, nil
}

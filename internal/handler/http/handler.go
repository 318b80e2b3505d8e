package http

import (
	"time"

	"github.com/MKhiriev/go-sos-relay/internal/config"
	"github.com/MKhiriev/go-sos-relay/internal/logger"
	"github.com/MKhiriev/go-sos-relay/internal/qr"
	"github.com/MKhiriev/go-sos-relay/internal/service"
	"github.com/MKhiriev/go-sos-relay/internal/validators"
)

type Handler struct {
	services  *service.Services
	renderer  qr.Renderer
	validator validators.Validator

	tokenIssuer    string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.ServerConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		renderer:       qr.NewRenderer(qr.DefaultSize),
		validator:      validators.NewRecordValidator(),
		tokenIssuer:    cfg.TokenIssuer,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}

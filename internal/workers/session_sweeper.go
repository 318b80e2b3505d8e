package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-sos-relay/internal/logger"
	"github.com/MKhiriev/go-sos-relay/internal/service"
)

const (
	defaultSweepInterval = time.Minute
	defaultSessionTTL    = 10 * time.Minute
)

// NewSessionSweeper returns a worker that drops transfer sessions which
// received no part for longer than ttl.
func NewSessionSweeper(imports service.ImportService, ttl, interval time.Duration, logger *logger.Logger) Worker {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return newTickerJob("session_sweeper", interval, defaultSweepInterval, func(context.Context) {
		if n := imports.Expire(ttl); n > 0 {
			logger.Info().Str("worker", "session_sweeper").Int("expired", n).Msg("stale transfers dropped")
		}
	}, logger)
}

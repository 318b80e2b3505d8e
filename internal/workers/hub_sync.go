package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-sos-relay/internal/logger"
	"github.com/MKhiriev/go-sos-relay/internal/service"
)

const defaultSyncInterval = 5 * time.Minute

// NewHubSyncWorker returns a worker that syncs every collection with the hub.
// A failed round is logged and retried on the next tick.
func NewHubSyncWorker(hubSync service.HubSyncService, interval time.Duration, logger *logger.Logger) Worker {
	return newTickerJob("hub_sync", interval, defaultSyncInterval, func(ctx context.Context) {
		reports, err := hubSync.Sync(ctx)
		if err != nil {
			if ctx.Err() == nil {
				logger.Warn().Err(err).Str("worker", "hub_sync").Int("synced", len(reports)).Msg("hub sync failed")
			}
			return
		}
		logger.Debug().Str("worker", "hub_sync").Int("synced", len(reports)).Msg("hub sync finished")
	}, logger)
}

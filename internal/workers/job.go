// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-sos-relay/internal/logger"
)

// tickerJob calls tick every interval on a background goroutine.
type tickerJob struct {
	name     string
	interval time.Duration
	tick     func(ctx context.Context)

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

func newTickerJob(name string, interval, fallback time.Duration, tick func(ctx context.Context), logger *logger.Logger) *tickerJob {
	if interval <= 0 {
		interval = fallback
	}
	return &tickerJob{
		name:     name,
		interval: interval,
		tick:     tick,
		logger:   logger,
	}
}

// Start stops any previously running job, then launches a goroutine that
// calls tick every interval. The goroutine exits when ctx is cancelled or
// Stop is called.
func (j *tickerJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Debug().Str("worker", j.name).Dur("interval", j.interval).Msg("worker started")

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

// Stop cancels the job's context and blocks until the goroutine has exited.
func (j *tickerJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
		j.logger.Debug().Str("worker", j.name).Msg("worker stopped")
	}
	j.wg.Wait()
}

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-sos-relay/internal/logger"
)

func newCountingJob(interval time.Duration) (*tickerJob, *atomic.Int64) {
	var calls atomic.Int64
	job := newTickerJob("test", interval, time.Hour, func(context.Context) { calls.Add(1) }, logger.Nop())
	return job, &calls
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestTickerJob_Start_Ticks(t *testing.T) {
	job, calls := newCountingJob(10 * time.Millisecond)

	job.Start(context.Background())
	defer job.Stop()

	assert.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
}

func TestTickerJob_Stop_StopsGoroutine(t *testing.T) {
	job, calls := newCountingJob(10 * time.Millisecond)

	job.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	afterStop := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, afterStop, calls.Load(), "no ticks after Stop")
}

func TestTickerJob_Stop_BeforeStart(t *testing.T) {
	job, _ := newCountingJob(10 * time.Millisecond)
	assert.NotPanics(t, job.Stop)
}

func TestTickerJob_DoubleStop(t *testing.T) {
	job, _ := newCountingJob(10 * time.Millisecond)

	job.Start(context.Background())
	job.Stop()
	assert.NotPanics(t, job.Stop)
}

func TestTickerJob_FallbackInterval(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		job, calls := newCountingJob(interval)
		assert.Equal(t, time.Hour, job.interval)

		job.Start(context.Background())
		time.Sleep(20 * time.Millisecond)
		job.Stop()

		assert.Zero(t, calls.Load())
	}
}

func TestTickerJob_Restart(t *testing.T) {
	job, calls := newCountingJob(10 * time.Millisecond)
	ctx := context.Background()

	job.Start(ctx)
	assert.Eventually(t, func() bool { return calls.Load() > 0 }, time.Second, 5*time.Millisecond)
	before := calls.Load()

	// Start on a running job replaces the goroutine
	job.Start(ctx)
	assert.Eventually(t, func() bool { return calls.Load() > before }, time.Second, 5*time.Millisecond)
	job.Stop()
}

func TestTickerJob_ContextCancel(t *testing.T) {
	job, _ := newCountingJob(10 * time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop hung after context cancellation")
	}
}

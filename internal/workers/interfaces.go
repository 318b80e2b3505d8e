// Package workers runs the background jobs of the relay: expiring transfer
// sessions that stopped receiving parts and the periodic hub sync.
//
// Every job follows the same life cycle. It is idle until Start, runs on a
// ticker until its context is cancelled or Stop is called, and Stop blocks
// until the job goroutine has exited.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start must not block. Calling Start on a running worker restarts it.
// Stop is safe to call on a worker that is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

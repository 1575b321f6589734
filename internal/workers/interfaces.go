// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that starts and
// stops multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start launches the worker's goroutine and returns immediately; the worker
// runs until ctx is cancelled or Stop is called. Stop must block until the
// goroutine has exited and must be safe to call on a worker that is not
// running.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc; wg sync.WaitGroup }
//
//	func (w *MyWorker) Start(ctx context.Context) { ... }
//	func (w *MyWorker) Stop()                     { w.cancel(); w.wg.Wait() }
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

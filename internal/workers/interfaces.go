// Package workers provides abstractions for managing and running
// background workers in the client.
// It defines the Worker interface and a Workers aggregate that starts and
// stops multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start must not block: implementations spawn their own goroutines and tie
// them to ctx. Stop must block until those goroutines have returned and must
// be safe to call on a worker that was never started.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc }
//
//	func (w *MyWorker) Start(ctx context.Context) { /* spawn goroutine */ }
//	func (w *MyWorker) Stop()                     { /* cancel and wait */ }
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

package workers

import (
	"context"
	"sync"
)

// Workers runs a fixed set of workers as one unit.
type Workers struct {
	mu      sync.Mutex
	workers []Worker
	running bool
}

// New returns an aggregate of ws. Nil entries are skipped.
func New(ws ...Worker) *Workers {
	list := make([]Worker, 0, len(ws))
	for _, w := range ws {
		if w != nil {
			list = append(list, w)
		}
	}
	return &Workers{workers: list}
}

// Start starts every worker in order. Starting a running aggregate is a
// no-op.
func (w *Workers) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return
	}
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
	w.running = true
}

// Stop stops every worker in reverse order and waits for each of them.
func (w *Workers) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
	w.running = false
}

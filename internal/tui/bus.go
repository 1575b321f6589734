package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

type sender interface {
	Send(msg tea.Msg)
}

// bus forwards messages from service goroutines to the running program.
// Messages sent before a program is attached are dropped.
type bus struct {
	mu     sync.RWMutex
	target sender
}

func (b *bus) attach(s sender) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.target = s
}

func (b *bus) send(msg tea.Msg) {
	b.mu.RLock()
	target := b.target
	b.mu.RUnlock()

	if target != nil {
		target.Send(msg)
	}
}

// queue delivers messages to target in order from its own goroutine. Send
// never blocks, so a service goroutine is never held up by an update that is
// itself waiting for that goroutine.
type queue struct {
	target sender

	mu      sync.Mutex
	pending []tea.Msg
	wake    chan struct{}
}

func newQueue(target sender) *queue {
	return &queue{target: target, wake: make(chan struct{}, 1)}
}

func (q *queue) Send(msg tea.Msg) {
	q.mu.Lock()
	q.pending = append(q.pending, msg)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// run forwards queued messages until ctx is done.
func (q *queue) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-q.wake:
		}

		for {
			q.mu.Lock()
			if len(q.pending) == 0 {
				q.mu.Unlock()
				break
			}
			msg := q.pending[0]
			q.pending = q.pending[1:]
			q.mu.Unlock()

			q.target.Send(msg)
		}
	}
}

// notifier implements service.Notifier on top of the bus.
type notifier struct {
	bus *bus
}

func (n notifier) Notify(title, message string) {
	n.bus.send(notificationMsg{title: title, message: message})
}

package store

import (
	"sync"

	"github.com/google/uuid"
)

// Subscription receives values published by a Store.
type Subscription[T any] struct {
	id     uuid.UUID
	ch     chan T
	done   chan struct{}
	store  *Store[T]
	closed bool
	mu     sync.Mutex
}

func newSubscription[T any](s *Store[T]) *Subscription[T] {
	return &Subscription[T]{
		id:    uuid.New(),
		ch:    make(chan T, 1),
		done:  make(chan struct{}),
		store: s,
	}
}

// ID identifies the subscription in logs.
func (sub *Subscription[T]) ID() uuid.UUID {
	return sub.id
}

// C returns the channel values are delivered on.
// The channel is closed when the subscription ends.
func (sub *Subscription[T]) C() <-chan T {
	return sub.ch
}

// Close ends the subscription. It is idempotent.
func (sub *Subscription[T]) Close() error {
	sub.store.unsubscribe(sub)
	// not registered (store already closed or never subscribed)
	sub.close()
	return nil
}

func (sub *Subscription[T]) close() {
	sub.mu.Lock()
	defer sub.mu.Unlock()

	if sub.closed {
		return
	}
	sub.closed = true
	close(sub.done)
	close(sub.ch)
}

// send delivers v without blocking, replacing a pending undelivered value.
// Callers hold the store lock, so there is a single sender at a time.
func (sub *Subscription[T]) send(v T) {
	sub.mu.Lock()
	defer sub.mu.Unlock()

	if sub.closed {
		return
	}

	select {
	case sub.ch <- v:
		return
	default:
	}

	select {
	case <-sub.ch:
	default:
	}
	sub.ch <- v
}

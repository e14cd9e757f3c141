package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/rococo-gallery/forms/pkg/logger"
)

// Store holds a value of type T and notifies subscribers whenever it changes.
// All methods are safe for concurrent use.
//
// Values handed to Update callbacks, returned by Get and delivered to
// subscribers are shared; callers must treat them as immutable and build a new
// value instead of mutating the previous one.
type Store[T any] struct {
	mu        sync.Mutex
	value     T
	subs      map[*Subscription[T]]struct{}
	closed    bool
	name      string
	logger    *slog.Logger
	cleanupWg sync.WaitGroup // tracks context watchers
}

// Option configures a Store.
type Option func(*options)

type options struct {
	name   string
	logger *slog.Logger
}

// WithName sets the name reported in log records.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithLogger sets the logger used for debug records. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// New creates a store holding initial.
func New[T any](initial T, opts ...Option) *Store[T] {
	o := options{
		name:   "store",
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Store[T]{
		value:  initial,
		subs:   make(map[*Subscription[T]]struct{}),
		name:   o.name,
		logger: o.logger,
	}
}

// Name returns the store name.
func (s *Store[T]) Name() string {
	return s.name
}

// Get returns the current value.
func (s *Store[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Update atomically replaces the stored value with fn(previous) and notifies
// every subscriber. It returns the new value.
func (s *Store[T]) Update(fn func(T) T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = fn(s.value)

	for sub := range s.subs {
		sub.send(s.value)
	}

	s.logger.Debug("store updated",
		slog.String("store", s.name),
		slog.Int("subscribers", len(s.subs)),
	)

	return s.value
}

// Set replaces the stored value and notifies subscribers.
func (s *Store[T]) Set(v T) {
	s.Update(func(T) T { return v })
}

// Subscribe registers a subscriber. The current value is delivered immediately,
// later values as they are set. A subscriber that falls behind only sees the
// latest value: an undelivered older value is replaced, never queued.
//
// The subscription ends when ctx is cancelled, when Close is called on it, or
// when the store is closed. Subscribing to a closed store returns a closed
// subscription.
func (s *Store[T]) Subscribe(ctx context.Context) *Subscription[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := newSubscription(s)
	if s.closed {
		sub.close()
		return sub
	}

	s.subs[sub] = struct{}{}
	sub.send(s.value)

	if ctx.Done() != nil {
		s.cleanupWg.Add(1)
		go func() {
			defer s.cleanupWg.Done()
			select {
			case <-ctx.Done():
				s.unsubscribe(sub)
			case <-sub.done:
			}
		}()
	}

	s.logger.Debug("store subscribed",
		slog.String("store", s.name),
		slog.String("subscription_id", sub.id.String()),
	)

	return sub
}

// Close closes every subscription. The value remains readable and updatable.
// It is safe to call Close multiple times.
func (s *Store[T]) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	for sub := range s.subs {
		sub.close()
	}
	clear(s.subs)
	s.mu.Unlock()

	s.cleanupWg.Wait()
	return nil
}

func (s *Store[T]) unsubscribe(sub *Subscription[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subs[sub]; !ok {
		return
	}
	delete(s.subs, sub)
	sub.close()

	s.logger.Debug("store unsubscribed",
		slog.String("store", s.name),
		slog.String("subscription_id", sub.id.String()),
	)
}

// Package store holds the current ResultState of one asynchronous operation
// and drives its transitions.
//
// The result package is deliberately inert: it never runs anything. A Store
// is the caller-side holder sitting on top of it, swapping one immutable
// snapshot for the next as the underlying operation progresses, and fanning
// each transition out to subscribers as a time-bounded Change.
package store

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"

	"github.com/FadyFayezYounan/async-result/result"
)

// Change is one observed transition. The span brackets the instant the
// transition was applied under the store's lock.
type Change[T, E any] struct {
	Old  result.ResultState[T, E]
	New  result.ResultState[T, E]
	Span timespan.TimeSpan
}

// Store holds the current state of one asynchronous operation. The zero
// state is Initial. Safe for concurrent use.
type Store[T, E any] struct {
	mu      sync.RWMutex
	current result.ResultState[T, E]
	subs    map[string]func(Change[T, E])
	logger  *zap.Logger
}

// Option configures a Store.
type Option func(*config)

type config struct {
	logger *zap.Logger
}

// WithLogger makes the store log every transition at debug level.
// Without it, transitions are not logged.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// New returns a Store in the Initial state.
func New[T, E any](opts ...Option) *Store[T, E] {
	cfg := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Store[T, E]{
		subs:   make(map[string]func(Change[T, E])),
		logger: cfg.logger,
	}
}

// State returns the current snapshot.
func (s *Store[T, E]) State() result.ResultState[T, E] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// SetLoading transitions to Loading and returns the new state.
func (s *Store[T, E]) SetLoading() result.ResultState[T, E] {
	return s.transition(result.Loading[T, E]())
}

// SetData transitions to Data wrapping value and returns the new state.
func (s *Store[T, E]) SetData(value T) result.ResultState[T, E] {
	return s.transition(result.Data[T, E](value))
}

// SetError transitions to Error wrapping err and returns the new state.
func (s *Store[T, E]) SetError(err E) result.ResultState[T, E] {
	return s.transition(result.Error[T](err))
}

// Reset transitions back to Initial and returns the new state.
func (s *Store[T, E]) Reset() result.ResultState[T, E] {
	return s.transition(result.Initial[T, E]())
}

// Subscribe registers fn for every future transition and returns the
// subscription id together with a cancel function. Subscribers are invoked
// synchronously on the transitioning goroutine, outside the store's lock.
func (s *Store[T, E]) Subscribe(fn func(Change[T, E])) (string, func()) {
	id := uuid.New().String()
	s.mu.Lock()
	s.subs[id] = fn
	s.mu.Unlock()
	return id, func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store[T, E]) transition(next result.ResultState[T, E]) result.ResultState[T, E] {
	s.mu.Lock()
	old := s.current
	s.current = next
	span := now()
	subs := make([]func(Change[T, E]), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	s.logger.Debug("state transition",
		zap.Stringer("from", old),
		zap.Stringer("to", next),
	)

	change := Change[T, E]{Old: old, New: next, Span: span}
	for _, fn := range subs {
		fn(change)
	}
	return next
}

package tojos

import (
	"context"
	"fmt"
	"log/slog"
)

// Option configures a SynchronizedStore.
type Option func(*SynchronizedStore)

// WithLogger sets the logger used for permit diagnostics.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *SynchronizedStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMaxReaders caps the number of Select calls that may run at once.
// Values <= 0 select DefaultMaxReaders.
func WithMaxReaders(n int64) Option {
	return func(s *SynchronizedStore) {
		s.maxReaders = n
	}
}

// SynchronizedStore wraps a Store and makes it safe for concurrent use.
//
// Add runs under the exclusive permit, Select under a shared permit. Results
// and errors of the wrapped store are returned unchanged. Close and String are
// forwarded without taking a permit.
type SynchronizedStore struct {
	origin     Store
	permit     *permit
	logger     *slog.Logger
	maxReaders int64
}

var _ Store = (*SynchronizedStore)(nil)

// Synchronized wraps origin. Every call returns a wrapper with its own permit,
// independent of any other wrapper around the same store.
func Synchronized(origin Store, opts ...Option) *SynchronizedStore {
	s := &SynchronizedStore{
		origin: origin,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.permit = newPermit(s.maxReaders)
	return s
}

// String returns the wrapped store's description.
func (s *SynchronizedStore) String() string {
	return s.origin.String()
}

// Add calls the wrapped store's Add while holding the exclusive permit.
// It blocks until no other Add or Select is running.
func (s *SynchronizedStore) Add(name string) (Record, error) {
	return s.AddContext(context.Background(), name)
}

// AddContext is like Add but gives up waiting for the permit when ctx is done.
// In that case the returned error wraps both ErrAcquireInterrupted and
// ctx.Err(), and the wrapped store is not called.
func (s *SynchronizedStore) AddContext(ctx context.Context, name string) (Record, error) {
	if err := s.permit.acquireExclusive(ctx); err != nil {
		return nil, s.interrupted("add", err)
	}
	defer s.permit.releaseExclusive()

	return s.origin.Add(name)
}

// Select calls the wrapped store's Select while holding a shared permit.
// It blocks while an Add is running or queued ahead of it.
func (s *SynchronizedStore) Select(pred Predicate) ([]Record, error) {
	return s.SelectContext(context.Background(), pred)
}

// SelectContext is like Select but gives up waiting for the permit when ctx is
// done, with the same error contract as AddContext.
func (s *SynchronizedStore) SelectContext(ctx context.Context, pred Predicate) ([]Record, error) {
	if err := s.permit.acquireShared(ctx); err != nil {
		return nil, s.interrupted("select", err)
	}
	defer s.permit.releaseShared()

	return s.origin.Select(pred)
}

// Close closes the wrapped store. It takes no permit.
func (s *SynchronizedStore) Close() error {
	return s.origin.Close()
}

func (s *SynchronizedStore) interrupted(op string, cause error) error {
	s.logger.Debug("permit acquisition interrupted",
		"op", op,
		"error", cause,
	)
	return fmt.Errorf("%s: %w: %w", op, ErrAcquireInterrupted, cause)
}

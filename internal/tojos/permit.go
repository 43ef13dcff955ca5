package tojos

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// DefaultMaxReaders is the default number of shared permits that may be held
// at the same time.
const DefaultMaxReaders = 1 << 20

// permit issues shared and exclusive access to a single resource.
//
// A shared permit takes one unit of the semaphore and an exclusive permit
// takes all of them, so the exclusive permit is granted only when no shared
// permit is held. The semaphore serves waiters in FIFO order and never lets a
// later request overtake a queued one, which keeps writers from starving
// under sustained read load.
type permit struct {
	sem      *semaphore.Weighted
	capacity int64
}

// newPermit creates a permit allowing up to maxReaders concurrent shared holders.
func newPermit(maxReaders int64) *permit {
	if maxReaders <= 0 {
		maxReaders = DefaultMaxReaders
	}
	return &permit{
		sem:      semaphore.NewWeighted(maxReaders),
		capacity: maxReaders,
	}
}

// acquireShared blocks until a shared permit is granted or ctx is done.
func (p *permit) acquireShared(ctx context.Context) error {
	return p.sem.Acquire(ctx, 1)
}

// releaseShared returns a permit obtained with acquireShared.
func (p *permit) releaseShared() {
	p.sem.Release(1)
}

// acquireExclusive blocks until the exclusive permit is granted or ctx is done.
func (p *permit) acquireExclusive(ctx context.Context) error {
	return p.sem.Acquire(ctx, p.capacity)
}

// releaseExclusive returns a permit obtained with acquireExclusive.
func (p *permit) releaseExclusive() {
	p.sem.Release(p.capacity)
}

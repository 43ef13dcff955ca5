package testutil

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/roach88/tojos/internal/tojos"
)

// ProbeStore is an instrumented tojos.Store for concurrency tests.
//
// It counts the Add and Select calls running inside it, remembers the highest
// counts seen, and flags any moment where both kinds ran at once. Calls can be
// held inside the store with Block until Unblock is called.
//
// Configure a ProbeStore before sharing it between goroutines.
type ProbeStore struct {
	origin tojos.Store

	addErr    error
	selectErr error
	addPanic  any
	hold      time.Duration

	gateMu sync.Mutex
	gate   chan struct{}

	writers    atomic.Int64
	readers    atomic.Int64
	maxWriters atomic.Int64
	maxReaders atomic.Int64
	adds       atomic.Int64
	selects    atomic.Int64
	closes     atomic.Int64
	mixed      atomic.Bool

	entered chan string
}

var _ tojos.Store = (*ProbeStore)(nil)

// NewProbeStore wraps origin. Calls that are not failed or panicked are
// forwarded to it.
func NewProbeStore(origin tojos.Store) *ProbeStore {
	return &ProbeStore{
		origin:  origin,
		entered: make(chan string, 4096),
	}
}

// FailAdd makes every Add return err.
func (p *ProbeStore) FailAdd(err error) { p.addErr = err }

// FailSelect makes every Select return err.
func (p *ProbeStore) FailSelect(err error) { p.selectErr = err }

// PanicAdd makes every Add panic with v.
func (p *ProbeStore) PanicAdd(v any) { p.addPanic = v }

// Hold makes every call sleep for d while counted as running.
func (p *ProbeStore) Hold(d time.Duration) { p.hold = d }

// Block holds subsequent calls inside the store until Unblock.
func (p *ProbeStore) Block() {
	p.gateMu.Lock()
	defer p.gateMu.Unlock()
	p.gate = make(chan struct{})
}

// Unblock releases every call held by Block.
func (p *ProbeStore) Unblock() {
	p.gateMu.Lock()
	defer p.gateMu.Unlock()
	if p.gate != nil {
		close(p.gate)
		p.gate = nil
	}
}

// Entered receives "add" or "select" each time a call enters the store.
func (p *ProbeStore) Entered() <-chan string { return p.entered }

// MaxWriters is the highest number of Add calls seen running at once.
func (p *ProbeStore) MaxWriters() int64 { return p.maxWriters.Load() }

// MaxReaders is the highest number of Select calls seen running at once.
func (p *ProbeStore) MaxReaders() int64 { return p.maxReaders.Load() }

// Readers is the number of Select calls running now.
func (p *ProbeStore) Readers() int64 { return p.readers.Load() }

// Mixed reports whether an Add ever ran at the same time as a Select.
func (p *ProbeStore) Mixed() bool { return p.mixed.Load() }

// Adds is the number of Add calls that entered the store.
func (p *ProbeStore) Adds() int64 { return p.adds.Load() }

// Selects is the number of Select calls that entered the store.
func (p *ProbeStore) Selects() int64 { return p.selects.Load() }

// Closes is the number of Close calls.
func (p *ProbeStore) Closes() int64 { return p.closes.Load() }

func (p *ProbeStore) Add(name string) (tojos.Record, error) {
	n := p.writers.Add(1)
	defer p.writers.Add(-1)
	p.adds.Add(1)
	raise(&p.maxWriters, n)
	p.checkMixed(&p.readers)
	p.notify("add")

	p.wait()
	p.checkMixed(&p.readers)

	if p.addPanic != nil {
		panic(p.addPanic)
	}
	if p.addErr != nil {
		return nil, p.addErr
	}
	return p.origin.Add(name)
}

func (p *ProbeStore) Select(pred tojos.Predicate) ([]tojos.Record, error) {
	n := p.readers.Add(1)
	defer p.readers.Add(-1)
	p.selects.Add(1)
	raise(&p.maxReaders, n)
	p.checkMixed(&p.writers)
	p.notify("select")

	p.wait()
	p.checkMixed(&p.writers)

	if p.selectErr != nil {
		return nil, p.selectErr
	}
	return p.origin.Select(pred)
}

func (p *ProbeStore) Close() error {
	p.closes.Add(1)
	return p.origin.Close()
}

func (p *ProbeStore) String() string {
	return "probe over " + p.origin.String()
}

func (p *ProbeStore) wait() {
	if p.hold > 0 {
		time.Sleep(p.hold)
	}

	p.gateMu.Lock()
	gate := p.gate
	p.gateMu.Unlock()
	if gate != nil {
		<-gate
	}
}

// notify drops the event when nobody drains Entered fast enough.
func (p *ProbeStore) notify(op string) {
	select {
	case p.entered <- op:
	default:
	}
}

func (p *ProbeStore) checkMixed(other *atomic.Int64) {
	if other.Load() > 0 {
		p.mixed.Store(true)
	}
}

// raise stores n in peak if it is larger.
func raise(peak *atomic.Int64, n int64) {
	for {
		cur := peak.Load()
		if n <= cur || peak.CompareAndSwap(cur, n) {
			return
		}
	}
}

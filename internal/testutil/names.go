package testutil

import "sync"

// FixedNameGenerator returns predetermined record names in order.
//
// This keeps CLI output byte-identical across runs for golden file
// comparison.
//
// Thread-safety: FixedNameGenerator is safe for concurrent use via internal mutex.
type FixedNameGenerator struct {
	mu    sync.Mutex
	names []string
	idx   int
}

// NewFixedNameGenerator creates a generator returning names in order.
//
// Panics from Generate once all names are consumed.
func NewFixedNameGenerator(names ...string) *FixedNameGenerator {
	return &FixedNameGenerator{names: names}
}

// Generate returns the next predetermined name.
func (g *FixedNameGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.idx >= len(g.names) {
		panic("FixedNameGenerator: all names exhausted")
	}
	name := g.names[g.idx]
	g.idx++
	return name
}

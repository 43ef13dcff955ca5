package mono

import (
	"fmt"
	"sync"
)

// Memory is a Mono kept in process memory.
//
// Read and Write are safe for concurrent use; each copies the rows.
type Memory struct {
	mu   sync.Mutex
	rows []map[string]string
}

// NewMemory creates an empty in-memory table.
func NewMemory() *Memory {
	return &Memory{rows: []map[string]string{}}
}

// Read returns a copy of the rows.
func (m *Memory) Read() ([]map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneRows(m.rows), nil
}

// Write replaces the rows with a copy of rows.
func (m *Memory) Write(rows []map[string]string) error {
	cp := cloneRows(rows)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = cp
	return nil
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}

func (m *Memory) String() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fmt.Sprintf("memory (%d rows)", len(m.rows))
}

package store

import (
	"path/filepath"
	"testing"
)

// createTestStore creates a new store in a temporary directory for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// mustAdd adds a record and sets the given key/value pairs on it.
func mustAdd(t *testing.T, s *Store, name string, pairs ...string) {
	t.Helper()
	rec, err := s.Add(name)
	if err != nil {
		t.Fatalf("Add(%q) failed: %v", name, err)
	}
	for i := 0; i+1 < len(pairs); i += 2 {
		if err := rec.Set(pairs[i], pairs[i+1]); err != nil {
			t.Fatalf("Set(%q, %q) failed: %v", pairs[i], pairs[i+1], err)
		}
	}
}

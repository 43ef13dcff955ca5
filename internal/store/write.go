package store

import (
	"fmt"

	"github.com/roach88/tojos/internal/tojos"
)

// Add inserts a record named name unless it already exists, and returns its
// handle. Uses ON CONFLICT(name) DO NOTHING, so adding an existing name keeps
// its fields and insertion position.
func (s *Store) Add(name string) (tojos.Record, error) {
	db, err := s.conn()
	if err != nil {
		return nil, fmt.Errorf("add %q: %w", name, err)
	}

	name = normalize(name)
	_, err = db.Exec(`
		INSERT INTO records (name) VALUES (?)
		ON CONFLICT(name) DO NOTHING
	`, name)
	if err != nil {
		return nil, fmt.Errorf("add %q: %w", name, err)
	}

	return &record{store: s, name: name}, nil
}

// setField upserts one key/value pair of a record.
// The foreign key on fields.name rejects pairs for unknown records.
func (s *Store) setField(name, key, value string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT INTO fields (name, key, value) VALUES (?, ?, ?)
		ON CONFLICT(name, key) DO UPDATE SET value = excluded.value
	`, name, normalize(key), value)
	return err
}

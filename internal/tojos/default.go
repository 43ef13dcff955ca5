package tojos

import (
	"fmt"

	"github.com/roach88/tojos/internal/mono"
)

// DefaultStore is a Store over a whole-table medium.
//
// Every operation reads the table, changes it and writes it back. Records are
// live handles: Get and Set go through the medium on each call.
//
// DefaultStore is not safe for concurrent use. Wrap it with Synchronized.
type DefaultStore struct {
	mono mono.Mono
}

var _ Store = (*DefaultStore)(nil)

// NewDefault creates a store over m.
func NewDefault(m mono.Mono) *DefaultStore {
	return &DefaultStore{mono: m}
}

// NewMemory creates a store kept entirely in process memory.
func NewMemory() *DefaultStore {
	return NewDefault(mono.NewMemory())
}

func (d *DefaultStore) String() string {
	return d.mono.String()
}

// Add returns the record named name, appending a new row if none exists.
// Names are NFC-normalized, so canonically equivalent names address one record.
func (d *DefaultStore) Add(name string) (Record, error) {
	name = mono.Normalize(name)

	rows, err := d.mono.Read()
	if err != nil {
		return nil, fmt.Errorf("add %q: %w", name, err)
	}

	for _, row := range rows {
		if row[KeyID] == name {
			return &defaultRecord{mono: d.mono, name: name}, nil
		}
	}

	rows = append(rows, map[string]string{KeyID: name})
	if err := d.mono.Write(rows); err != nil {
		return nil, fmt.Errorf("add %q: %w", name, err)
	}

	return &defaultRecord{mono: d.mono, name: name}, nil
}

// Select returns the records matching pred, in table order.
// The table is read once; the predicate sees each record before the result
// is returned.
func (d *DefaultStore) Select(pred Predicate) ([]Record, error) {
	rows, err := d.mono.Read()
	if err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}

	matched := make([]Record, 0, len(rows))
	for _, row := range rows {
		rec := &defaultRecord{mono: d.mono, name: row[KeyID]}
		if pred(rec) {
			matched = append(matched, rec)
		}
	}

	return matched, nil
}

// Close closes the medium.
func (d *DefaultStore) Close() error {
	return d.mono.Close()
}

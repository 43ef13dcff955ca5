package store

import (
	"errors"
	"fmt"

	"github.com/roach88/tojos/internal/tojos"
)

// record is the tojos.Record handle of a Store.
// Every call reads or writes the database; nothing is cached.
type record struct {
	store *Store
	name  string
}

func (r *record) Exists(key string) (bool, error) {
	if key == tojos.KeyID {
		return true, nil
	}
	_, err := r.store.readField(r.name, key)
	if errors.Is(err, tojos.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("exists %s in %q: %w", key, r.name, err)
	}
	return true, nil
}

func (r *record) Get(key string) (string, error) {
	if key == tojos.KeyID {
		return r.name, nil
	}
	value, err := r.store.readField(r.name, key)
	if err != nil {
		return "", fmt.Errorf("get %s in %q: %w", key, r.name, err)
	}
	return value, nil
}

func (r *record) Set(key, value string) error {
	if key == tojos.KeyID {
		return fmt.Errorf("set %s in %q: %w", key, r.name, tojos.ErrReadOnlyKey)
	}

	ok, err := r.store.hasRecord(r.name)
	if err != nil {
		return fmt.Errorf("set %s in %q: %w", key, r.name, err)
	}
	if !ok {
		return fmt.Errorf("set %s in %q: %w", key, r.name, tojos.ErrNoRecord)
	}

	if err := r.store.setField(r.name, key, value); err != nil {
		return fmt.Errorf("set %s in %q: %w", key, r.name, err)
	}
	return nil
}

func (r *record) Map() (map[string]string, error) {
	fields, err := r.store.readFields(r.name)
	if err != nil {
		return nil, fmt.Errorf("map %q: %w", r.name, err)
	}
	fields[tojos.KeyID] = r.name
	return fields, nil
}

package tojos

import (
	"fmt"
	"sort"
	"strings"

	"github.com/roach88/tojos/internal/mono"
)

// defaultRecord is the Record handle of a DefaultStore.
type defaultRecord struct {
	mono mono.Mono
	name string
}

func (r *defaultRecord) Exists(key string) (bool, error) {
	row, err := r.row()
	if err != nil {
		return false, err
	}
	_, ok := row[mono.Normalize(key)]
	return ok, nil
}

func (r *defaultRecord) Get(key string) (string, error) {
	row, err := r.row()
	if err != nil {
		return "", err
	}
	value, ok := row[mono.Normalize(key)]
	if !ok {
		return "", fmt.Errorf("%s in %q: %w", key, r.name, ErrKeyNotFound)
	}
	return value, nil
}

func (r *defaultRecord) Set(key, value string) error {
	key = mono.Normalize(key)
	if key == KeyID {
		return fmt.Errorf("set %s in %q: %w", key, r.name, ErrReadOnlyKey)
	}

	rows, err := r.mono.Read()
	if err != nil {
		return fmt.Errorf("set %s in %q: %w", key, r.name, err)
	}

	for _, row := range rows {
		if row[KeyID] == r.name {
			row[key] = value
			if err := r.mono.Write(rows); err != nil {
				return fmt.Errorf("set %s in %q: %w", key, r.name, err)
			}
			return nil
		}
	}

	return fmt.Errorf("set %s in %q: %w", key, r.name, ErrNoRecord)
}

func (r *defaultRecord) Map() (map[string]string, error) {
	return r.row()
}

// String renders the record as "id key=value ..." with keys sorted.
func (r *defaultRecord) String() string {
	row, err := r.row()
	if err != nil {
		return r.name
	}
	return Format(row)
}

// row reads the table and returns the record's row.
// The returned map is owned by the caller.
func (r *defaultRecord) row() (map[string]string, error) {
	rows, err := r.mono.Read()
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", r.name, err)
	}
	for _, row := range rows {
		if row[KeyID] == r.name {
			return row, nil
		}
	}
	return nil, fmt.Errorf("read %q: %w", r.name, ErrNoRecord)
}

// Format renders a record map as its id followed by key=value pairs in key
// order.
func Format(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k != KeyID {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(fields[KeyID])
	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(fields[k])
	}
	return b.String()
}

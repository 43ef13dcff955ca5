package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/tojos/internal/tojos"
)

// Select returns the records matching pred in insertion order.
//
// Names are read and the rows closed before pred runs, because pred reads
// record fields over the same single connection.
func (s *Store) Select(pred tojos.Predicate) ([]tojos.Record, error) {
	names, err := s.readNames()
	if err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}

	matched := make([]tojos.Record, 0, len(names))
	for _, name := range names {
		rec := &record{store: s, name: name}
		if pred(rec) {
			matched = append(matched, rec)
		}
	}

	return matched, nil
}

// readNames returns every record name ordered by seq.
func (s *Store) readNames() ([]string, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT name FROM records ORDER BY seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}

	return names, nil
}

// readField returns the value of key for the record name.
// Returns tojos.ErrKeyNotFound if the pair is not stored.
func (s *Store) readField(name, key string) (string, error) {
	db, err := s.conn()
	if err != nil {
		return "", err
	}

	var value string
	err = db.QueryRow(`
		SELECT value FROM fields WHERE name = ? AND key = ?
	`, name, normalize(key)).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", tojos.ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("query field: %w", err)
	}

	return value, nil
}

// readFields returns every stored pair of the record name.
func (s *Store) readFields(name string) (map[string]string, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT key, value FROM fields WHERE name = ? ORDER BY key ASC
	`, name)
	if err != nil {
		return nil, fmt.Errorf("query fields: %w", err)
	}
	defer rows.Close()

	fields := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan field: %w", err)
		}
		fields[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate fields: %w", err)
	}

	return fields, nil
}

// hasRecord reports whether a record named name exists.
func (s *Store) hasRecord(name string) (bool, error) {
	db, err := s.conn()
	if err != nil {
		return false, err
	}

	var one int
	err = db.QueryRow(`SELECT 1 FROM records WHERE name = ?`, name).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query record: %w", err)
	}
	return true, nil
}

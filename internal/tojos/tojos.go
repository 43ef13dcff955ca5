package tojos

import "fmt"

// KeyID is the reserved key holding a record's name.
const KeyID = "id"

// Record is a handle to a single entry of a Store.
//
// Identity and persistence belong to the store that produced the handle.
type Record interface {
	// Exists reports whether key is set on the record.
	Exists(key string) (bool, error)

	// Get returns the value under key.
	// Returns an error wrapping ErrKeyNotFound if the key is not set.
	Get(key string) (string, error)

	// Set stores value under key, overwriting any previous value.
	// Setting KeyID is rejected with ErrReadOnlyKey.
	Set(key, value string) error

	// Map returns a copy of every key/value pair of the record.
	Map() (map[string]string, error)
}

// Predicate tests a single record. It must not modify the record or the store.
type Predicate func(Record) bool

// Store is a mutable collection of named records.
//
// String returns a human-readable description of the store, used for
// diagnostics only.
type Store interface {
	fmt.Stringer

	// Add returns the record named name, creating it if it does not exist.
	Add(name string) (Record, error)

	// Select returns every record matching pred.
	// The returned slice is fully materialized and owned by the caller.
	Select(pred Predicate) ([]Record, error)

	// Close releases resources held by the store.
	Close() error
}

// All is a Predicate matching every record.
func All(Record) bool { return true }

package tojos

import "errors"

var (
	// ErrAcquireInterrupted is returned when the wait for a permit ends before
	// the permit is granted. The wrapped store is not called in that case.
	ErrAcquireInterrupted = errors.New("permit acquisition interrupted")

	// ErrKeyNotFound is returned by Record.Get for keys that are not set.
	ErrKeyNotFound = errors.New("key not found")

	// ErrNoRecord is returned by record operations when the record has
	// disappeared from the underlying medium.
	ErrNoRecord = errors.New("record not found")

	// ErrReadOnlyKey is returned when setting KeyID on a record.
	ErrReadOnlyKey = errors.New("key is read-only")
)

// Package tojos defines the record store abstraction and the decorator that
// makes a store safe for concurrent use.
//
// A Store holds named records. Each Record is a mapping from string keys to
// string values whose name is kept under the reserved key "id".
//
// # Concurrency
//
// Stores in this package and its siblings are single-threaded. Wrap them with
// Synchronized before sharing:
//
//	s := tojos.Synchronized(tojos.NewMemory())
//	rec, err := s.Add("item-1")
//
// Synchronized arbitrates calls with one permit per instance:
//   - Add takes the exclusive permit (no readers, no other writer)
//   - Select takes a shared permit (any number of concurrent readers)
//   - Close and String are forwarded without a permit
//
// Permits are granted in request order, so a queued Add is never overtaken by
// Select calls that arrive after it.
//
// Close and String must not be called while Add or Select calls are in
// flight. This is a caller obligation and is not enforced.
package tojos

// Package store provides a SQLite-backed record store.
//
// The store implements tojos.Store over two tables:
//   - records: one row per record name, with an insertion sequence
//   - fields: one row per (record, key) pair
//
// The "id" key of every record is virtual: it is the record name and is
// never stored in fields.
//
// # Ordering
//
// Select returns records in insertion order (ORDER BY seq ASC), so results
// are stable across runs.
//
// # Normalization
//
// Record names and keys are NFC-normalized at the SQL boundary, so
// canonically equivalent strings address the same record or key.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// A Store is not safe for concurrent use on its own. Wrap it with
// tojos.Synchronized before sharing it.
package store

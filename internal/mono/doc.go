// Package mono provides whole-table storage media for record stores.
//
// A Mono is read and written as a complete list of rows, each row being a
// mapping from string keys to string values. Callers change a table by
// reading it, modifying the rows and writing all of them back.
//
// Implementations:
//   - Memory: rows kept in process
//   - YAML: rows persisted as a YAML sequence of mappings in a single file
//
// Every Read returns rows the caller owns. Changes to them are not visible
// until passed to Write.
package mono

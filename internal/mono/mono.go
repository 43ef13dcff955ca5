package mono

import (
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// Mono is a storage medium holding a table of rows.
type Mono interface {
	fmt.Stringer

	// Read returns every row of the table.
	Read() ([]map[string]string, error)

	// Write replaces the table with rows.
	Write(rows []map[string]string) error

	// Close releases resources held by the medium.
	Close() error
}

// cloneRows deep-copies rows so callers and media never share maps.
func cloneRows(rows []map[string]string) []map[string]string {
	out := make([]map[string]string, len(rows))
	for i, row := range rows {
		cp := make(map[string]string, len(row))
		for k, v := range row {
			cp[k] = v
		}
		out[i] = cp
	}
	return out
}

// Normalize returns s in Unicode NFC form. Media that normalize rows expect
// names and keys used for lookups to be normalized the same way.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

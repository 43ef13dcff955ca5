package mono

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"gopkg.in/yaml.v3"
)

// YAML is a Mono persisted as a YAML document in a single file.
//
// The document is a sequence of mappings, one per row, such as
// "- id: item-1" followed by "  color: red".
//
// Keys and values are NFC-normalized when read and written, so canonically
// equivalent strings address the same key.
type YAML struct {
	path string
}

// NewYAML creates a YAML medium for the file at path.
// The file is created on the first Write.
func NewYAML(path string) *YAML {
	return &YAML{path: path}
}

// Read parses the file. A missing or empty file is an empty table.
func (y *YAML) Read() ([]map[string]string, error) {
	data, err := os.ReadFile(y.path)
	if errors.Is(err, os.ErrNotExist) {
		return []map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", y.path, err)
	}

	var rows []map[string]string
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse %s: %w", y.path, err)
	}

	return normalizeRows(rows), nil
}

// Write replaces the file contents with rows.
// The document is written to a temporary file first and renamed over the
// target, so readers never see a partial document.
func (y *YAML) Write(rows []map[string]string) error {
	data, err := yaml.Marshal(normalizeRows(rows))
	if err != nil {
		return fmt.Errorf("encode %s: %w", y.path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(y.path), filepath.Base(y.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", y.path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", y.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", y.path, err)
	}
	if err := os.Rename(tmpName, y.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", y.path, err)
	}

	return nil
}

// Close is a no-op; the file is only open during Read and Write.
func (y *YAML) Close() error {
	return nil
}

func (y *YAML) String() string {
	return fmt.Sprintf("yaml %s", y.path)
}

// normalizeRows returns NFC-normalized copies of rows.
func normalizeRows(rows []map[string]string) []map[string]string {
	out := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		cp := make(map[string]string, len(row))
		for k, v := range row {
			cp[Normalize(k)] = Normalize(v)
		}
		out = append(out, cp)
	}
	return out
}

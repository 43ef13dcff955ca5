package cli

import (
	"log/slog"

	"github.com/roach88/tojos/internal/mono"
	"github.com/roach88/tojos/internal/store"
	"github.com/roach88/tojos/internal/tojos"
)

// openStore opens the backend selected by the global flags and wraps it
// for concurrent use.
func openStore(opts *RootOptions) (*tojos.SynchronizedStore, error) {
	var origin tojos.Store
	switch {
	case opts.Database != "":
		st, err := store.Open(opts.Database)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to open database", err)
		}
		origin = st
	case opts.File != "":
		origin = tojos.NewDefault(mono.NewYAML(opts.File))
	default:
		origin = tojos.NewMemory()
	}

	slog.Debug("store opened", "store", origin.String())
	return tojos.Synchronized(origin, tojos.WithLogger(slog.Default())), nil
}

// closeStore closes s, logging rather than returning any error.
func closeStore(s tojos.Store) {
	if err := s.Close(); err != nil {
		slog.Warn("failed to close store", "store", s.String(), "error", err)
	}
}

// recordMaps materializes the fields of every record.
func recordMaps(recs []tojos.Record) ([]map[string]string, error) {
	maps := make([]map[string]string, 0, len(recs))
	for _, rec := range recs {
		fields, err := rec.Map()
		if err != nil {
			return nil, err
		}
		maps = append(maps, fields)
	}
	return maps, nil
}

package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/tojos/internal/tojos"
)

// NewSelectCommand creates the select command.
func NewSelectCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "select [key=value...]",
		Short: "Print records matching every given pair",
		Long: `Print every record whose fields equal all given key=value pairs.
With no pairs every record is printed. Records appear in store order.`,
		Example: `  tojos --db tojos.db select color=red
  tojos --file tojos.yaml --format json select`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelect(cmd, rootOpts, args)
		},
	}
}

func runSelect(cmd *cobra.Command, rootOpts *RootOptions, args []string) error {
	pairs, err := parsePairs(args)
	if err != nil {
		return err
	}

	s, err := openStore(rootOpts)
	if err != nil {
		return err
	}
	defer closeStore(s)

	recs, err := s.SelectContext(cmd.Context(), matchAll(pairs))
	if err != nil {
		return fmt.Errorf("select: %w", err)
	}

	records, err := recordMaps(recs)
	if err != nil {
		return fmt.Errorf("select: %w", err)
	}

	formatter := newFormatter(cmd, rootOpts)
	formatter.VerboseLog("Selected %d record(s) from %s", len(records), s)
	return formatter.Records(records)
}

// matchAll builds a predicate requiring every pair to equal the record's
// field. A record missing a key does not match.
func matchAll(pairs []pair) tojos.Predicate {
	return func(rec tojos.Record) bool {
		for _, p := range pairs {
			value, err := rec.Get(p.Key)
			if err != nil {
				if !errors.Is(err, tojos.ErrKeyNotFound) {
					slog.Warn("predicate could not read field", "key", p.Key, "error", err)
				}
				return false
			}
			if value != p.Value {
				return false
			}
		}
		return true
	}
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add [name] [key=value...]",
		Short: "Add a record and set its fields",
		Long: `Add a record, creating it if no record with that name exists, then set
each key=value pair on it and print the result.

The first argument is the record name unless it contains '='. When the name
is omitted a UUIDv7 is generated.`,
		Example: `  tojos --db tojos.db add item-1 color=red size=xl
  tojos --file tojos.yaml add color=blue`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, rootOpts, args)
		},
	}
}

func runAdd(cmd *cobra.Command, rootOpts *RootOptions, args []string) error {
	var name string
	if len(args) > 0 && !isPair(args[0]) {
		name, args = args[0], args[1:]
	} else {
		name = rootOpts.nameGenerator().Generate()
	}

	pairs, err := parsePairs(args)
	if err != nil {
		return err
	}

	formatter := newFormatter(cmd, rootOpts)

	s, err := openStore(rootOpts)
	if err != nil {
		return err
	}
	defer closeStore(s)

	rec, err := s.AddContext(cmd.Context(), name)
	if err != nil {
		return fmt.Errorf("add %q: %w", name, err)
	}
	for _, p := range pairs {
		if err := rec.Set(p.Key, p.Value); err != nil {
			return fmt.Errorf("set %s on %q: %w", p.Key, name, err)
		}
	}

	fields, err := rec.Map()
	if err != nil {
		return fmt.Errorf("read %q: %w", name, err)
	}

	formatter.VerboseLog("Added %s with %d pair(s) to %s", name, len(pairs), s)
	return formatter.Records([]map[string]string{fields})
}

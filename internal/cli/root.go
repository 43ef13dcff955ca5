package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "json" | "text"
	Database string // SQLite database path
	File     string // YAML file path

	// NameGenerator overrides record name generation (for testing).
	// If nil, defaults to UUIDv7Generator.
	NameGenerator NameGenerator
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the tojos CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tojos",
		Short: "tojos - named records in a shared store",
		Long: `Manage named records, each a set of key=value pairs, in a SQLite
database (--db), a YAML file (--file), or a throwaway in-memory store.

Every command goes through a synchronized store: additions are exclusive,
selections are shared.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if opts.Database != "" && opts.File != "" {
				return NewExitError(ExitCommandError, "--db and --file are mutually exclusive")
			}
			setupLogging(cmd.ErrOrStderr(), opts.Verbose)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to SQLite database")
	cmd.PersistentFlags().StringVar(&opts.File, "file", "", "path to YAML file")

	// Add subcommands
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewSelectCommand(opts))
	cmd.AddCommand(NewDescribeCommand(opts))

	return cmd
}

// setupLogging installs the default slog logger on w.
// Debug level when verbose, warnings only otherwise.
func setupLogging(w io.Writer, verbose bool) {
	logLevel := slog.LevelWarn
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// Execute runs the CLI with args and returns the process exit code.
// Errors are reported through OutputFormatter: on stdout in json mode so the
// envelope stays machine-readable, on stderr otherwise.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts := &RootOptions{}
	return execute(ctx, opts, args, stdout, stderr)
}

func execute(ctx context.Context, opts *RootOptions, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) && isUsageError(err) {
		err = WrapExitError(ExitCommandError, "invalid usage", err)
	}

	w := stderr
	if opts.Format == "json" {
		w = stdout
	}
	formatter := &OutputFormatter{Format: opts.Format, Writer: w, Verbose: opts.Verbose}
	_ = formatter.Error(errorCode(err), err.Error(), nil)
	return GetExitCode(err)
}

// isUsageError reports whether err came from cobra's argument or flag
// parsing rather than from a command's RunE.
func isUsageError(err error) bool {
	msg := err.Error()
	for _, prefix := range []string{"unknown command", "unknown flag", "unknown shorthand flag", "flag needs an argument", "invalid argument", "accepts "} {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	return false
}

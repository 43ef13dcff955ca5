package cli

import (
	"github.com/spf13/cobra"
)

// NewDescribeCommand creates the describe command.
func NewDescribeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "describe",
		Short:         "Print a description of the configured store",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer closeStore(s)

			formatter := newFormatter(cmd, rootOpts)
			if rootOpts.Format == "json" {
				return formatter.Success(map[string]string{"store": s.String()})
			}
			return formatter.Success(s.String())
		},
	}
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tdnf-go/tdnf-util/internal/version"
)

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			//nolint:errcheck // Writing to stdout, error not actionable
			fmt.Fprintln(cmd.OutOrStdout(), version.GetFullVersion())
		},
	}
}

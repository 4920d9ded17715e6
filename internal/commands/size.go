package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tdnf-go/tdnf-util/internal/ui"
	"github.com/tdnf-go/tdnf-util/pkg/errcode"
	"github.com/tdnf-go/tdnf-util/pkg/format"
)

func NewSizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "size <bytes>...",
		Short: "Format byte counts as human-readable sizes",
		Long: `Format each byte count with two decimals and a b, k, M or G unit.

Example:
  tdnf-util size 0 1024 52428800`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSize,
	}
}

func runSize(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	sizes := make([]uint64, 0, len(args))
	for _, arg := range args {
		n, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return ui.NewValidationError(errcode.InvalidParameter("size", fmt.Sprintf("%q is not a byte count", arg)))
		}
		sizes = append(sizes, n)
	}

	out := cmd.OutOrStdout()
	for _, n := range sizes {
		//nolint:errcheck // Writing to stdout, error not actionable
		fmt.Fprintln(out, format.FormatSize(n))
	}
	return nil
}

package commands

import (
	"fmt"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tdnf-go/tdnf-util/internal/ui"
	"github.com/tdnf-go/tdnf-util/pkg/errcode"
)

func NewStrerrorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strerror <code>...",
		Short: "Describe tdnf error codes",
		Long: `Print the symbolic name and description of each error code.

Codes above 1600 are system errors (errno + 1600). Use --errno to look up a raw errno.

Examples:
  tdnf-util strerror 1006
  tdnf-util strerror 1602
  tdnf-util strerror --errno 13`,
		Args: cobra.MinimumNArgs(1),
		RunE: runStrerror,
	}

	cmd.Flags().Bool("errno", false, "Treat arguments as raw errno values")

	return cmd
}

func runStrerror(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	rawErrno, _ := cmd.Flags().GetBool("errno")

	codes := make([]errcode.Code, 0, len(args))
	for _, arg := range args {
		n, err := strconv.ParseUint(arg, 10, 32)
		if err != nil {
			return ui.NewValidationError(errcode.InvalidParameter("strerror", fmt.Sprintf("%q is not an error code", arg)))
		}
		if rawErrno {
			codes = append(codes, errcode.System(syscall.Errno(n)))
		} else {
			codes = append(codes, errcode.FromNumeric(uint32(n)))
		}
	}

	r := errcode.Default()
	out := cmd.OutOrStdout()
	for _, code := range codes {
		//nolint:errcheck // Writing to stdout, error not actionable
		fmt.Fprintf(out, "%s %s: %s\n", code, r.Name(code), r.Describe(code))
	}
	return nil
}

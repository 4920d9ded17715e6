package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tdnf-go/tdnf-util/internal/ui"
	"github.com/tdnf-go/tdnf-util/pkg/errcode"
)

func NewErrorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "errors",
		Short: "List the error description table",
		Long: `List the effective error table: entries from the configured error-table file
followed by the built-in descriptions. Entries hidden by an earlier entry for the
same code are only shown with --all.`,
		Args: cobra.NoArgs,
		RunE: runErrors,
	}

	cmd.Flags().Bool("all", false, "Include entries shadowed by an earlier entry for the same code")

	return cmd
}

func runErrors(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	all, _ := cmd.Flags().GetBool("all")

	out := cmd.OutOrStdout()
	seen := make(map[errcode.Code]bool)
	for _, e := range errcode.Default().Table() {
		shadowed := seen[e.Code]
		seen[e.Code] = true
		if shadowed && !all {
			continue
		}

		line := fmt.Sprintf("%s %s: %s",
			ui.CodeStyle.Render(e.Code.String()),
			ui.NameStyle.Render(e.Name),
			e.Description)
		if shadowed {
			line += ui.PendingStyle.Render(" (shadowed)")
		}
		//nolint:errcheck // Writing to stdout, error not actionable
		fmt.Fprintln(out, line)
	}
	return nil
}

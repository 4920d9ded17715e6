package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tdnf-go/tdnf-util/internal/ui"
	"github.com/tdnf-go/tdnf-util/pkg/format"
	"github.com/tdnf-go/tdnf-util/pkg/fsutil"
)

func NewDuCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "du <dir>",
		Short: "Report the size of files under a directory",
		Long: `List every regular file under dir with its size, followed by the total.

Exclude patterns without '/' match any path element, patterns ending in '/'
match a directory from dir, and other patterns match the relative path.

Examples:
  tdnf-util du /var/cache/tdnf
  tdnf-util du --summarize --exclude '*.solv' /var/cache/tdnf`,
		Args: cobra.ExactArgs(1),
		RunE: runDu,
	}

	cmd.Flags().StringArrayP("exclude", "x", nil, "Skip paths matching this pattern (repeatable)")
	cmd.Flags().BoolP("summarize", "s", false, "Only print the total")

	return cmd
}

func runDu(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	exclude, _ := cmd.Flags().GetStringArray("exclude")
	summarize, _ := cmd.Flags().GetBool("summarize")

	report, err := fsutil.Usage(cmd.Context(), installRootFs(cmd), args[0], exclude)
	if err != nil {
		return ui.NewFileSystemError(err)
	}

	out := cmd.OutOrStdout()
	if !summarize {
		for _, f := range report.Files {
			//nolint:errcheck // Writing to stdout, error not actionable
			fmt.Fprintf(out, "%12s  %s\n", format.FormatSizeInt(f.Size), f.Path)
		}
	}
	//nolint:errcheck // Writing to stdout, error not actionable
	fmt.Fprintf(out, "%12s  %s\n", format.FormatSizeInt(report.Total), ui.BoldStyle.Render("total"))
	return nil
}

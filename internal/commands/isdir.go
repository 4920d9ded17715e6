package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tdnf-go/tdnf-util/internal/ui"
	"github.com/tdnf-go/tdnf-util/pkg/fsutil"
)

func NewIsDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "isdir <path>",
		Short: "Report whether a path is a directory",
		Long: `Print true if path is a directory and false if it is some other kind of file.
A path that does not exist is an error.

Example:
  tdnf-util isdir /var/cache/tdnf`,
		Args: cobra.ExactArgs(1),
		RunE: runIsDir,
	}
}

func runIsDir(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	isDir, err := fsutil.NewDirMaker(installRootFs(cmd)).IsDir(args[0])
	if err != nil {
		return ui.NewFileSystemError(err)
	}

	//nolint:errcheck // Writing to stdout, error not actionable
	fmt.Fprintln(cmd.OutOrStdout(), ui.FormatBool(isDir))
	return nil
}

package commands

import (
	"fmt"
	"io/fs"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/tdnf-go/tdnf-util/internal/ui"
	"github.com/tdnf-go/tdnf-util/pkg/config"
	"github.com/tdnf-go/tdnf-util/pkg/fsutil"
)

func NewMkdirCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mkdir <dir>...",
		Short: "Create directories",
		Long: `Create each directory with the configured permission (dir-mode, default 0755).

Without --parents, an already existing path is left untouched. With --parents,
missing ancestors are created and an already existing path is an error unless
--exist-ok is set.

Examples:
  tdnf-util mkdir /var/cache/tdnf
  tdnf-util mkdir -p --installroot /mnt/sysroot /var/lib/tdnf/history`,
		Args: cobra.MinimumNArgs(1),
		RunE: runMkdir,
	}

	cmd.Flags().BoolP("parents", "p", false, "Create missing parent directories")
	cmd.Flags().Bool("exist-ok", false, "With --parents, succeed when the directory already exists")
	cmd.Flags().String("mode", "", "Octal permission for new directories (overrides dir-mode)")

	return cmd
}

func runMkdir(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	parents, _ := cmd.Flags().GetBool("parents")
	existOK, _ := cmd.Flags().GetBool("exist-ok")

	mode, err := resolveDirMode(cmd)
	if err != nil {
		return ui.NewValidationError(err)
	}

	maker := fsutil.NewDirMaker(installRootFs(cmd), fsutil.WithMode(mode))

	out := cmd.OutOrStdout()
	for _, dir := range args {
		switch {
		case parents && existOK:
			err = maker.EnsureDir(dir)
		case parents:
			err = maker.MakeDirs(dir)
		default:
			err = maker.MakeDir(dir)
		}
		if err != nil {
			return ui.NewFileSystemError(err)
		}
		//nolint:errcheck // Writing to stdout, error not actionable
		fmt.Fprint(out, ui.FormatSuccess("Directory ready: %s", dir))
	}
	return nil
}

// resolveDirMode returns --mode when given, otherwise the configured dir-mode.
func resolveDirMode(cmd *cobra.Command) (fs.FileMode, error) {
	if flag, _ := cmd.Flags().GetString("mode"); flag != "" {
		return config.ParseDirMode(flag)
	}

	cfg, err := config.GetConfigFromContext(cmd)
	if err != nil {
		return fsutil.DefaultDirMode, nil //nolint:nilerr // Invoked outside the root command
	}
	return cfg.GetDirMode()
}

// installRootFs returns the host filesystem, rooted at --installroot when set.
func installRootFs(cmd *cobra.Command) afero.Fs {
	root, _ := cmd.Flags().GetString("installroot")
	if root == "" {
		return afero.NewOsFs()
	}
	return afero.NewBasePathFs(afero.NewOsFs(), root)
}

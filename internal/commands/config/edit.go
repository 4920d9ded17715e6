package config

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tdnf-go/tdnf-util/internal/ui"
	"github.com/tdnf-go/tdnf-util/pkg/config"
	"github.com/tdnf-go/tdnf-util/pkg/errcode"
)

func newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open config file in editor",
		Long: `Open the configuration file in your default editor.

The editor is determined by (in order):
  1. $EDITOR environment variable
  2. $VISUAL environment variable
  3. Falls back to 'vi' on Unix, 'notepad' on Windows

Example:
  tdnf-util config edit
  EDITOR=nano tdnf-util config edit`,
		Args: cobra.NoArgs,
		RunE: runEdit,
	}
}

func runEdit(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	// Get config file path
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		return fmt.Errorf("config file not found")
	}

	// Determine editor
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		// Default editor based on OS
		if runtime.GOOS == "windows" {
			editor = "notepad"
		} else {
			editor = "vi"
		}
	}

	//nolint:errcheck // Writing to stdout, error not actionable
	fmt.Fprintf(cmd.OutOrStdout(), "Opening %s with %s...\n", configFile, editor)

	// Execute editor
	editorCmd := exec.CommandContext(cmd.Context(), editor, configFile) //nolint:gosec // Editor from user's environment variable
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}

	return validateEditedConfig(cmd)
}

// validateEditedConfig re-reads the config file and warns about values that
// the next command would reject.
func validateEditedConfig(cmd *cobra.Command) error {
	if err := viper.ReadInConfig(); err != nil {
		return ui.NewConfigurationError(fmt.Errorf("edited config is not valid YAML: %w", err))
	}

	for _, key := range config.GetUserFacingKeys() {
		normalized := config.NormalizeKey(key)
		value := viper.GetString(normalized)
		if value == "" {
			continue
		}
		if err := config.ValidateValue(normalized, value); err != nil {
			//nolint:errcheck // Writing to stderr, error not actionable
			fmt.Fprintln(cmd.ErrOrStderr(), ui.WarningStyle.Render(fmt.Sprintf("Warning: %s: %s", key, errcode.DescribeError(err))))
		}
	}
	return nil
}

package config

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tdnf-go/tdnf-util/internal/ui"
	"github.com/tdnf-go/tdnf-util/pkg/config"
	"github.com/tdnf-go/tdnf-util/pkg/errcode"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Long: `Get a configuration value from ~/.tdnf-util/config.yaml

Examples:
  tdnf-util config get dir-mode
  tdnf-util config get error-table`,
		Args: cobra.ExactArgs(1),
		RunE: runGet,
	}
}

func runGet(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	key := args[0]
	normalizedKey := config.NormalizeKey(key)

	// Validate that this is a recognized user-facing config key
	if !config.IsValidUserFacingKey(normalizedKey) {
		return ui.NewValidationError(errcode.InvalidParameter("config get",
			fmt.Sprintf("'%s' is not a recognized configuration key. Run 'tdnf-util config set --help' for valid keys", key)))
	}

	if viper.GetString(normalizedKey) == "" {
		return ui.NewConfigurationError(errcode.New(errcode.CodeNotFound, "config get", key))
	}

	//nolint:errcheck // Writing to stdout, error not actionable
	fmt.Fprintln(cmd.OutOrStdout(), viper.Get(normalizedKey))
	return nil
}

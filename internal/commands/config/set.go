package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tdnf-go/tdnf-util/internal/ui"
	"github.com/tdnf-go/tdnf-util/pkg/config"
	"github.com/tdnf-go/tdnf-util/pkg/errcode"
)

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value in ~/.tdnf-util/config.yaml

Valid keys:
  log-level    - ` + config.GetConfigKeyDescription("loglevel") + `
  dir-mode     - ` + config.GetConfigKeyDescription("dirmode") + `
  error-table  - ` + config.GetConfigKeyDescription("errortable") + `

Examples:
  tdnf-util config set log-level debug
  tdnf-util config set dir-mode 0750
  tdnf-util config set error-table /etc/tdnf/errors.toml`,
		Args: cobra.ExactArgs(2),
		RunE: runSet,
	}
}

func runSet(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	key := args[0]
	value := args[1]

	normalizedKey := config.NormalizeKey(key)

	// Validate that this is a recognized user-facing config key
	if !config.IsValidUserFacingKey(normalizedKey) {
		//nolint:errcheck // Writing to stderr, error not actionable
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: '%s' is not a recognized configuration key\n\n", key)
		//nolint:errcheck // Writing to stderr, error not actionable
		fmt.Fprintf(cmd.ErrOrStderr(), "Valid configuration keys:\n")

		for _, validKey := range config.GetUserFacingKeys() {
			//nolint:errcheck // Writing to stderr, error not actionable
			fmt.Fprintf(cmd.ErrOrStderr(), "  %s - %s\n", validKey, config.GetConfigKeyDescription(config.NormalizeKey(validKey)))
		}
		return ui.NewSilentError(errcode.InvalidParameter("config set", "invalid configuration key"))
	}

	cfg, err := config.GetConfigFromContext(cmd)
	if err != nil {
		return ui.NewInternalError(err)
	}

	if err := cfg.Set(normalizedKey, value); err != nil {
		return ui.NewValidationError(err)
	}

	// Save to config file
	if err := config.Save(cfg); err != nil {
		return ui.NewConfigurationError(err)
	}

	//nolint:errcheck // Writing to stdout, error not actionable
	fmt.Fprint(cmd.OutOrStdout(), ui.FormatSuccess("Set %s = %s", key, value))
	return nil
}

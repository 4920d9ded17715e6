package config

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tdnf-go/tdnf-util/pkg/config"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all configuration",
		Long: `List all configuration keys and values from ~/.tdnf-util/config.yaml

Example:
  tdnf-util config list`,
		Args: cobra.NoArgs,
		RunE: runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	out := cmd.OutOrStdout()

	// GetUserFacingKeys is already in display order
	found := false
	for _, key := range config.GetUserFacingKeys() {
		normalized := config.NormalizeKey(key)
		if viper.GetString(normalized) == "" {
			continue
		}
		found = true
		//nolint:errcheck // Writing to stdout, error not actionable
		fmt.Fprintf(out, "%s: %v\n", key, viper.Get(normalized))
	}

	if !found {
		//nolint:errcheck // Writing to stdout, error not actionable
		fmt.Fprintln(out, "No configuration found")
	}
	return nil
}

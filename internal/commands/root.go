package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	configCmd "github.com/tdnf-go/tdnf-util/internal/commands/config"
	"github.com/tdnf-go/tdnf-util/internal/ui"
	"github.com/tdnf-go/tdnf-util/pkg/config"
	"github.com/tdnf-go/tdnf-util/pkg/errcode"
	"github.com/tdnf-go/tdnf-util/pkg/logging"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tdnf-util",
		Short: "tdnf client utilities",
		Long: `Utilities shared by the tdnf package manager client: error code lookup,
size formatting, glob detection and directory creation.`,
		// Silence errors - we handle them in main.go
		// Individual commands set cmd.SilenceUsage = true to hide usage on errors.
		SilenceErrors: true,
		// Load config once and store in context for all subcommands
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			displayOpts := ui.NewDisplayConfig(cmd)
			displayOpts.Apply()

			cfg, err := config.Load()
			if err != nil {
				cmd.SilenceUsage = true
				return ui.NewConfigurationError(fmt.Errorf("failed to load config: %w", err))
			}

			if err := setupLogging(cmd, cfg); err != nil {
				cmd.SilenceUsage = true
				return ui.NewConfigurationError(fmt.Errorf("failed to set up logging: %w", err))
			}

			// A broken error table must not block 'config set' from fixing it.
			table, err := cfg.LoadErrorTable()
			if err != nil {
				//nolint:errcheck // Writing to stderr, error not actionable
				fmt.Fprintln(cmd.ErrOrStderr(), ui.WarningStyle.Render(
					"Warning: using built-in error descriptions: "+errcode.DescribeError(err)))
				table = errcode.DefaultTable()
			}
			errcode.SetDefault(errcode.NewResolver(table))

			slog.Debug("Config loaded successfully", "path", config.GetConfigPath(), "errors", len(table))

			ctx := context.WithValue(cmd.Context(), config.GetContextKey(), cfg)
			cmd.SetContext(ctx)
			return nil
		},
	}

	// Global flags (persistent flags are inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file instead of stderr (implies --verbose)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().String("installroot", "", "Resolve filesystem paths relative to this directory")

	rootCmd.AddCommand(NewSizeCmd())
	rootCmd.AddCommand(NewStrerrorCmd())
	rootCmd.AddCommand(NewErrorsCmd())
	rootCmd.AddCommand(NewIsGlobCmd())
	rootCmd.AddCommand(NewMatchCmd())
	rootCmd.AddCommand(NewGlobCmd())
	rootCmd.AddCommand(NewMkdirCmd())
	rootCmd.AddCommand(NewIsDirCmd())
	rootCmd.AddCommand(NewDuCmd())
	rootCmd.AddCommand(NewVersionCmd())
	rootCmd.AddCommand(configCmd.NewConfigCmd())

	return rootCmd
}

// setupLogging enables logging at the configured level when --verbose or --log-file
// is set, and discards it otherwise.
func setupLogging(cmd *cobra.Command, cfg *config.Config) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logFile, _ := cmd.Flags().GetString("log-file")

	if logFile != "" {
		path, err := logging.SetupFile(logFile, cfg.GetLogLevel())
		if err != nil {
			return err
		}
		slog.Debug("Logging to file", "path", path)
		return nil
	}

	if verbose {
		logging.Setup(cmd.ErrOrStderr(), cfg.GetLogLevel())
		return nil
	}

	logging.Disable()
	return nil
}

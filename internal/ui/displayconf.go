package ui

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// DisplayConfig contains display-related configuration
type DisplayConfig struct {
	DisableColor bool
	IsTerminal   bool
}

// PlainOutput reports whether output should carry no ANSI styling.
func (d DisplayConfig) PlainOutput() bool {
	return d.DisableColor || !d.IsTerminal
}

// Apply sets the lipgloss color profile for the rest of the process.
func (d DisplayConfig) Apply() {
	if d.PlainOutput() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// NewDisplayConfig extracts display options from persistent flags and TTY detection
func NewDisplayConfig(cmd *cobra.Command) DisplayConfig {
	noColor, _ := cmd.Flags().GetBool("no-color")

	// Only stdout matters: errors go to stderr but are rendered with the same profile.
	stdoutIsTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	_, noColorEnv := os.LookupEnv("NO_COLOR")

	opts := DisplayConfig{
		DisableColor: noColor || noColorEnv,
		IsTerminal:   stdoutIsTTY,
	}

	slog.Debug("Display options determined",
		"command", cmd.Name(),
		"no-color-flag", noColor,
		"no-color-env", noColorEnv,
		"stdout-is-tty", stdoutIsTTY,
		"plain-output", opts.PlainOutput(),
	)

	return opts
}

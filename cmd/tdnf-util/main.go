package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/tdnf-go/tdnf-util/internal/commands"
	"github.com/tdnf-go/tdnf-util/internal/ui"
)

func main() {
	// Long walks (du, glob) stop on the first interrupt
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := commands.NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		// Commands handle their own error presentation logic
		// If we get an error here, check if it's an unknown command error
		// and show usage if so
		errMsg := err.Error()
		switch {
		case strings.HasPrefix(errMsg, "unknown command"):
			// Unknown command - we've suppressed usage for commands, so we need to manually do this
			_ = rootCmd.Usage()
			fmt.Fprintln(os.Stderr)
			fmt.Fprintln(os.Stderr, err)
		case strings.HasPrefix(errMsg, "unknown flag"):
			// Unknown flag - Cobra already showed usage, don't duplicate
			fmt.Fprintln(os.Stderr, err)
		default:
			// Coded errors render with their numeric code so scripts can look them up
			fmt.Fprint(os.Stderr, ui.FormatError(err))
		}
		os.Exit(1)
	}
}

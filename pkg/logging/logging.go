// Package logging configures the global slog logger used across the client.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// Setup configures the global slog logger to write text records to w at level.
//
// Example usage:
//
//	logging.Setup(os.Stderr, slog.LevelDebug)
//	slog.Debug("Creating directory", "path", dir)
func Setup(w io.Writer, level slog.Level) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// SetupFile configures the global logger to append to a log file.
// An empty path selects a timestamped file in the temp directory.
//
// Returns the fully qualified log file path.
func SetupFile(path string, level slog.Level) (string, error) {
	if path == "" {
		timestamp := time.Now().Format("2006-01-02T15-04-05")
		path = filepath.Join(os.TempDir(), fmt.Sprintf("tdnf-util-%s.log", timestamp))
	}

	logFile, err := os.OpenFile(path, //nolint:gosec // Path chosen by the user or the temp dir
		os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return "", err
	}

	Setup(logFile, level)
	return path, nil
}

// Disable configures slog to discard all log output.
// This is used when --verbose is not set.
func Disable() {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	})
	slog.SetDefault(slog.New(handler))
}

// ParseLevel converts a configured level name into a slog.Level.
// Empty or unrecognised names map to Info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetupForTesting configures slog to write to w for the duration of a test.
// The original logger is restored when the test completes.
//
// Example usage:
//
//	func TestMakeDirs(t *testing.T) {
//	    var buf bytes.Buffer
//	    logging.SetupForTesting(t, &buf, slog.LevelDebug)
//
//	    _ = fsutil.MakeDirs(dir)
//
//	    assert.Contains(t, buf.String(), "Creating directory")
//	}
func SetupForTesting(t testing.TB, w io.Writer, level slog.Level) {
	original := slog.Default()
	Setup(w, level)

	t.Cleanup(func() {
		slog.SetDefault(original)
	})
}

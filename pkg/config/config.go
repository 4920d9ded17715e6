package config

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tdnf-go/tdnf-util/pkg/errcode"
	"github.com/tdnf-go/tdnf-util/pkg/fsutil"
	"github.com/tdnf-go/tdnf-util/pkg/logging"
)

const (
	DefaultConfigDir  = ".tdnf-util"
	DefaultConfigFile = "config.yaml"

	// DefaultDirMode is the octal permission for directories created by the CLI.
	DefaultDirMode = "0755"

	// ConfigPathEnv overrides the config file location.
	ConfigPathEnv = "TDNF_UTIL_CONFIG_PATH"
)

// Config holds the CLI configuration
type Config struct {
	LogLevel   string
	DirMode    string
	ErrorTable string // Path to a TOML error table that overrides the built-in descriptions
}

// ValidUserFacingConfigKeys lists config keys that users can get and set
var ValidUserFacingConfigKeys = map[string]bool{
	"loglevel":   true,
	"dirmode":    true,
	"errortable": true,
}

// IsValidUserFacingKey checks if a config key is a recognized user-facing key
func IsValidUserFacingKey(key string) bool {
	return ValidUserFacingConfigKeys[key]
}

// GetConfigKeyDescription returns a description for a config key
func GetConfigKeyDescription(key string) string {
	descriptions := map[string]string{
		"loglevel":   "Logging level (debug/info/warn/error, default: info)",
		"dirmode":    "Octal permission for created directories (default: 0755)",
		"errortable": "Path to a TOML file of error descriptions overriding the built-in table",
	}
	return descriptions[key]
}

// GetUserFacingKeys returns the list of keys users should interact with
func GetUserFacingKeys() []string {
	return []string{
		"log-level",
		"dir-mode",
		"error-table",
	}
}

// NormalizeKey converts a user-facing kebab-case key into its stored form
func NormalizeKey(key string) string {
	return strings.ToLower(strings.ReplaceAll(key, "-", ""))
}

// Load reads the configuration from ~/.tdnf-util/config.yaml
func Load() (*Config, error) {
	configPath := getConfigPath()
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")
	viper.SetDefault("dirmode", DefaultDirMode)

	// Create config file if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := fsutil.EnsureDir(filepath.Dir(configPath)); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}
		if err := viper.WriteConfig(); err != nil {
			return nil, fmt.Errorf("failed to create config file: %w", err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := &Config{
		LogLevel:   viper.GetString("loglevel"),
		DirMode:    viper.GetString("dirmode"),
		ErrorTable: viper.GetString("errortable"),
	}

	slog.Debug("Config loaded", "path", configPath, "dirmode", config.DirMode, "errortable", config.ErrorTable)
	return config, nil
}

// Save writes the current configuration to disk
func Save(config *Config) error {
	viper.Set("loglevel", config.LogLevel)
	viper.Set("dirmode", config.DirMode)
	viper.Set("errortable", config.ErrorTable)

	if err := viper.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// ValidateValue checks a value before it is stored under a normalized key
func ValidateValue(key, value string) error {
	switch key {
	case "loglevel":
		switch strings.ToLower(value) {
		case "debug", "info", "warn", "warning", "error":
			return nil
		}
		return fmt.Errorf("invalid log level %q: expected debug, info, warn or error", value)
	case "dirmode":
		_, err := ParseDirMode(value)
		return err
	case "errortable":
		if value == "" {
			return nil
		}
		if _, err := errcode.LoadTableFile(value); err != nil {
			return fmt.Errorf("invalid error table: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("'%s' is not a recognized configuration key", key)
	}
}

// Set validates value and stores it under a normalized key.
func (c *Config) Set(key, value string) error {
	if err := ValidateValue(key, value); err != nil {
		return err
	}

	switch key {
	case "loglevel":
		c.LogLevel = strings.ToLower(value)
	case "dirmode":
		c.DirMode = value
	case "errortable":
		c.ErrorTable = value
	}
	return nil
}

// ParseDirMode parses an octal permission such as "0755" or "755"
func ParseDirMode(value string) (fs.FileMode, error) {
	s := strings.TrimPrefix(strings.TrimSpace(value), "0o")
	mode, err := strconv.ParseUint(s, 8, 32)
	if err != nil || mode > 0o777 {
		return 0, errcode.InvalidParameter("parse dir mode", fmt.Sprintf("%q is not an octal permission between 0000 and 0777", value))
	}
	return fs.FileMode(mode), nil
}

// GetDirMode returns the configured directory permission.
// Defaults to 0755 if not set.
func (c *Config) GetDirMode() (fs.FileMode, error) {
	if c.DirMode == "" {
		return fsutil.DefaultDirMode, nil
	}
	return ParseDirMode(c.DirMode)
}

// GetLogLevel returns the configured log level as slog.Level.
// Defaults to Info if not set or invalid.
func (c *Config) GetLogLevel() slog.Level {
	return logging.ParseLevel(c.LogLevel)
}

// LoadErrorTable returns the configured error table followed by the built-in one,
// so configured entries take precedence.
func (c *Config) LoadErrorTable() (errcode.Table, error) {
	if c.ErrorTable == "" {
		return errcode.DefaultTable(), nil
	}

	table, err := errcode.LoadTableFile(c.ErrorTable)
	if err != nil {
		return nil, err
	}
	return append(table, errcode.DefaultTable()...), nil
}

// getConfigPath returns the full path to the config file
func getConfigPath() string {
	if path := os.Getenv(ConfigPathEnv); path != "" {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", DefaultConfigDir, DefaultConfigFile)
	}

	return filepath.Join(homeDir, DefaultConfigDir, DefaultConfigFile)
}

// GetConfigPath returns the path Load reads from
func GetConfigPath() string {
	return getConfigPath()
}

// Context key for storing config
type contextKey string

const configContextKey contextKey = "config"

// GetConfigFromContext retrieves the config from the command context
func GetConfigFromContext(cmd *cobra.Command) (*Config, error) {
	ctx := cmd.Context()
	if ctx == nil {
		return nil, fmt.Errorf("no context available")
	}

	cfg, ok := ctx.Value(configContextKey).(*Config)
	if !ok || cfg == nil {
		return nil, fmt.Errorf("config not found in context")
	}

	return cfg, nil
}

// GetContextKey returns the context key used for storing config
func GetContextKey() interface{} {
	return configContextKey
}

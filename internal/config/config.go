package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// UIMode selects the interactive front end
type UIMode string

const (
	UIModeAuto  UIMode = "auto"  // TUI on a terminal, line prompts otherwise
	UIModeTUI   UIMode = "tui"
	UIModePlain UIMode = "plain"
)

// Config holds all application configuration
type Config struct {
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// UIConfig holds front end configuration
type UIConfig struct {
	Mode        UIMode `mapstructure:"mode"`
	Suggestions int    `mapstructure:"suggestions"` // Max keyword suggestions, 0 disables
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"` // Path, "stderr", or empty to discard
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Mode:        UIModeAuto,
			Suggestions: 3,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "flicks", "flicks.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "flicks", "flicks.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "flicks")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "flicks")
	}
}

// LoadConfig loads configuration from file and environment.
// An empty path searches the default locations; a missing file there is fine.
// An explicit path must exist.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	v := viper.New()

	v.SetDefault("ui.mode", string(cfg.UI.Mode))
	v.SetDefault("ui.suggestions", cfg.UI.Suggestions)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Environment variable overrides, e.g. FLICKS_LOGGING_LEVEL
	v.SetEnvPrefix("FLICKS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated and numeric settings
func (c *Config) Validate() error {
	switch c.UI.Mode {
	case UIModeAuto, UIModeTUI, UIModePlain:
	default:
		return fmt.Errorf("invalid ui.mode %q (want auto, tui, or plain)", c.UI.Mode)
	}
	if c.UI.Suggestions < 0 {
		return fmt.Errorf("invalid ui.suggestions %d (must not be negative)", c.UI.Suggestions)
	}
	return nil
}

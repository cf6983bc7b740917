// Package config provides configuration loading and validation for the
// insertdatetime command. Values come from defaults, an optional YAML file,
// and IDT_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// ErrConfiguration indicates the configuration could not be read, parsed,
// or validated.
var ErrConfiguration = errors.New("configuration error")

// LogConfig controls the ambient logger.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// Config holds the command configuration.
type Config struct {
	// Formats is the ordered list of specifiers rendered for the selection
	// panel: reserved timestamp names or strftime patterns. Entries are not
	// validated here; invalid ones are dropped at format time. A missing
	// setting leaves the list empty, which the command surfaces as a notice
	// rather than an error.
	Formats []string `mapstructure:"formats"`

	// FixedWidthFont asks the selection panel for a fixed-width font.
	FixedWidthFont bool `mapstructure:"fixed_width_font"`

	Log LogConfig `mapstructure:"log"`
}

// Load reads the configuration file at path, which may be absent, applies
// defaults and IDT_* environment variables, and validates the result.
func Load(path string) (*Config, error) {
	slog.Debug("loading configuration", "path", path)

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("IDT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("formats", []string{})
	v.SetDefault("fixed_width_font", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: failed to read %s: %v", ErrConfiguration, path, err)
		}
		slog.Debug("configuration file not found, using defaults", "path", path)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", ErrConfiguration, path, err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	return cfg, nil
}

// SPDX-License-Identifier: Apache-2.0

// Package config resolves run settings from flags, environment and an
// optional config file.
package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. SAMPLECONF_DELIMITER.
const EnvPrefix = "SAMPLECONF"

// Config holds the settings shared by the commands.
type Config struct {
	Delimiter string `mapstructure:"delimiter"`
	Force     bool   `mapstructure:"force"`
	Verbose   int    `mapstructure:"verbose"`
	Quiet     int    `mapstructure:"quiet"`
}

// flagNames maps config keys to the command-line flags that set them.
var flagNames = map[string]string{
	"delimiter": "delimiter",
	"force":     "force-overwrite",
	"verbose":   "verbose",
	"quiet":     "quiet",
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{Delimiter: "\t"}
}

// Load resolves settings with precedence flags > environment > file >
// defaults. Flags missing from flags are skipped; path may be empty.
func Load(flags *pflag.FlagSet, path string) (*Config, error) {
	def := DefaultConfig()

	v := viper.New()
	v.SetDefault("delimiter", def.Delimiter)
	v.SetDefault("force", def.Force)
	v.SetDefault("verbose", def.Verbose)
	v.SetDefault("quiet", def.Quiet)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if flags != nil {
		for key, name := range flagNames {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Validate rejects a delimiter that is not exactly one character.
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return &ConfigError{Field: "delimiter", Message: fmt.Sprintf("needs to be exactly one character, got %q", c.Delimiter)}
	}
	return nil
}

// DelimiterRune returns the delimiter as a rune. Call Validate first.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// ConfigError represents an invalid setting.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}

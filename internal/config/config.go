// Package config loads flashwin settings from defaults, a global and a local
// JSON file, and FLASHWIN_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ariel-frischer/flashwin/internal/flash"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "FLASHWIN_"

// Configuration represents the flashwin configuration
type Configuration struct {
	ClassName string                `koanf:"class_name" json:"class_name" validate:"required,max=256"`
	TimeoutMS int                   `koanf:"timeout_ms" json:"timeout_ms" validate:"min=0,max=60000"`
	LogLevel  string                `koanf:"log_level" json:"log_level" validate:"oneof=debug info warn error"`
	Attention flash.AttentionConfig `koanf:"attention" json:"attention"`
}

// Timeout returns the delay between flashes.
func (c *Configuration) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// Level returns the parsed log level, falling back to warn.
func (c *Configuration) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return lvl
}

// FlashOptions converts the configuration into flash.Options.
func (c *Configuration) FlashOptions(log logrus.FieldLogger) []flash.Option {
	return []flash.Option{
		flash.WithClassName(c.ClassName),
		flash.WithTimeout(c.Timeout()),
		flash.WithLogger(log),
	}
}

// GlobalConfigPath returns ~/.flashwin/config.json, or "" if the home
// directory is unknown.
func GlobalConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".flashwin", "config.json")
}

// Load loads configuration from global, local, and environment sources
// Priority: Environment variables > Local config > Global config > Defaults
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	if globalPath := GlobalConfigPath(); globalPath != "" {
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg, localConfigPath); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate runs the struct tag rules and ValidateConfigValues. Call it again
// after changing a loaded Configuration, e.g. from command-line flags.
func Validate(cfg *Configuration, filePath string) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return ValidateConfigValues(cfg, filePath)
}

// envTransform converts environment variable names to config keys
// Example: FLASHWIN_TIMEOUT_MS -> timeout_ms, FLASHWIN_ATTENTION_MODE -> attention.mode
func envTransform(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if strings.HasPrefix(key, "attention_") {
		return "attention." + strings.TrimPrefix(key, "attention_")
	}
	return key
}

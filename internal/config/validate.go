package config

import (
	"fmt"

	"github.com/ariel-frischer/flashwin/internal/flash"
)

// ValidationError represents a configuration validation error with context
type ValidationError struct {
	FilePath string
	Field    string
	Message  string
}

func (e *ValidationError) Error() string {
	path := e.FilePath
	if path == "" {
		path = "config"
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: field '%s': %s", path, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", path, e.Message)
}

// ValidateConfigValues checks the rules struct tags cannot express.
func ValidateConfigValues(cfg *Configuration, filePath string) error {
	return validateAttentionConfig(&cfg.Attention, filePath)
}

func validateAttentionConfig(ac *flash.AttentionConfig, filePath string) error {
	if ac.Mode != "" && !flash.ValidMode(string(ac.Mode)) {
		return &ValidationError{
			FilePath: filePath,
			Field:    "attention.mode",
			Message:  "must be one of: until_focus, count, persistent",
		}
	}

	if ac.Mode == flash.ModeCount && ac.Count == 0 {
		return &ValidationError{
			FilePath: filePath,
			Field:    "attention.count",
			Message:  "must be at least 1 in count mode",
		}
	}

	return nil
}

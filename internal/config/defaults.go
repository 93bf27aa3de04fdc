package config

import "github.com/ariel-frischer/flashwin/internal/flash"

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	attention := flash.DefaultAttentionConfig()
	return map[string]interface{}{
		"class_name":        flash.DefaultClassName,
		"timeout_ms":        0,
		"log_level":         "warn",
		"attention.enabled": attention.Enabled,
		"attention.mode":    string(attention.Mode),
		"attention.count":   attention.Count,
	}
}

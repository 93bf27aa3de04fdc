package flash

import "os"

// Mode selects how the attention handler flashes the window.
type Mode string

const (
	// ModeUntilFocus flashes until the window comes to the foreground
	ModeUntilFocus Mode = "until_focus"
	// ModeCount flashes a fixed number of times
	ModeCount Mode = "count"
	// ModePersistent flashes until cleared
	ModePersistent Mode = "persistent"
)

// ValidMode checks if the given string is a valid attention mode
func ValidMode(s string) bool {
	switch Mode(s) {
	case ModeUntilFocus, ModeCount, ModePersistent:
		return true
	default:
		return false
	}
}

// AttentionConfig holds user preferences for window flashing on events.
type AttentionConfig struct {
	// Enabled is the master switch (default: false, opt-in)
	Enabled bool `koanf:"enabled" json:"enabled"`

	// Mode is until_focus, count or persistent (default: until_focus)
	Mode Mode `koanf:"mode" json:"mode"`

	// Count is the number of flashes in count mode (default: 5)
	Count uint32 `koanf:"count" json:"count"`
}

// DefaultAttentionConfig returns an AttentionConfig with default values
func DefaultAttentionConfig() AttentionConfig {
	return AttentionConfig{
		Enabled: false,
		Mode:    ModeUntilFocus,
		Count:   5,
	}
}

// Handler flashes the window when something happens that needs the user.
type Handler struct {
	config  AttentionConfig
	flasher Flasher
}

// NewHandler creates a handler dispatching to flasher.
func NewHandler(config AttentionConfig, flasher Flasher) *Handler {
	return &Handler{
		config:  config,
		flasher: flasher,
	}
}

// Config returns the handler's configuration
func (h *Handler) Config() AttentionConfig {
	return h.config
}

// isEnabled returns false when disabled in config or running in CI.
func (h *Handler) isEnabled() bool {
	return h.config.Enabled && !isCI()
}

// isCI checks for common CI environment variables.
func isCI() bool {
	ciVars := []string{
		"CI",
		"GITHUB_ACTIONS",
		"GITLAB_CI",
		"CIRCLECI",
		"TRAVIS",
		"JENKINS_URL",
		"BUILDKITE",
		"DRONE",
		"TEAMCITY_VERSION",
		"TF_BUILD",            // Azure DevOps
		"BITBUCKET_PIPELINES", // Bitbucket
		"CODEBUILD_BUILD_ID",  // AWS CodeBuild
		"HEROKU_TEST_RUN_ID",  // Heroku CI
		"NETLIFY",             // Netlify
		"VERCEL",              // Vercel
		"RENDER",              // Render
		"RAILWAY_ENVIRONMENT", // Railway
	}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// OnEvent flashes the window according to the configured mode.
func (h *Handler) OnEvent() bool {
	if !h.isEnabled() {
		return false
	}

	switch h.config.Mode {
	case ModeCount:
		return h.flasher.FlashCount(h.config.Count)
	case ModePersistent:
		return h.flasher.Start()
	default:
		return h.flasher.Flash()
	}
}

// Clear stops any flashing started by OnEvent.
func (h *Handler) Clear() bool {
	if !h.isEnabled() {
		return false
	}
	return h.flasher.Stop()
}

package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete podium configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	TUI       TUIConfig       `mapstructure:"tui"`
	Debate    DebateConfig    `mapstructure:"debate"`
	Providers ProvidersConfig `mapstructure:"providers"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Paths     PathsConfig     `mapstructure:"paths"`
}

// ServerConfig controls how the Debaite backend is reached
type ServerConfig struct {
	// BaseURL is the backend origin, e.g. "http://127.0.0.1:8000"
	BaseURL string `mapstructure:"base_url"`
	// TimeoutSeconds is the per-request HTTP timeout (default: 30)
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
	// HealthCheck pings /health before opening the TUI (default: true)
	HealthCheck bool `mapstructure:"health_check"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// SidebarWidth is the width of the participant sidebar in columns
	// (default: 32, min: 20, max: 60)
	SidebarWidth int `mapstructure:"sidebar_width"`
	// TranscriptLines limits how many transcript entries are kept on screen
	TranscriptLines int `mapstructure:"transcript_lines"`
	// SpeakingDecayMs is how long a participant stays highlighted as
	// speaking after their intervention (default: 3000)
	SpeakingDecayMs int `mapstructure:"speaking_decay_ms"`
}

// DebateConfig holds builder defaults for new debate configurations
type DebateConfig struct {
	// MaxLetters is the default per-turn character budget sent as an override
	MaxLetters int `mapstructure:"max_letters"`
	// InsultsAllowed is the default engagement rule for new configurations
	InsultsAllowed bool `mapstructure:"insults_allowed"`
	// LiesAllowed is the default engagement rule for new configurations
	LiesAllowed bool `mapstructure:"lies_allowed"`
	// MinStances is the minimum number of non-blank stances required
	// before a session may start (default: 1)
	MinStances int `mapstructure:"min_stances"`
}

// ProvidersConfig maps provider identifiers to their default models
type ProvidersConfig struct {
	GeminiModel   string `mapstructure:"gemini_model"`
	OpenAIModel   string `mapstructure:"openai_model"`
	DeepSeekModel string `mapstructure:"deepseek_model"`
	ClaudeModel   string `mapstructure:"claude_model"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
}

// PathsConfig controls where podium stores data
type PathsConfig struct {
	// StateDir is the directory for staged configurations and logs.
	// If empty, defaults to $XDG_STATE_HOME/podium or ~/.local/state/podium.
	// Supports ~ for home directory expansion.
	StateDir string `mapstructure:"state_dir"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			BaseURL:        "http://127.0.0.1:8000",
			TimeoutSeconds: 30,
			HealthCheck:    true,
		},
		TUI: TUIConfig{
			SidebarWidth:    32,
			TranscriptLines: 500,
			SpeakingDecayMs: 3000,
		},
		Debate: DebateConfig{
			MaxLetters:     1500,
			InsultsAllowed: false,
			LiesAllowed:    false,
			MinStances:     1,
		},
		Providers: ProvidersConfig{
			GeminiModel:   "gemini/gemini-1.5-flash",
			OpenAIModel:   "gpt-4o-mini",
			DeepSeekModel: "deepseek/deepseek-chat",
			ClaudeModel:   "anthropic/claude-3-haiku-20240307",
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
		},
		Paths: PathsConfig{
			StateDir: "",
		},
	}
}

// Timeout returns the server request timeout as a time.Duration
func (s *ServerConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// SpeakingDecay returns the speaking highlight decay as a time.Duration
func (t *TUIConfig) SpeakingDecay() time.Duration {
	return time.Duration(t.SpeakingDecayMs) * time.Millisecond
}

// DefaultModel returns the configured default model for a provider
// identifier, or the empty string for an unknown provider.
func (p *ProvidersConfig) DefaultModel(provider string) string {
	switch provider {
	case "gemini":
		return p.GeminiModel
	case "openai":
		return p.OpenAIModel
	case "deepseek":
		return p.DeepSeekModel
	case "claude":
		return p.ClaudeModel
	default:
		return ""
	}
}

// ResolveStateDir returns the resolved state directory path.
// If StateDir is empty, it follows XDG conventions.
func (p *PathsConfig) ResolveStateDir() string {
	path := p.StateDir

	if path == "" {
		if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
			return filepath.Join(xdg, "podium")
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return ".podium"
		}
		return filepath.Join(home, ".local", "state", "podium")
	}

	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
	} else if len(path) > 1 && path[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}

	return path
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("server.base_url", defaults.Server.BaseURL)
	viper.SetDefault("server.timeout_seconds", defaults.Server.TimeoutSeconds)
	viper.SetDefault("server.health_check", defaults.Server.HealthCheck)

	viper.SetDefault("tui.sidebar_width", defaults.TUI.SidebarWidth)
	viper.SetDefault("tui.transcript_lines", defaults.TUI.TranscriptLines)
	viper.SetDefault("tui.speaking_decay_ms", defaults.TUI.SpeakingDecayMs)

	viper.SetDefault("debate.max_letters", defaults.Debate.MaxLetters)
	viper.SetDefault("debate.insults_allowed", defaults.Debate.InsultsAllowed)
	viper.SetDefault("debate.lies_allowed", defaults.Debate.LiesAllowed)
	viper.SetDefault("debate.min_stances", defaults.Debate.MinStances)

	viper.SetDefault("providers.gemini_model", defaults.Providers.GeminiModel)
	viper.SetDefault("providers.openai_model", defaults.Providers.OpenAIModel)
	viper.SetDefault("providers.deepseek_model", defaults.Providers.DeepSeekModel)
	viper.SetDefault("providers.claude_model", defaults.Providers.ClaudeModel)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)

	viper.SetDefault("paths.state_dir", defaults.Paths.StateDir)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "podium")
	}
	// Fall back to ~/.config/podium
	home, err := os.UserHomeDir()
	if err != nil {
		return ".podium"
	}
	return filepath.Join(home, ".config", "podium")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

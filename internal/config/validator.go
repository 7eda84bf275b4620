package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "server.base_url")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidProviders returns the provider identifiers the builder knows about
func ValidProviders() []string {
	return []string{"gemini", "openai", "deepseek", "claude"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateServer()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateDebate()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validateServer() []ValidationError {
	var errors []ValidationError

	if c.Server.BaseURL == "" {
		errors = append(errors, ValidationError{
			Field:   "server.base_url",
			Value:   c.Server.BaseURL,
			Message: "must not be empty",
		})
	} else if u, err := url.Parse(c.Server.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errors = append(errors, ValidationError{
			Field:   "server.base_url",
			Value:   c.Server.BaseURL,
			Message: "must be an absolute URL (e.g. http://127.0.0.1:8000)",
		})
	}

	if c.Server.TimeoutSeconds <= 0 {
		errors = append(errors, ValidationError{
			Field:   "server.timeout_seconds",
			Value:   c.Server.TimeoutSeconds,
			Message: "must be positive",
		})
	}

	return errors
}

func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if c.TUI.SidebarWidth < 20 || c.TUI.SidebarWidth > 60 {
		errors = append(errors, ValidationError{
			Field:   "tui.sidebar_width",
			Value:   c.TUI.SidebarWidth,
			Message: "must be between 20 and 60",
		})
	}

	if c.TUI.TranscriptLines <= 0 {
		errors = append(errors, ValidationError{
			Field:   "tui.transcript_lines",
			Value:   c.TUI.TranscriptLines,
			Message: "must be positive",
		})
	}

	if c.TUI.SpeakingDecayMs < 0 {
		errors = append(errors, ValidationError{
			Field:   "tui.speaking_decay_ms",
			Value:   c.TUI.SpeakingDecayMs,
			Message: "must not be negative",
		})
	}

	return errors
}

func (c *Config) validateDebate() []ValidationError {
	var errors []ValidationError

	if c.Debate.MaxLetters <= 0 {
		errors = append(errors, ValidationError{
			Field:   "debate.max_letters",
			Value:   c.Debate.MaxLetters,
			Message: "must be positive",
		})
	}

	if c.Debate.MinStances < 1 {
		errors = append(errors, ValidationError{
			Field:   "debate.min_stances",
			Value:   c.Debate.MinStances,
			Message: "must be at least 1",
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}

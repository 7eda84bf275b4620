package styles

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ThemeFile represents a custom theme definition loaded from YAML.
type ThemeFile struct {
	// Name is the theme's display name (e.g., "Solarized Dark")
	Name string `yaml:"name"`
	// Version is the theme file format version (currently "1")
	Version string `yaml:"version"`
	// Colors defines the color palette
	Colors ThemeColors `yaml:"colors"`
}

// ThemeColors contains all color definitions for a theme.
// All colors should be hex format (#RRGGBB or #RGB).
type ThemeColors struct {
	// Base colors
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Warning   string `yaml:"warning"`
	Error     string `yaml:"error"`
	Muted     string `yaml:"muted"`
	Text      string `yaml:"text"`
	Border    string `yaml:"border"`

	// Participant status colors (optional - defaults to base colors)
	Status ThemeStatusColors `yaml:"status,omitempty"`
}

// ThemeStatusColors defines colors for live participant statuses.
type ThemeStatusColors struct {
	Speaking     string `yaml:"speaking,omitempty"`
	Listening    string `yaml:"listening,omitempty"`
	Adjudicating string `yaml:"adjudicating,omitempty"`
	Vetoed       string `yaml:"vetoed,omitempty"`
}

// hexColorRegex validates hex color format.
var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// LoadThemeFile loads a theme from a YAML file.
func LoadThemeFile(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var theme ThemeFile
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	if err := theme.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}

	return &theme, nil
}

// Validate checks that the theme file is well-formed.
func (t *ThemeFile) Validate() error {
	if t.Name == "" {
		return errors.New("theme name is required")
	}
	if t.Version == "" {
		return errors.New("theme version is required")
	}
	if t.Version != "1" {
		return fmt.Errorf("unsupported theme version: %s (supported: 1)", t.Version)
	}

	requiredColors := map[string]string{
		"primary":   t.Colors.Primary,
		"secondary": t.Colors.Secondary,
		"warning":   t.Colors.Warning,
		"error":     t.Colors.Error,
		"muted":     t.Colors.Muted,
		"text":      t.Colors.Text,
		"border":    t.Colors.Border,
	}
	for name, color := range requiredColors {
		if color == "" {
			return fmt.Errorf("color '%s' is required", name)
		}
		if !isValidHexColor(color) {
			return fmt.Errorf("color '%s' has invalid format: %s (expected #RGB or #RRGGBB)", name, color)
		}
	}

	optionalColors := map[string]string{
		"status.speaking":     t.Colors.Status.Speaking,
		"status.listening":    t.Colors.Status.Listening,
		"status.adjudicating": t.Colors.Status.Adjudicating,
		"status.vetoed":       t.Colors.Status.Vetoed,
	}
	for name, color := range optionalColors {
		if color != "" && !isValidHexColor(color) {
			return fmt.Errorf("color '%s' has invalid format: %s (expected #RGB or #RRGGBB)", name, color)
		}
	}

	return nil
}

// isValidHexColor checks if a string is a valid hex color.
func isValidHexColor(color string) bool {
	return hexColorRegex.MatchString(color)
}

// Apply installs the theme's colors into the package palette and
// rebuilds the derived styles.
func (t *ThemeFile) Apply() {
	PrimaryColor = lipgloss.Color(t.Colors.Primary)
	SecondaryColor = lipgloss.Color(t.Colors.Secondary)
	WarningColor = lipgloss.Color(t.Colors.Warning)
	ErrorColor = lipgloss.Color(t.Colors.Error)
	MutedColor = lipgloss.Color(t.Colors.Muted)
	TextColor = lipgloss.Color(t.Colors.Text)
	BorderColor = lipgloss.Color(t.Colors.Border)

	StatusSpeaking = colorOrDefault(t.Colors.Status.Speaking, t.Colors.Secondary)
	StatusListening = colorOrDefault(t.Colors.Status.Listening, t.Colors.Muted)
	StatusAdjudicating = colorOrDefault(t.Colors.Status.Adjudicating, t.Colors.Primary)
	StatusVetoed = colorOrDefault(t.Colors.Status.Vetoed, t.Colors.Error)

	rebuildStyles()
}

// colorOrDefault returns the color if set, otherwise the fallback.
func colorOrDefault(color, fallback string) lipgloss.Color {
	if color == "" {
		return lipgloss.Color(fallback)
	}
	return lipgloss.Color(color)
}

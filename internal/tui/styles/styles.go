// Package styles holds the shared lipgloss palette and building-block
// styles for the podium TUI. The default palette can be replaced by a
// user theme file, see loader.go.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	PrimaryColor   = lipgloss.Color("#A78BFA") // Purple
	SecondaryColor = lipgloss.Color("#10B981") // Green
	WarningColor   = lipgloss.Color("#F59E0B") // Amber
	ErrorColor     = lipgloss.Color("#F87171") // Red
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#6B7280") // Gray

	// Participant status colors
	StatusSpeaking     = lipgloss.Color("#10B981") // Green
	StatusListening    = lipgloss.Color("#9CA3AF") // Gray
	StatusAdjudicating = lipgloss.Color("#60A5FA") // Blue
	StatusVetoed       = lipgloss.Color("#F87171") // Red
)

// Derived styles, rebuilt whenever the palette changes.
var (
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
	Text      lipgloss.Style

	CredVerified  lipgloss.Style
	CredFailed    lipgloss.Style
	CredUnchecked lipgloss.Style

	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	SectionHeader lipgloss.Style
	Selected      lipgloss.Style
	Unselected    lipgloss.Style
	Sidebar       lipgloss.Style
	Transcript    lipgloss.Style
	StatusBar     lipgloss.Style
	ErrorBar      lipgloss.Style
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
)

func init() {
	rebuildStyles()
}

func rebuildStyles() {
	Primary = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning = lipgloss.NewStyle().Foreground(WarningColor)
	Error = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted = lipgloss.NewStyle().Foreground(MutedColor)
	Text = lipgloss.NewStyle().Foreground(TextColor)

	CredVerified = lipgloss.NewStyle().Foreground(SecondaryColor)
	CredFailed = lipgloss.NewStyle().Foreground(ErrorColor)
	CredUnchecked = lipgloss.NewStyle().Foreground(MutedColor)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
		Foreground(MutedColor).
		Italic(true)

	SectionHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextColor)

	Selected = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextColor).
		Background(PrimaryColor).
		Padding(0, 1)

	Unselected = lipgloss.NewStyle().
		Foreground(MutedColor).
		Padding(0, 1)

	Sidebar = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(0, 1)

	Transcript = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(0, 1)

	StatusBar = lipgloss.NewStyle().
		Foreground(MutedColor)

	ErrorBar = lipgloss.NewStyle().
		Bold(true).
		Foreground(ErrorColor)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextColor)

	HelpDesc = lipgloss.NewStyle().
		Foreground(MutedColor)
}

// StatusColor maps a participant status string to its display color.
func StatusColor(status string) lipgloss.Color {
	switch status {
	case "speaking":
		return StatusSpeaking
	case "adjudicating":
		return StatusAdjudicating
	case "vetoed":
		return StatusVetoed
	default:
		return StatusListening
	}
}

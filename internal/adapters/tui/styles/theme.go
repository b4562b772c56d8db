package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")
	Info      = lipgloss.Color("#60A5FA") // Blue

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Item list styles
	ItemLive = lipgloss.NewStyle()

	ItemDraft = lipgloss.NewStyle().
			Foreground(Warning)

	ItemArchived = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	ItemSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	ItemID = lipgloss.NewStyle().
		Foreground(Muted)

	// Detail view
	FieldKey = lipgloss.NewStyle().
			Foreground(Info)

	PathText = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	ValueBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Muted).
			Padding(0, 1)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	StatusText = lipgloss.NewStyle().
			Foreground(Muted)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// ItemStyle returns the list style for an item's publishing state
func ItemStyle(isDraft, isArchived bool) lipgloss.Style {
	switch {
	case isArchived:
		return ItemArchived
	case isDraft:
		return ItemDraft
	default:
		return ItemLive
	}
}

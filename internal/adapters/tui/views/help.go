package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"flowdoc/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return CloseHelpMsg{}
			}
		}
	}

	return m, nil
}

// CloseHelpMsg returns to the view that opened help
type CloseHelpMsg struct{}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("flowdoc Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Item list"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString(helpLine("h / l / ← / →", "Previous / next page"))
	b.WriteString(helpLine("Enter", "Open item"))
	b.WriteString(helpLine("/", "Filter by name, slug or ID"))
	b.WriteString(helpLine("esc", "Clear filter"))
	b.WriteString(helpLine("r", "Reload from Webflow"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Item detail"))
	b.WriteString("\n")
	b.WriteString(helpLine("p", "Show the value at a dot path"))
	b.WriteString(helpLine("y", "Copy the shown value"))
	b.WriteString(helpLine("r", "Reload item"))
	b.WriteString(helpLine("esc", "Back to list"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Paths"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  content.title          key inside an object"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  content.sections.0     first element of a list"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  (empty)                all field data"))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	n := len([]rune(s))
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}

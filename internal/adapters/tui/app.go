package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"flowdoc/internal/adapters/tui/views"
	"flowdoc/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewDetail
	ViewHelp
)

// App is the main TUI application model
type App struct {
	state    ViewState
	previous ViewState
	browser  *views.BrowserModel
	detail   *views.DetailModel
	help     *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application for one collection
func NewApp(svc ports.CollectionService, collectionID string, pageSize int) *App {
	return &App{
		state:   ViewBrowser,
		browser: views.NewBrowserModel(svc, collectionID, pageSize),
		detail:  views.NewDetailModel(svc, collectionID),
		help:    views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browser.SetSize(msg.Width, msg.Height)
		a.detail.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToDetailMsg:
		a.state = ViewDetail
		return a, a.detail.SetItem(msg.ItemID)

	case views.SwitchToHelpMsg:
		a.previous = a.state
		a.state = ViewHelp
		return a, nil

	case views.CloseHelpMsg:
		a.state = a.previous
		return a, nil

	case views.SwitchToBrowserMsg:
		a.state = ViewBrowser
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBrowser:
		_, cmd = a.browser.Update(msg)
	case ViewDetail:
		_, cmd = a.detail.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewDetail:
		return a.detail.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.browser.View()
	}
}

package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"flowdoc/internal/adapters/tui/styles"
	"flowdoc/internal/application/commands"
	"flowdoc/internal/domain"
	"flowdoc/internal/ports"
)

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Open     key.Binding
	Filter   key.Binding
	Clear    key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("h", "left", "pgup"),
		key.WithHelp("h/←", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("l", "right", "pgdown"),
		key.WithHelp("l/→", "next page"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Clear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear filter"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// FilterKeys are active while the filter input has focus
var FilterKeys = struct {
	Apply  key.Binding
	Cancel key.Binding
}{
	Apply: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "apply"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// BrowserModel lists the collection's items one page at a time
type BrowserModel struct {
	ViewState

	svc          ports.CollectionService
	collectionID string
	pageSize     int

	items     []domain.ItemSummary
	visible   []domain.ItemSummary
	loaded    bool
	paginator *Paginator

	filter    textinput.Model
	filtering bool
}

// NewBrowserModel creates a new browser model
func NewBrowserModel(svc ports.CollectionService, collectionID string, pageSize int) *BrowserModel {
	input := textinput.New()
	input.Placeholder = "name, slug or id..."
	input.Prompt = "/ "

	return &BrowserModel{
		svc:          svc,
		collectionID: collectionID,
		pageSize:     pageSize,
		paginator:    NewPaginator(15),
		filter:       input,
	}
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return m.loadItems
}

func (m *BrowserModel) loadItems() tea.Msg {
	items, err := commands.ListAll(context.Background(), m.svc, m.collectionID, m.pageSize, nil)
	if err != nil {
		return errMsg{err}
	}

	summaries := make([]domain.ItemSummary, len(items))
	for i, it := range items {
		summaries[i] = it.Summary()
	}
	return itemsLoadedMsg{summaries}
}

type itemsLoadedMsg struct {
	items []domain.ItemSummary
}

type errMsg struct {
	err error
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case itemsLoadedMsg:
		m.items = msg.items
		m.loaded = true
		m.applyFilter()
		m.SetMessage(fmt.Sprintf("Loaded %d items", len(m.items)), false)
		return m, nil

	case errMsg:
		m.loaded = true
		m.SetError(msg.err)
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}

		m.ClearMessage()

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			m.paginator.CursorUp()

		case key.Matches(msg, BrowserKeys.Down):
			m.paginator.CursorDown()

		case key.Matches(msg, BrowserKeys.PrevPage):
			m.paginator.PrevPage()

		case key.Matches(msg, BrowserKeys.NextPage):
			m.paginator.NextPage()

		case key.Matches(msg, BrowserKeys.Open):
			if item, ok := m.Selected(); ok {
				return m, func() tea.Msg {
					return SwitchToDetailMsg{ItemID: item.ID}
				}
			}

		case key.Matches(msg, BrowserKeys.Filter):
			m.filtering = true
			m.filter.Focus()
			return m, textinput.Blink

		case key.Matches(msg, BrowserKeys.Clear):
			m.filter.SetValue("")
			m.applyFilter()

		case key.Matches(msg, BrowserKeys.Reload):
			return m, m.Reload()

		case key.Matches(msg, BrowserKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

func (m *BrowserModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, FilterKeys.Apply):
		m.filtering = false
		m.filter.Blur()
		return m, nil

	case key.Matches(msg, FilterKeys.Cancel):
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

// applyFilter ranks items by fuzzy score against the filter text
func (m *BrowserModel) applyFilter() {
	query := strings.TrimSpace(m.filter.Value())
	if query == "" {
		m.visible = m.items
	} else {
		results := commands.FuzzySort(m.items, query)
		m.visible = make([]domain.ItemSummary, len(results))
		for i, r := range results {
			m.visible[i] = r.ItemSummary
		}
	}
	m.paginator.SetCursor(0)
	m.paginator.SetTotal(len(m.visible))
}

// Selected returns the item under the cursor
func (m *BrowserModel) Selected() (domain.ItemSummary, bool) {
	i := m.paginator.Cursor()
	if i >= 0 && i < len(m.visible) {
		return m.visible[i], true
	}
	return domain.ItemSummary{}, false
}

// Visible returns the items that pass the current filter
func (m *BrowserModel) Visible() []domain.ItemSummary {
	return m.visible
}

// View renders the browser
func (m *BrowserModel) View() string {
	if !m.loaded {
		return styles.App.Render("Loading items...")
	}

	v := NewViewBuilder().Title("flowdoc", fmt.Sprintf("Collection %s", m.collectionID))

	if m.filtering || m.filter.Value() != "" {
		v.Line(styles.InputFocused.Render(m.filter.View()))
	}

	if len(m.visible) == 0 {
		v.Muted("No items")
	}

	start, end := m.paginator.VisibleRange()
	for i := start; i < end; i++ {
		v.Line(m.renderItem(m.visible[i], i == m.paginator.Cursor()))
	}

	if m.paginator.TotalPages() > 1 {
		v.Line("")
		v.Muted(fmt.Sprintf("page %d/%d · %d items", m.paginator.CurrentPage(), m.paginator.TotalPages(), len(m.visible)))
	}

	v.Message(m.Message, m.MessageErr)

	if m.filtering {
		v.Help(FilterKeys.Apply, FilterKeys.Cancel)
	} else {
		v.Help(BrowserKeys.Down, BrowserKeys.NextPage, BrowserKeys.Open, BrowserKeys.Filter, BrowserKeys.Help, BrowserKeys.Quit)
	}
	return v.String()
}

func (m *BrowserModel) renderItem(item domain.ItemSummary, selected bool) string {
	text := fmt.Sprintf("%-40s %s", truncate(item.Name, 40), item.Slug)

	if selected {
		return "▶ " + styles.ItemSelected.Render(text)
	}

	status := ""
	if st := itemStatus(item.IsDraft, item.IsArchived); st != "live" {
		status = " [" + st + "]"
	}
	return "  " + styles.ItemStyle(item.IsDraft, item.IsArchived).Render(text) + styles.ItemID.Render(status)
}

// SetSize updates the view dimensions and fits the page to the height
func (m *BrowserModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	// title, help and margins take about ten rows
	if rows := height - 10; rows > 0 {
		m.paginator.SetPageSize(rows)
	}
}

// Reload fetches the items again
func (m *BrowserModel) Reload() tea.Cmd {
	m.loaded = false
	return m.loadItems
}

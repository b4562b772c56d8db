package views

import (
	"context"
	"fmt"
	"sort"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"flowdoc/internal/adapters/console"
	"flowdoc/internal/adapters/tui/styles"
	"flowdoc/internal/application/commands"
	"flowdoc/internal/domain"
	"flowdoc/internal/ports"
)

// DetailKeyMap defines key bindings for the detail view
type DetailKeyMap struct {
	Path   key.Binding
	Copy   key.Binding
	Reload key.Binding
	Back   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var DetailKeys = DetailKeyMap{
	Path: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "path"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy value"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("esc", "back"),
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

// copyFunc writes to the system clipboard; replaced in tests
var copyFunc = clipboard.WriteAll

// DetailModel shows one item and evaluates dot paths against its field data
type DetailModel struct {
	ViewState

	svc          ports.CollectionService
	collectionID string

	itemID  string
	item    *domain.CollectionItem
	loading bool

	prompt    textinput.Model
	prompting bool

	path      domain.Path
	value     any
	valueText string
	shown     bool
}

// NewDetailModel creates a new detail model
func NewDetailModel(svc ports.CollectionService, collectionID string) *DetailModel {
	input := textinput.New()
	input.Placeholder = "content.sections.0.text"
	input.Prompt = "path: "

	return &DetailModel{
		svc:          svc,
		collectionID: collectionID,
		prompt:       input,
	}
}

// SetItem switches the view to another item and starts loading it
func (m *DetailModel) SetItem(itemID string) tea.Cmd {
	m.itemID = itemID
	m.item = nil
	m.loading = true
	m.prompting = false
	m.prompt.SetValue("")
	m.showValue(nil)
	m.ClearMessage()
	return m.loadItem
}

// Init initializes the detail view
func (m *DetailModel) Init() tea.Cmd {
	return nil
}

func (m *DetailModel) loadItem() tea.Msg {
	item, err := commands.NewGetItemCommand(m.svc, m.collectionID, m.itemID).Execute(context.Background())
	if err != nil {
		return itemErrMsg{err}
	}
	return itemLoadedMsg{item}
}

type itemLoadedMsg struct {
	item *domain.CollectionItem
}

type itemErrMsg struct {
	err error
}

// Update handles messages for the detail view
func (m *DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case itemLoadedMsg:
		if msg.item.ID != m.itemID {
			return m, nil
		}
		m.item = msg.item
		m.loading = false
		m.showValue(m.path)
		return m, nil

	case itemErrMsg:
		m.loading = false
		m.SetError(msg.err)
		return m, nil

	case tea.KeyMsg:
		if m.prompting {
			return m.updatePrompt(msg)
		}

		m.ClearMessage()

		switch {
		case key.Matches(msg, DetailKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, DetailKeys.Back):
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}

		case key.Matches(msg, DetailKeys.Path):
			if m.item == nil {
				return m, nil
			}
			m.prompting = true
			m.prompt.SetValue(m.path.String())
			m.prompt.CursorEnd()
			m.prompt.Focus()
			return m, textinput.Blink

		case key.Matches(msg, DetailKeys.Copy):
			if !m.shown {
				m.SetMessage("Nothing to copy, choose a path with p", true)
				return m, nil
			}
			if err := copyFunc(m.valueText); err != nil {
				m.SetMessage(fmt.Sprintf("Copy failed: %v", err), true)
				return m, nil
			}
			m.SetMessage("Copied "+pathLabel(m.path), false)

		case key.Matches(msg, DetailKeys.Reload):
			return m, m.SetItem(m.itemID)

		case key.Matches(msg, DetailKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

func (m *DetailModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, FilterKeys.Apply):
		m.prompting = false
		m.prompt.Blur()
		m.showValue(domain.ParsePath(m.prompt.Value()))
		return m, nil

	case key.Matches(msg, FilterKeys.Cancel):
		m.prompting = false
		m.prompt.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// showValue resolves path against the loaded item. A nil path shows nothing.
func (m *DetailModel) showValue(path domain.Path) {
	m.path = path
	m.value = nil
	m.valueText = ""
	m.shown = false

	if path == nil || m.item == nil {
		return
	}

	value, err := domain.Lookup(m.item.FieldData, path)
	if err != nil {
		m.SetError(err)
		return
	}

	text, err := console.FormatValue(value, console.FormatRaw)
	if err != nil {
		m.SetError(err)
		return
	}
	m.value = value
	m.valueText = text
	m.shown = true
}

// Value returns the value shown for the current path
func (m *DetailModel) Value() (any, bool) {
	return m.value, m.shown
}

// View renders the detail view
func (m *DetailModel) View() string {
	if m.loading {
		return styles.App.Render("Loading " + m.itemID + "...")
	}
	if m.item == nil {
		return NewViewBuilder().
			Title("flowdoc", m.itemID).
			Message(m.Message, m.MessageErr).
			Help(DetailKeys.Back, DetailKeys.Quit).
			String()
	}

	item := m.item
	v := NewViewBuilder().Title(item.Name(), item.Slug())

	v.Field("ID", item.ID)
	v.Field("Created", item.CreatedOn.Format("2006-01-02 15:04"))
	v.Field("Updated", item.LastUpdated.Format("2006-01-02 15:04"))
	if item.LastPublished != nil {
		v.Field("Published", item.LastPublished.Format("2006-01-02 15:04"))
	}
	v.Field("Status", itemStatus(item.IsDraft, item.IsArchived))
	v.Line("")

	keys := make([]string, 0, len(item.FieldData))
	for k := range item.FieldData {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	v.Line(styles.InputLabel.Render("Fields"))
	for _, k := range keys {
		v.Line("  " + styles.FieldKey.Render(k) + " " + styles.MutedText.Render(kind(item.FieldData[k])))
	}

	if m.prompting {
		v.Line("")
		v.Line(styles.InputFocused.Render(m.prompt.View()))
	} else if m.shown {
		v.Line("")
		v.Line(styles.PathText.Render(pathLabel(m.path)))
		v.Line(styles.ValueBox.Render(m.valueText))
	}

	v.Message(m.Message, m.MessageErr)

	if m.prompting {
		v.Help(FilterKeys.Apply, FilterKeys.Cancel)
	} else {
		v.Help(DetailKeys.Path, DetailKeys.Copy, DetailKeys.Reload, DetailKeys.Back, DetailKeys.Quit)
	}
	return v.String()
}

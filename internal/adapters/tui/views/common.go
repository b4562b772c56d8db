package views

import (
	"fmt"

	"flowdoc/internal/domain"
)

// ViewState is embedded by every view model: terminal size plus one status line
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize records the terminal dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage replaces the status line
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// SetError shows err on the status line
func (s *ViewState) SetError(err error) {
	s.SetMessage(err.Error(), true)
}

// ClearMessage empties the status line
func (s *ViewState) ClearMessage() {
	s.SetMessage("", false)
}

// Messages for view switching
type SwitchToDetailMsg struct {
	ItemID string
}

type SwitchToHelpMsg struct{}

type SwitchToBrowserMsg struct{}

func itemStatus(isDraft, isArchived bool) string {
	switch {
	case isArchived:
		return "archived"
	case isDraft:
		return "draft"
	default:
		return "live"
	}
}

// kind describes a field value in a few words
func kind(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return fmt.Sprintf("object, %d keys", len(val))
	case []any:
		return fmt.Sprintf("list, %d items", len(val))
	case string:
		return "text"
	case bool:
		return "bool"
	default:
		return "number"
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func pathLabel(p domain.Path) string {
	if len(p) == 0 {
		return "fieldData"
	}
	return p.String()
}

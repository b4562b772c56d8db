package views

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"flowdoc/internal/domain"
)

func detailFor(t *testing.T, item domain.CollectionItem) *DetailModel {
	t.Helper()
	m := NewDetailModel(&stubService{items: []domain.CollectionItem{item}}, "col-1")
	m.Update(m.SetItem(item.ID)())
	return m
}

func guideItem() domain.CollectionItem {
	return domain.CollectionItem{
		ID: "doc-1",
		FieldData: domain.Document{
			"name": "Getting Started",
			"content": map[string]any{
				"sections": []any{map[string]any{"text": "Install the CLI"}},
			},
		},
	}
}

func typePath(m *DetailModel, path string) {
	m.Update(keyRunes("p"))
	for _, r := range path {
		m.Update(keyRunes(string(r)))
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestDetail_PathPrompt(t *testing.T) {
	m := detailFor(t, guideItem())

	typePath(m, "content.sections.0.text")

	value, ok := m.Value()
	if !ok || value != "Install the CLI" {
		t.Fatalf("expected section text, got %v (%v)", value, ok)
	}
	if !contains(m.View(), "Install the CLI") {
		t.Error("expected value in view")
	}
}

func TestDetail_MissingPath(t *testing.T) {
	m := detailFor(t, guideItem())

	typePath(m, "content.nope")

	if _, ok := m.Value(); ok {
		t.Error("expected no value")
	}
	if !m.MessageErr || !contains(m.Message, `"nope"`) {
		t.Errorf("expected not-found message, got %q", m.Message)
	}
}

func TestDetail_CopyValue(t *testing.T) {
	var copied string
	orig := copyFunc
	copyFunc = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { copyFunc = orig })

	m := detailFor(t, guideItem())

	m.Update(keyRunes("y"))
	if !m.MessageErr {
		t.Error("copy without a path should report an error")
	}

	typePath(m, "content.sections.0.text")
	m.Update(keyRunes("y"))
	if copied != "Install the CLI" {
		t.Errorf("expected raw text copied, got %q", copied)
	}

	copyFunc = func(string) error { return errors.New("no clipboard") }
	m.Update(keyRunes("y"))
	if !contains(m.Message, "no clipboard") {
		t.Errorf("expected copy failure message, got %q", m.Message)
	}
}

func TestDetail_LoadErrorAndBack(t *testing.T) {
	m := NewDetailModel(&stubService{}, "col-1")
	m.Update(m.SetItem("missing")())

	if !contains(m.View(), "missing not found") {
		t.Errorf("expected load error in view")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := cmd().(SwitchToBrowserMsg); !ok {
		t.Error("expected SwitchToBrowserMsg")
	}
}

func TestDetail_EscClosesPromptFirst(t *testing.T) {
	m := detailFor(t, guideItem())

	m.Update(keyRunes("p"))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd != nil {
		t.Error("esc in the prompt must not leave the view")
	}
	if m.prompting {
		t.Error("expected prompt closed")
	}
}

package views

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"flowdoc/internal/domain"
)

// stubService serves a fixed set of items
type stubService struct {
	items   []domain.CollectionItem
	listErr error
}

func (s *stubService) ListItems(_ context.Context, _ string, limit, offset int) (*domain.Page, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	end := min(offset+limit, len(s.items))
	return &domain.Page{
		Items:      s.items[offset:end],
		Pagination: domain.Pagination{Limit: limit, Offset: offset, Total: len(s.items)},
	}, nil
}

func (s *stubService) GetItem(_ context.Context, _ string, itemID string) (*domain.CollectionItem, error) {
	for i := range s.items {
		if s.items[i].ID == itemID {
			item := s.items[i]
			return &item, nil
		}
	}
	return nil, fmt.Errorf("item %s not found", itemID)
}

func (s *stubService) UpdateItem(context.Context, string, string, domain.UpdatePayload) (*domain.CollectionItem, error) {
	return nil, errors.New("read only")
}

func docItems() []domain.CollectionItem {
	names := []string{"Install Basics", "Upgrade Notes", "Troubleshooting", "Install on Windows", "Release Checklist"}
	items := make([]domain.CollectionItem, len(names))
	for i, n := range names {
		items[i] = domain.CollectionItem{
			ID:        fmt.Sprintf("id-%d", i),
			FieldData: domain.Document{"name": n, "slug": strings.ToLower(strings.ReplaceAll(n, " ", "-"))},
		}
	}
	return items
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loadedBrowser(t *testing.T) *BrowserModel {
	t.Helper()
	m := NewBrowserModel(&stubService{items: docItems()}, "col-1", 2)
	msg := m.Init()()
	m.Update(msg)
	return m
}

func TestBrowser_LoadsAllPages(t *testing.T) {
	m := loadedBrowser(t)

	if len(m.Visible()) != 5 {
		t.Fatalf("expected 5 items, got %d", len(m.Visible()))
	}
	if !contains(m.View(), "Install Basics") {
		t.Error("expected first item in view")
	}
}

func TestBrowser_LoadError(t *testing.T) {
	m := NewBrowserModel(&stubService{listErr: errors.New("401 Unauthorized")}, "col-1", 2)
	m.Update(m.Init()())

	if !m.MessageErr || !contains(m.View(), "401 Unauthorized") {
		t.Errorf("expected error message in view, got %q", m.Message)
	}
}

func TestBrowser_NavigateAndOpen(t *testing.T) {
	m := loadedBrowser(t)

	m.Update(keyRunes("j"))
	m.Update(keyRunes("j"))
	item, ok := m.Selected()
	if !ok || item.Name != "Troubleshooting" {
		t.Fatalf("expected Troubleshooting selected, got %+v", item)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}
	msg, ok := cmd().(SwitchToDetailMsg)
	if !ok || msg.ItemID != "id-2" {
		t.Errorf("expected SwitchToDetailMsg for id-2, got %#v", msg)
	}
}

func TestBrowser_Filter(t *testing.T) {
	m := loadedBrowser(t)

	m.Update(keyRunes("/"))
	for _, r := range "install" {
		m.Update(keyRunes(string(r)))
	}

	visible := m.Visible()
	if len(visible) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(visible))
	}
	for _, it := range visible {
		if !strings.HasPrefix(it.Name, "Install") {
			t.Errorf("unexpected match %q", it.Name)
		}
	}

	// Keys typed while filtering must not move the cursor or quit
	m.Update(keyRunes("q"))
	if len(m.Visible()) != 0 {
		t.Errorf("expected no matches for 'installq', got %d", len(m.Visible()))
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if len(m.Visible()) != 5 {
		t.Errorf("expected cancel to clear the filter, got %d items", len(m.Visible()))
	}
}

func TestBrowser_FilterApplyKeepsResults(t *testing.T) {
	m := loadedBrowser(t)

	m.Update(keyRunes("/"))
	m.Update(keyRunes("u"))
	m.Update(keyRunes("p"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.filtering {
		t.Error("enter should leave filter mode")
	}
	item, ok := m.Selected()
	if !ok || item.Name != "Upgrade Notes" {
		t.Errorf("expected Upgrade Notes ranked first, got %+v", item)
	}
}

func TestBrowser_HelpAndQuit(t *testing.T) {
	m := loadedBrowser(t)

	_, cmd := m.Update(keyRunes("?"))
	if _, ok := cmd().(SwitchToHelpMsg); !ok {
		t.Error("expected SwitchToHelpMsg")
	}

	_, cmd = m.Update(keyRunes("q"))
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected quit")
	}
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gontzess/expense-tracker/internal/model"
	"github.com/gontzess/expense-tracker/internal/store"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func seededStore(t *testing.T, memos ...string) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "expenses.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	for _, memo := range memos {
		amount, err := model.ParseAmount("3.29")
		if err != nil {
			t.Fatalf("parse amount: %v", err)
		}
		if err := s.Add(amount, memo, model.Today()); err != nil {
			t.Fatalf("add %q: %v", memo, err)
		}
	}
	return s
}

func appFor(t *testing.T, s *store.Store) App {
	t.Helper()
	expenses, err := s.All()
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	return NewApp(s, expenses)
}

func TestApplyFilterIsCaseInsensitive(t *testing.T) {
	s := seededStore(t, "Coffee", "Pencils", "More coffee")
	a := appFor(t, s)

	a.filter.SetValue("COFF")
	a.applyFilter()

	if len(a.visible) != 2 {
		t.Fatalf("visible = %d, want 2", len(a.visible))
	}
	for _, e := range a.visible {
		if !strings.Contains(strings.ToLower(e.Memo), "coff") {
			t.Errorf("unexpected visible memo %q", e.Memo)
		}
	}
}

func TestDeleteConfirmedRemovesRow(t *testing.T) {
	s := seededStore(t, "Coffee", "Pencils")
	a := appFor(t, s)

	m, _ := a.Update(key("d"))
	a = m.(App)
	if a.mode != modeConfirm {
		t.Fatalf("mode after d = %d, want confirm", a.mode)
	}
	if a.status == "" {
		t.Fatal("no confirmation prompt shown")
	}

	m, _ = a.Update(key("y"))
	a = m.(App)
	if a.mode != modeList {
		t.Errorf("mode after y = %d, want list", a.mode)
	}
	if len(a.visible) != 1 {
		t.Errorf("visible = %d, want 1", len(a.visible))
	}

	count, err := s.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("store count = %d, want 1", count)
	}
}

func TestDeleteDeclinedKeepsRow(t *testing.T) {
	s := seededStore(t, "Coffee")
	a := appFor(t, s)

	m, _ := a.Update(key("d"))
	a = m.(App)
	m, _ = a.Update(key("n"))
	a = m.(App)

	if a.mode != modeList {
		t.Errorf("mode = %d, want list", a.mode)
	}
	if a.status != "" {
		t.Errorf("status = %q, want empty after decline", a.status)
	}

	count, err := s.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("store count = %d, want 1", count)
	}
}

func TestFilterModeLiveUpdates(t *testing.T) {
	s := seededStore(t, "Coffee", "Pencils")
	a := appFor(t, s)

	m, _ := a.Update(key("/"))
	a = m.(App)
	if a.mode != modeFilter {
		t.Fatalf("mode after / = %d, want filter", a.mode)
	}

	m, _ = a.Update(key("p"))
	a = m.(App)
	if len(a.visible) != 1 || a.visible[0].Memo != "Pencils" {
		t.Errorf("visible after typing p = %d rows, want only Pencils", len(a.visible))
	}

	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	a = m.(App)
	if a.mode != modeList {
		t.Errorf("mode after esc = %d, want list", a.mode)
	}
}

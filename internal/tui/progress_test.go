package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestProgressUpdatesCounts(t *testing.T) {
	var m tea.Model = New()
	m, _ = m.Update(ProgressMsg{Seen: 7, BestSize: 420})
	view := m.View()
	if !strings.Contains(view, "7 seen") {
		t.Fatalf("seen count missing: %q", view)
	}
	if !strings.Contains(view, "best 420 bytes") {
		t.Fatalf("best size missing: %q", view)
	}
}

func TestProgressHidesBestBeforeFirstCandidate(t *testing.T) {
	m := New()
	if view := m.View(); strings.Contains(view, "best") {
		t.Fatalf("no best size expected yet: %q", view)
	}
}

func TestDoneQuitsAndClearsView(t *testing.T) {
	var m tea.Model = New()
	m, cmd := m.Update(DoneMsg{})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	if view := m.View(); view != "" {
		t.Fatalf("view should clear when done: %q", view)
	}
}

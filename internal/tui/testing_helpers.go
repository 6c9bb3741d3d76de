package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/dashcli/internal/keybinds"
	"github.com/studiowebux/dashcli/internal/nav"
	"github.com/studiowebux/dashcli/internal/prefs"
	"github.com/studiowebux/dashcli/internal/theme"
)

// CreateTestModel creates a Model instance for testing with minimal
// dependencies and stubbed side effects
func CreateTestModel(t *testing.T) *Model {
	t.Helper()

	store := prefs.NewStore(filepath.Join(t.TempDir(), "prefs.json"))
	applier := theme.NewApplier(store)
	resolver := nav.NewResolver("https://example.com/dash/")
	items := nav.DefaultItems()

	registry, err := keybinds.NewDefaultRegistry(items)
	if err != nil {
		t.Fatalf("Failed to build default registry: %v", err)
	}

	m, err := New(store, applier, resolver, items, registry, "test-version")
	if err != nil {
		t.Fatalf("Failed to create test model: %v", err)
	}

	// Side effects are recorded, never performed
	m.openURL = func(string) error { return nil }
	m.copyURL = func(string) error { return nil }

	// Simulate the initial window size message
	m.width = 100
	m.height = 30
	m.updateHelpView()

	return &m
}

// pressKey feeds a single key through Update and returns the command
func pressKey(t *testing.T, m *Model, key string) tea.Cmd {
	t.Helper()

	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "backspace":
		msg = tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}

	_, cmd := m.Update(msg)
	return cmd
}

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/dashcli/internal/branding"
)

func brandingRecord(name, primary, hover string) branding.Branding {
	return branding.Branding{AppName: name, PrimaryColor: primary, PrimaryHoverColor: hover}
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

func TestNew_InitializesStateCorrectly(t *testing.T) {
	m := CreateTestModel(t)

	if m.mode != ModeNormal {
		t.Errorf("mode = %v, want ModeNormal", m.mode)
	}
	if m.appName != DefaultAppName {
		t.Errorf("appName = %q, want %q", m.appName, DefaultAppName)
	}
	if len(m.items) == 0 {
		t.Error("items should not be empty")
	}
	if m.matcher == nil {
		t.Error("matcher should be initialized")
	}
	if m.navIndex != 0 {
		t.Errorf("navIndex = %d, want 0", m.navIndex)
	}
}

func TestNew_RequiresItems(t *testing.T) {
	m := CreateTestModel(t)

	if _, err := New(m.store, m.applier, m.resolver, nil, m.registry, "v"); err == nil {
		t.Error("New() with no items expected error")
	}
}

func TestNew_AppliesPersistedPreferences(t *testing.T) {
	m := CreateTestModel(t)

	// New calls Apply, so startup state reflects the (empty) record
	if m.applier.ScaleMarker() != "" {
		t.Errorf("ScaleMarker() = %q at startup, want cleared", m.applier.ScaleMarker())
	}
}

func TestUpdate_WindowSize(t *testing.T) {
	m := CreateTestModel(t)

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.width != 120 || m.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", m.width, m.height)
	}
}

func TestUpdate_BrandingLoaded(t *testing.T) {
	m := CreateTestModel(t)

	m.Update(brandingLoadedMsg{branding: brandingRecord("Acme Dash", "#0057b7", "#003d82")})

	if m.appName != "Acme Dash" {
		t.Errorf("appName = %q, want Acme Dash", m.appName)
	}
}

func TestUpdate_BrandingWithoutNameKeepsDefault(t *testing.T) {
	m := CreateTestModel(t)

	m.Update(brandingLoadedMsg{branding: brandingRecord("", "#0057b7", "")})

	if m.appName != DefaultAppName {
		t.Errorf("appName = %q, want %q kept", m.appName, DefaultAppName)
	}
}

func TestSelectedItem_FollowsNavIndex(t *testing.T) {
	m := CreateTestModel(t)

	first := m.SelectedItem()
	m.navIndex = 1
	second := m.SelectedItem()

	if first.ID == second.ID {
		t.Error("SelectedItem() should change with navIndex")
	}
}

func TestView_EmptyBeforeFirstWindowSize(t *testing.T) {
	m := CreateTestModel(t)
	m.width = 0

	if m.View() != "" {
		t.Error("View() before sizing should render nothing")
	}
}

func TestView_RendersSelectedPageURL(t *testing.T) {
	m := CreateTestModel(t)

	view := m.View()

	if !contains(view, "https://example.com/dash/") {
		t.Error("View() should contain the resolved root URL")
	}
}

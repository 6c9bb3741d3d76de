package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/studiowebux/dashcli/internal/branding"
	"github.com/studiowebux/dashcli/internal/keybinds"
	"github.com/studiowebux/dashcli/internal/nav"
	"github.com/studiowebux/dashcli/internal/prefs"
	"github.com/studiowebux/dashcli/internal/theme"
)

// Mode represents the current shell mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeHelp
	ModePrefs
	ModeSwitcher
)

// Model represents the dashboard shell state
type Model struct {
	// Core state
	store    *prefs.Store
	applier  *theme.Applier
	resolver *nav.Resolver
	items    []nav.Item
	registry *keybinds.Registry
	matcher  *keybinds.Matcher
	mode     Mode
	version  string

	// Branding
	appName        string
	brandingSource string

	// Header state
	navIndex int // Currently selected header item

	// Help dialog state
	helpView viewport.Model

	// Preferences panel state
	prefsIndex int // 0 = text scale, 1 = high contrast

	// Quick switcher state
	switcherInput   string
	switcherMatches []int // Indices into items
	switcherIndex   int

	// UI state
	width     int
	height    int
	statusMsg string

	// Effects, injectable for tests
	openURL func(string) error
	copyURL func(string) error
}

// pendingExpiredMsg closes the two-key pending window opened with the
// carried generation
type pendingExpiredMsg struct {
	gen int
}

// brandingLoadedMsg delivers the one-shot branding fetch result
type brandingLoadedMsg struct {
	branding branding.Branding
}

// Init starts the one-shot branding fetch
func (m *Model) Init() tea.Cmd {
	if m.brandingSource == "" {
		return nil
	}
	return m.fetchBranding()
}

// fetchBranding loads the branding file in the background. Failures
// are swallowed: the shell keeps its defaults.
func (m *Model) fetchBranding() tea.Cmd {
	source := m.brandingSource
	return func() tea.Msg {
		b, err := branding.Fetch(source)
		if err != nil {
			return nil
		}
		return brandingLoadedMsg{branding: b}
	}
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)

	// Mouse events - capture to prevent terminal scrolling; all
	// navigation stays keyboard-only
	case tea.MouseMsg:

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateHelpView()

	case pendingExpiredMsg:
		// A stale generation means the window already closed; the
		// matcher ignores it
		m.matcher.Expire(msg.gen)

	case brandingLoadedMsg:
		if msg.branding.AppName != "" {
			m.appName = msg.branding.AppName
		}
		m.applier.SetBranding(msg.branding.PrimaryColor, msg.branding.PrimaryHoverColor)
	}

	return m, cmd
}

// SelectedItem returns the header item currently selected
func (m *Model) SelectedItem() nav.Item {
	if len(m.items) == 0 {
		return nav.Item{}
	}
	return m.items[m.navIndex]
}

// openItem resolves an item's logical path and opens it in the OS
// browser
func (m *Model) openItem(item nav.Item) tea.Cmd {
	url := m.resolver.Resolve(item.Path)
	if err := m.openURL(url); err != nil {
		m.statusMsg = "Failed to open " + url
		return nil
	}
	m.statusMsg = "Opened " + url
	return nil
}

// copySelectedURL puts the selected item's resolved URL on the
// clipboard
func (m *Model) copySelectedURL() {
	url := m.resolver.Resolve(m.SelectedItem().Path)
	if err := m.copyURL(url); err != nil {
		m.statusMsg = "Failed to copy URL"
		return
	}
	m.statusMsg = "Copied " + url
}

// toggleHelp opens or closes the shortcuts-help dialog. With the
// chrome not yet sized the dialog cannot render; the toggle is a
// no-op rather than a failure.
func (m *Model) toggleHelp() {
	if m.mode == ModeHelp {
		m.mode = ModeNormal
		return
	}
	if m.width == 0 || m.height == 0 {
		return
	}
	m.mode = ModeHelp
	m.updateHelpView()
	m.helpView.GotoTop()
}

// openSwitcher enters the quick switcher with an empty query
func (m *Model) openSwitcher() {
	m.mode = ModeSwitcher
	m.switcherInput = ""
	m.switcherIndex = 0
	m.updateSwitcherMatches()
	// Pending shortcut state does not carry into text entry
	m.matcher.Reset()
}

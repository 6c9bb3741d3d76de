package tui

import (
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sahilm/fuzzy"

	"github.com/studiowebux/dashcli/internal/keybinds"
	"github.com/studiowebux/dashcli/internal/nav"
	"github.com/studiowebux/dashcli/internal/prefs"
)

// handleKeyPress routes key events based on current mode
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	// Emergency exit works everywhere
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	switch m.mode {
	case ModeNormal:
		return m.handleNormalKeys(msg)
	case ModeHelp:
		return m.handleHelpKeys(msg)
	case ModePrefs:
		return m.handlePrefsKeys(msg)
	case ModeSwitcher:
		return m.handleSwitcherKeys(msg)
	}

	return nil
}

// qualifiesForShortcut reports whether a key event feeds the sequence
// matcher. Modified presses (ctrl, alt) never do, so terminal-level
// chords keep their meaning.
func qualifiesForShortcut(msg tea.KeyMsg) bool {
	if msg.Alt {
		return false
	}
	return !strings.Contains(msg.String(), "+")
}

// handleNormalKeys feeds qualifying presses through the sequence
// matcher and dispatches the bound action on a match
func (m *Model) handleNormalKeys(msg tea.KeyMsg) tea.Cmd {
	if !qualifiesForShortcut(msg) {
		return nil
	}

	result := m.matcher.Press(msg.String())
	if result.StartedPending {
		gen := result.Generation
		return tea.Tick(keybinds.PendingTimeout, func(time.Time) tea.Msg {
			return pendingExpiredMsg{gen: gen}
		})
	}
	if !result.Matched {
		return nil
	}

	return m.dispatch(result.Entry)
}

// dispatch performs the action a matched binding carries
func (m *Model) dispatch(entry keybinds.Entry) tea.Cmd {
	switch entry.Action {
	case keybinds.ActionQuit, keybinds.ActionQuitForce:
		return tea.Quit

	case keybinds.ActionToggleHelp:
		m.toggleHelp()

	case keybinds.ActionOpenPrefs:
		m.mode = ModePrefs
		m.prefsIndex = 0

	case keybinds.ActionOpenSwitcher:
		m.openSwitcher()

	case keybinds.ActionNextItem:
		if len(m.items) > 0 {
			m.navIndex = (m.navIndex + 1) % len(m.items)
		}

	case keybinds.ActionPrevItem:
		if len(m.items) > 0 {
			m.navIndex = (m.navIndex - 1 + len(m.items)) % len(m.items)
		}

	case keybinds.ActionOpenSelected:
		return m.openItem(m.SelectedItem())

	case keybinds.ActionCopyURL:
		m.copySelectedURL()

	case keybinds.ActionNavigate:
		item, ok := nav.FindByID(m.items, entry.Target)
		if !ok {
			m.statusMsg = "Unknown page: " + entry.Target
			return nil
		}
		m.navIndex = indexOf(m.items, item.ID)
		return m.openItem(item)
	}

	return nil
}

func indexOf(items []nav.Item, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return 0
}

// handleHelpKeys scrolls the shortcuts dialog and closes it
func (m *Model) handleHelpKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "q", "?":
		m.mode = ModeNormal
		return nil
	}

	var cmd tea.Cmd
	m.helpView, cmd = m.helpView.Update(msg)
	return cmd
}

// handlePrefsKeys drives the preferences panel. Every change is a
// read-modify-write against the store followed by a fresh Apply, so
// untouched fields survive.
func (m *Model) handlePrefsKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "q", "p":
		m.mode = ModeNormal

	case "up", "k":
		if m.prefsIndex > 0 {
			m.prefsIndex--
		}

	case "down", "j", "tab":
		if m.prefsIndex < 1 {
			m.prefsIndex++
		}

	case "enter", " ", "l", "right":
		m.cyclePref(1)

	case "h", "left":
		m.cyclePref(-1)
	}

	return nil
}

// cyclePref advances the selected preference row by delta steps
func (m *Model) cyclePref(delta int) {
	record := m.store.Load()

	if m.prefsIndex == 0 {
		record.TextScale = cycleScale(record.TextScale, delta)
	} else {
		enabled := !record.ContrastEnabled()
		record.HighContrast = &enabled
	}

	if err := m.store.Save(record); err != nil {
		m.statusMsg = "Failed to save preferences"
		return
	}
	m.applier.Apply()
}

// scaleOrder is the cycle the preferences panel steps through
var scaleOrder = []prefs.TextScale{prefs.ScaleDefault, prefs.ScaleLarge, prefs.ScaleLarger}

func cycleScale(current prefs.TextScale, delta int) prefs.TextScale {
	pos := 0
	for i, s := range scaleOrder {
		if s == current {
			pos = i
			break
		}
	}
	pos = (pos + delta + len(scaleOrder)) % len(scaleOrder)
	return scaleOrder[pos]
}

// handleSwitcherKeys drives the quick switcher. This is a text-entry
// surface: printable keys build the query and never reach the
// sequence matcher.
func (m *Model) handleSwitcherKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		return nil

	case "enter":
		if len(m.switcherMatches) > 0 {
			item := m.items[m.switcherMatches[m.switcherIndex]]
			m.navIndex = indexOf(m.items, item.ID)
			m.mode = ModeNormal
			return m.openItem(item)
		}
		m.mode = ModeNormal
		return nil

	case "up", "ctrl+p":
		if m.switcherIndex > 0 {
			m.switcherIndex--
		}
		return nil

	case "down", "ctrl+n":
		if m.switcherIndex < len(m.switcherMatches)-1 {
			m.switcherIndex++
		}
		return nil

	case "backspace":
		if m.switcherInput != "" {
			_, size := utf8.DecodeLastRuneInString(m.switcherInput)
			m.switcherInput = m.switcherInput[:len(m.switcherInput)-size]
			m.updateSwitcherMatches()
		}
		return nil
	}

	if msg.Type == tea.KeyRunes && !msg.Alt {
		m.switcherInput += string(msg.Runes)
		m.updateSwitcherMatches()
	}

	return nil
}

// updateSwitcherMatches refilters the item list against the current
// query. An empty query shows everything in declared order.
func (m *Model) updateSwitcherMatches() {
	m.switcherMatches = m.switcherMatches[:0]

	if m.switcherInput == "" {
		for i := range m.items {
			m.switcherMatches = append(m.switcherMatches, i)
		}
	} else {
		labels := make([]string, len(m.items))
		for i, item := range m.items {
			labels[i] = item.Label
		}
		for _, match := range fuzzy.Find(m.switcherInput, labels) {
			m.switcherMatches = append(m.switcherMatches, match.Index)
		}
	}

	if m.switcherIndex >= len(m.switcherMatches) {
		m.switcherIndex = 0
	}
}

// updateHelpView sizes the shortcuts dialog and regenerates its
// content from the registry
func (m *Model) updateHelpView() {
	if m.width == 0 || m.height == 0 {
		return
	}

	width := m.width - 2*ModalMargin
	if width > ModalMaxWidth {
		width = ModalMaxWidth
	}
	height := m.height - 2*ModalMargin - ModalChromeLines
	if height < 1 {
		height = 1
	}

	if m.helpView.Width == 0 {
		m.helpView = viewport.New(width, height)
	} else {
		m.helpView.Width = width
		m.helpView.Height = height
	}
	m.helpView.SetContent(m.renderHelpContent(width))
}

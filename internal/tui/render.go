package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/studiowebux/dashcli/internal/keybinds"
	"github.com/studiowebux/dashcli/internal/theme"
)

// View renders the current state
func (m *Model) View() string {
	if m.width == 0 {
		return ""
	}
	if m.width < MinTerminalWidth {
		return "Terminal too narrow - resize to at least 40 columns"
	}

	switch m.mode {
	case ModeHelp:
		return m.renderHelp()
	case ModePrefs:
		return m.renderPrefs()
	case ModeSwitcher:
		return m.renderSwitcher()
	}

	return m.renderMain()
}

// renderMain renders the header, the selected-page panel and the
// status bar
func (m *Model) renderMain() string {
	styles := m.applier.Styles()

	header := m.renderHeader(styles)
	body := m.renderBody(styles)
	statusBar := m.renderStatusBar(styles)

	bodyHeight := m.height - lipgloss.Height(header) - 1
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	body = lipgloss.NewStyle().Height(bodyHeight).Render(body)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		body,
		statusBar,
	)
}

// renderHeader renders the brand name and the page links
func (m *Model) renderHeader(styles theme.Styles) string {
	var links []string
	for i, item := range m.items {
		label := item.Label
		if i == m.navIndex {
			links = append(links, styles.Selected.Render(label))
		} else {
			links = append(links, styles.Accent.Render(label))
		}
	}

	row := styles.Title.Render(m.appName) + "  " + strings.Join(links, "  ")
	header := lipgloss.NewStyle().
		PaddingTop(styles.Pad).
		PaddingBottom(styles.Pad).
		Render(row)

	rule := styles.Border.Render(strings.Repeat("─", m.width))
	return lipgloss.JoinVertical(lipgloss.Left, header, rule)
}

// renderBody renders the details of the selected page
func (m *Model) renderBody(styles theme.Styles) string {
	item := m.SelectedItem()
	url := m.resolver.Resolve(item.Path)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(styles.Title.Render(item.Label))
	b.WriteString("\n\n")
	b.WriteString(styles.Subtle.Render("URL: "))
	b.WriteString(url)
	b.WriteString("\n")

	if seq := m.registry.BindingFor(keybinds.ActionNavigate, item.ID); seq != "unbound" {
		b.WriteString(styles.Subtle.Render("Shortcut: "))
		b.WriteString(seq)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Subtle.Render("enter open · y copy url · tab next page"))
	b.WriteString("\n")

	return lipgloss.NewStyle().
		PaddingLeft(2 + styles.Pad).
		Render(b.String())
}

// renderStatusBar renders the bottom status line
func (m *Model) renderStatusBar(styles theme.Styles) string {
	left := m.statusMsg
	if left == "" {
		left = styles.Subtle.Render(m.resolver.Root())
	}

	hints := "? help · / pages · p prefs · q quit"
	if marker := m.applier.ScaleMarker(); marker != "" {
		hints = "scale:" + marker + " · " + hints
	}
	if m.applier.HighContrast() {
		hints = "contrast · " + hints
	}
	right := styles.Subtle.Render(hints)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderModal wraps content in a bordered, centered box
func (m *Model) renderModal(title, content, footer string, styles theme.Styles) string {
	width := m.width - 2*ModalMargin
	if width > ModalMaxWidth {
		width = ModalMaxWidth
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n\n")
	b.WriteString(content)
	b.WriteString("\n\n")
	b.WriteString(styles.Subtle.Render(footer))

	box := styles.Border.
		Border(lipgloss.RoundedBorder()).
		Padding(styles.Pad, 2).
		Width(width).
		Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// renderHelp renders the keyboard shortcuts dialog
func (m *Model) renderHelp() string {
	styles := m.applier.Styles()
	return m.renderModal(
		"Keyboard Shortcuts",
		m.helpView.View(),
		"j/k scroll · esc close",
		styles,
	)
}

// renderHelpContent builds the shortcut list the help dialog scrolls.
// Sequences are grouped: navigation first, then everything else.
func (m *Model) renderHelpContent(width int) string {
	styles := m.applier.Styles()

	var navigation, general []keybinds.Entry
	for _, entry := range m.registry.Entries() {
		if entry.Action == keybinds.ActionNavigate {
			navigation = append(navigation, entry)
		} else {
			general = append(general, entry)
		}
	}

	var b strings.Builder
	writeSection := func(title string, entries []keybinds.Entry) {
		if len(entries) == 0 {
			return
		}
		b.WriteString(styles.Accent.Render(title))
		b.WriteString("\n")
		for _, entry := range entries {
			seq := fmt.Sprintf("%-10s", entry.SequenceString())
			b.WriteString("  " + styles.Title.Render(seq) + entry.Label + "\n")
		}
		b.WriteString("\n")
	}

	writeSection("Go to page", navigation)
	writeSection("General", general)

	return strings.TrimRight(b.String(), "\n")
}

// renderPrefs renders the preferences panel with live values from the
// store
func (m *Model) renderPrefs() string {
	styles := m.applier.Styles()
	record := m.store.Load()

	scale := string(record.TextScale)
	if scale == "" {
		scale = "default"
	}
	contrast := "off"
	if record.ContrastEnabled() {
		contrast = "on"
	}

	rows := []struct {
		label string
		value string
	}{
		{"Text scale", scale},
		{"High contrast", contrast},
	}

	var b strings.Builder
	for i, row := range rows {
		cursor := "  "
		label := row.label
		if i == m.prefsIndex {
			cursor = styles.Accent.Render("> ")
			label = styles.Selected.Render(row.label)
		}
		b.WriteString(fmt.Sprintf("%s%-24s %s\n", cursor, label, styles.Accent.Render(row.value)))
	}

	return m.renderModal(
		"Preferences",
		strings.TrimRight(b.String(), "\n"),
		"j/k select · enter change · esc close",
		styles,
	)
}

// renderSwitcher renders the fuzzy page switcher
func (m *Model) renderSwitcher() string {
	styles := m.applier.Styles()

	var b strings.Builder
	b.WriteString(styles.Accent.Render("> "))
	b.WriteString(m.switcherInput)
	b.WriteString(styles.Subtle.Render("█"))
	b.WriteString("\n\n")

	if len(m.switcherMatches) == 0 {
		b.WriteString(styles.Subtle.Render("  No matching pages"))
	}

	shown := m.switcherMatches
	if len(shown) > MaxSwitcherResults {
		shown = shown[:MaxSwitcherResults]
	}
	for pos, idx := range shown {
		item := m.items[idx]
		line := fmt.Sprintf("%-16s %s", item.Label, styles.Subtle.Render(m.resolver.Resolve(item.Path)))
		if pos == m.switcherIndex {
			b.WriteString(styles.Selected.Render("> " + item.Label))
			b.WriteString(" " + styles.Subtle.Render(m.resolver.Resolve(item.Path)))
			b.WriteString("\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	return m.renderModal(
		"Go to Page",
		strings.TrimRight(b.String(), "\n"),
		"type to filter · enter open · esc close",
		styles,
	)
}

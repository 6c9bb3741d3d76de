package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"} // Dark cyan / Cyan
	colorHover  = lipgloss.AdaptiveColor{Light: "#00008b", Dark: "#5fafff"} // Dark blue / Light blue
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"} // Dark gray / Light gray
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"} // Dark green / Bright green
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"} // Dark red / Bright red
)

// High-contrast palette: pure black/white, no mid grays
var (
	contrastFg     = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"}
	contrastAccent = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffff00"}
)

// Styles is the computed set of presentation tokens the chrome renders
// with. It is derived from the preference flags and branding overrides;
// callers must not cache it across Apply calls.
type Styles struct {
	Title    lipgloss.Style
	Accent   lipgloss.Style
	Selected lipgloss.Style
	Subtle   lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Border   lipgloss.Style

	// Pad is the extra chrome padding added by the text scale step
	Pad int
}

// buildStyles derives the token set from the current flags
func buildStyles(highContrast bool, pad int, primary, hover string) Styles {
	accent := lipgloss.TerminalColor(colorAccent)
	hoverColor := lipgloss.TerminalColor(colorHover)
	subtle := lipgloss.TerminalColor(colorGray)

	if primary != "" {
		accent = lipgloss.Color(primary)
	}
	if hover != "" {
		hoverColor = lipgloss.Color(hover)
	}

	if highContrast {
		accent = contrastAccent
		hoverColor = contrastFg
		subtle = contrastFg
	}

	s := Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Accent:   lipgloss.NewStyle().Foreground(accent),
		Subtle:   lipgloss.NewStyle().Foreground(subtle),
		Success:  lipgloss.NewStyle().Foreground(colorGreen),
		Error:    lipgloss.NewStyle().Foreground(colorRed),
		Border:   lipgloss.NewStyle().Foreground(subtle),
		Selected: lipgloss.NewStyle().Foreground(hoverColor).Bold(highContrast).Underline(true),
		Pad:      pad,
	}

	if highContrast {
		s.Success = lipgloss.NewStyle().Foreground(contrastFg).Bold(true)
		s.Error = lipgloss.NewStyle().Foreground(contrastFg).Bold(true).Reverse(true)
		s.Border = lipgloss.NewStyle().Foreground(contrastFg)
	}

	return s
}

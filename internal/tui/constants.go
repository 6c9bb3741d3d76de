package tui

// Layout constants
const (
	// ModalMargin is the gap between a modal and the terminal edge
	ModalMargin = 2

	// ModalMaxWidth caps modal width on wide terminals
	ModalMaxWidth = 72

	// ModalChromeLines is the vertical space a modal's border, title
	// and footer consume around its scrollable body
	ModalChromeLines = 6

	// MinTerminalWidth below which the shell renders a resize hint
	MinTerminalWidth = 40

	// MaxSwitcherResults shown in the quick switcher list
	MaxSwitcherResults = 8
)

// DefaultAppName is used until a branding fetch overrides it
const DefaultAppName = "Dashboard"

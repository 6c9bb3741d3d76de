package theme

import (
	"github.com/studiowebux/dashcli/internal/prefs"
)

// Applier projects the persisted preference record onto the global
// presentation state: a text-scale marker and a high-contrast flag on
// the chrome root, plus the derived style tokens. One Applier instance
// owns that state for the lifetime of the shell.
type Applier struct {
	store *prefs.Store

	scaleMarker  string
	highContrast bool

	// branding overrides, set once at startup when the fetch succeeds
	primary string
	hover   string
}

// NewApplier creates an applier over the given store
func NewApplier(store *prefs.Store) *Applier {
	return &Applier{store: store}
}

// Apply re-reads the full record from the store and projects it.
// It always reflects the latest persisted truth and is idempotent:
// calling it twice with no intervening save produces identical state.
func (a *Applier) Apply() {
	record := a.store.Load()

	if record.TextScale != "" && record.TextScale != prefs.ScaleDefault {
		a.scaleMarker = string(record.TextScale)
	} else {
		a.scaleMarker = ""
	}

	a.highContrast = record.ContrastEnabled()
}

// SetBranding installs the branding color overrides
func (a *Applier) SetBranding(primary, hover string) {
	a.primary = primary
	a.hover = hover
}

// ScaleMarker returns the current text-scale marker, empty for default
func (a *Applier) ScaleMarker() string {
	return a.scaleMarker
}

// HighContrast returns the current high-contrast flag
func (a *Applier) HighContrast() bool {
	return a.highContrast
}

// Pad returns the extra chrome padding for the current scale marker.
// Unrecognized markers fall back to the default spacing.
func (a *Applier) Pad() int {
	switch prefs.TextScale(a.scaleMarker) {
	case prefs.ScaleLarge:
		return 1
	case prefs.ScaleLarger:
		return 2
	default:
		return 0
	}
}

// Styles returns the token set for the current preference and
// branding state
func (a *Applier) Styles() Styles {
	return buildStyles(a.highContrast, a.Pad(), a.primary, a.hover)
}

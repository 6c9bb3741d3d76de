package keybinds

import (
	"strings"
	"time"
)

// PendingTimeout bounds how long the first key of a two-key sequence
// waits for its second key. A lone prefix press (e.g. "g" typed for an
// unrelated reason) is discarded after this window so it never blocks
// normal key handling for good.
const PendingTimeout = 800 * time.Millisecond

// Matcher consumes individual key tokens and reduces them against the
// registry, dispatching zero or one entry per press. It is a two-state
// machine: Idle (no pending token) and Pending (one token awaiting its
// second within the timeout window).
//
// The matcher owns its pending state; callers must route every
// qualifying press through Press and deliver expiry through Expire with
// the generation returned when the pending window opened. Starting a
// new pending window or completing a match bumps the generation, so a
// stale timer that fires after state has moved on is ignored.
type Matcher struct {
	registry *Registry
	pending  string
	gen      int
}

// Result describes the outcome of a single press
type Result struct {
	Entry          Entry // valid when Matched
	Matched        bool  // an entry was dispatched; suppress default handling
	StartedPending bool  // a pending window opened; schedule Expire(Generation)
	Generation     int
}

// NewMatcher creates a matcher over the given registry
func NewMatcher(registry *Registry) *Matcher {
	return &Matcher{registry: registry}
}

// Press feeds one key token into the state machine. Tokens are
// normalized to lowercase. Callers must only feed qualifying events:
// no modifier held, focus not in a text-entry control.
func (m *Matcher) Press(token string) Result {
	token = strings.ToLower(token)

	if m.pending != "" {
		first := m.pending
		// Clear-before-set: drop the pending token and invalidate the
		// outstanding expiry timer before anything else
		m.pending = ""
		m.gen++

		if entry, ok := m.registry.Lookup(first, token); ok {
			return Result{Entry: entry, Matched: true}
		}

		// Failed combo: the discarded first token is not reconsidered;
		// the new token is evaluated as a single key only
		if entry, ok := m.registry.Lookup(token); ok {
			return Result{Entry: entry, Matched: true}
		}

		return Result{}
	}

	if entry, ok := m.registry.Lookup(token); ok {
		return Result{Entry: entry, Matched: true}
	}

	if m.registry.IsPrefix(token) {
		m.pending = token
		m.gen++
		return Result{StartedPending: true, Generation: m.gen}
	}

	return Result{}
}

// Expire closes the pending window opened with the given generation.
// It returns true if pending state was actually discarded; a stale
// generation (the window already closed or a new one opened) is a
// no-op.
func (m *Matcher) Expire(gen int) bool {
	if m.pending == "" || gen != m.gen {
		return false
	}
	m.pending = ""
	return true
}

// Pending reports whether a first token is currently awaiting its
// second key
func (m *Matcher) Pending() bool {
	return m.pending != ""
}

// Reset discards any pending state, e.g. when the shell leaves normal
// mode
func (m *Matcher) Reset() {
	m.pending = ""
	m.gen++
}

/*
Package keybinds implements the dashboard's keyboard shortcut system.

# Overview

Shortcuts are one- or two-token key sequences ("?", "g h") bound to
actions. The Registry holds the fixed set of bindings built at startup;
the Matcher consumes individual key presses and reduces them against
the registry, dispatching at most one action per press.

# Sequence Matching

The Matcher is a two-state machine:

  - Idle: no pending token
  - Pending: the first token of a two-key sequence awaits its second
    key within an 800ms window

On each qualifying press (no modifier held, focus outside text-entry
controls) the token is lowercased and matched:

 1. Pending + token completes a registered two-token sequence: dispatch.
 2. Pending + token fails: the pending token is discarded and the new
    token is re-evaluated as a single key only.
 3. Token matches a single-key binding: dispatch.
 4. Token starts some two-token sequence: enter Pending and arm the
    timeout.
 5. Otherwise: no match, default key handling proceeds.

An unmatched sequence is not an error. Expiry is generation-counted so
a stale timer firing after the state moved on is ignored.

# Configuration File Format

User overrides live in keybinds.json (comments tolerated):

	{
	  "version": "1.0",
	  "bindings": {
	    "g m": "navigate:metrics",
	    "?": "toggle_help"
	  }
	}

Navigation targets are written as "navigate:<item-id>"; all other
values are plain action names.

# Validation

The Validator reports sequences using modifier combos (never
dispatched), reserved-key rebinds (ctrl+c), and two-token sequences
whose first token is shadowed by a single-key binding.
*/
package keybinds

/*
Package tui implements the terminal shell for the dashboard.

# Architecture

The shell follows the Bubble Tea framework's Model-Update-View pattern:
  - Model: Maintains all shell state
  - Update: Processes messages and returns commands
  - View: Renders the current state to the terminal

# Key Components

  - model.go: Core state and message handling, defines the Model struct
  - keys.go: Keyboard input handling and shortcut routing
  - render.go: View rendering for the header, panels and modals
  - init.go: Model construction and program startup

# Modes

The shell is mode-based. ModeNormal feeds qualifying key presses
through the sequence matcher; the other modes own the keyboard:

  - ModeHelp: scrollable keyboard-shortcuts dialog
  - ModePrefs: accessibility preferences panel
  - ModeSwitcher: fuzzy page switcher (text entry, matcher bypassed)

# Timing

A two-key shortcut prefix opens a pending window. The expiry is a
tea.Tick command carrying a generation number; the matcher discards
expiries whose generation no longer matches, so a resolved or
restarted sequence is never cancelled by a stale timer.
*/
package tui

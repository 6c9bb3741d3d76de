package keybinds

import (
	"fmt"

	"github.com/studiowebux/dashcli/internal/nav"
)

// NewDefaultRegistry creates a registry with the built-in shortcuts:
// single-key chrome bindings plus one "g <key>" navigation sequence per
// navigation item.
func NewDefaultRegistry(items []nav.Item) (*Registry, error) {
	r := NewRegistry()

	if err := registerChromeBindings(r); err != nil {
		return nil, err
	}
	if err := registerNavigationBindings(r, items); err != nil {
		return nil, err
	}

	return r, nil
}

// registerChromeBindings sets up the single-key shell bindings
func registerChromeBindings(r *Registry) error {
	entries := []Entry{
		{Sequence: []string{"?"}, Label: "Show keyboard shortcuts", Action: ActionToggleHelp},
		{Sequence: []string{"p"}, Label: "Accessibility preferences", Action: ActionOpenPrefs},
		{Sequence: []string{"/"}, Label: "Quick switcher", Action: ActionOpenSwitcher},
		{Sequence: []string{"y"}, Label: "Copy page URL", Action: ActionCopyURL},
		{Sequence: []string{"enter"}, Label: "Open selected page", Action: ActionOpenSelected},
		{Sequence: []string{"tab"}, Label: "Select next page", Action: ActionNextItem},
		{Sequence: []string{"l"}, Label: "Select next page", Action: ActionNextItem},
		{Sequence: []string{"h"}, Label: "Select previous page", Action: ActionPrevItem},
		{Sequence: []string{"q"}, Label: "Quit", Action: ActionQuit},
	}

	for _, entry := range entries {
		if err := r.Register(entry); err != nil {
			return err
		}
	}

	return nil
}

// registerNavigationBindings sets up "g <key>" sequences for the
// navigation items (vim-style, like gh for home)
func registerNavigationBindings(r *Registry, items []nav.Item) error {
	for _, item := range items {
		if item.Key == "" {
			continue // item reachable through the header only
		}

		entry := Entry{
			Sequence: []string{"g", item.Key},
			Label:    fmt.Sprintf("Go to %s", item.Label),
			Action:   ActionNavigate,
			Target:   item.ID,
		}
		if err := r.Register(entry); err != nil {
			return err
		}
	}

	return nil
}

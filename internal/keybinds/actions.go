package keybinds

// Action represents a user action that can be triggered by a shortcut
type Action string

const (
	// Global actions
	ActionQuit      Action = "quit"       // Quit the shell
	ActionQuitForce Action = "quit_force" // Force quit (ctrl+c)

	// Navigation actions
	ActionNavigate Action = "navigate" // Open a navigation target (entry carries the target id)

	// Chrome actions
	ActionToggleHelp   Action = "toggle_help"   // Toggle the shortcuts-help dialog
	ActionOpenPrefs    Action = "open_prefs"    // Open the accessibility preferences panel
	ActionOpenSwitcher Action = "open_switcher" // Open the quick switcher
	ActionCopyURL      Action = "copy_url"      // Copy the selected item's resolved URL
	ActionOpenSelected Action = "open_selected" // Open the header-selected item
	ActionNextItem     Action = "next_item"     // Select next header item
	ActionPrevItem     Action = "prev_item"     // Select previous header item
)

// ActionInfo contains metadata about an action
type ActionInfo struct {
	Action      Action
	Description string
	Category    string
}

// GetActionInfo returns human-readable information about an action
func GetActionInfo(action Action) ActionInfo {
	infos := map[Action]ActionInfo{
		ActionQuit:         {ActionQuit, "Quit", "Global"},
		ActionQuitForce:    {ActionQuitForce, "Force quit", "Global"},
		ActionNavigate:     {ActionNavigate, "Open page", "Navigation"},
		ActionToggleHelp:   {ActionToggleHelp, "Show keyboard shortcuts", "Chrome"},
		ActionOpenPrefs:    {ActionOpenPrefs, "Accessibility preferences", "Chrome"},
		ActionOpenSwitcher: {ActionOpenSwitcher, "Quick switcher", "Chrome"},
		ActionCopyURL:      {ActionCopyURL, "Copy page URL", "Navigation"},
		ActionOpenSelected: {ActionOpenSelected, "Open selected page", "Navigation"},
		ActionNextItem:     {ActionNextItem, "Select next page", "Navigation"},
		ActionPrevItem:     {ActionPrevItem, "Select previous page", "Navigation"},
	}

	if info, ok := infos[action]; ok {
		return info
	}

	return ActionInfo{action, string(action), "Unknown"}
}

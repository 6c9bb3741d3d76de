package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755
)

var (
	// ConfigDir is the global configuration directory (~/.dashcli)
	ConfigDir string

	// PrefsFile holds the persisted accessibility preferences record
	PrefsFile string

	// KeybindsFile holds user shortcut overrides
	KeybindsFile string

	// NavigationFile holds additional navigation items
	NavigationFile string
)

// Initialize sets up the configuration directory and file paths
// It creates ~/.dashcli/ if it doesn't exist
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	// Set global paths
	ConfigDir = filepath.Join(homeDir, ".dashcli")
	PrefsFile = filepath.Join(ConfigDir, "prefs.json")
	KeybindsFile = filepath.Join(ConfigDir, "keybinds.json")
	NavigationFile = filepath.Join(ConfigDir, "navigation.yaml")

	if err := os.MkdirAll(ConfigDir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ConfigDir, err)
	}

	return nil
}

// LocalConfigExists checks if there's a local prefs.json or navigation.yaml
func LocalConfigExists() bool {
	_, prefsErr := os.Stat("prefs.json")
	_, navErr := os.Stat("navigation.yaml")
	return prefsErr == nil || navErr == nil
}

// GetPrefsFilePath returns the preferences file path (local or global)
func GetPrefsFilePath() string {
	if _, err := os.Stat("prefs.json"); err == nil {
		return "prefs.json"
	}
	return PrefsFile
}

// GetNavigationFilePath returns the navigation file path (local or global)
func GetNavigationFilePath() string {
	if _, err := os.Stat("navigation.yaml"); err == nil {
		return "navigation.yaml"
	}
	return NavigationFile
}

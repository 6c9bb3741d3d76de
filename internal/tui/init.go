package tui

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/dashcli/internal/config"
	"github.com/studiowebux/dashcli/internal/keybinds"
	"github.com/studiowebux/dashcli/internal/nav"
	"github.com/studiowebux/dashcli/internal/prefs"
	"github.com/studiowebux/dashcli/internal/theme"
)

// Options configures a shell run
type Options struct {
	Version string

	// ScriptURL is the deployed shell script location the site root is
	// derived from. Ignored when Root is set explicitly.
	ScriptURL string

	// Root overrides root detection
	Root string

	// Branding is the URL or file the branding record is fetched from.
	// Empty means <root>branding.json.
	Branding string
}

// New creates a new shell model
func New(store *prefs.Store, applier *theme.Applier, resolver *nav.Resolver, items []nav.Item, registry *keybinds.Registry, version string) (Model, error) {
	if len(items) == 0 {
		return Model{}, errors.New("no navigation items configured")
	}

	// Preferences take effect before the first frame
	applier.Apply()

	m := Model{
		store:    store,
		applier:  applier,
		resolver: resolver,
		items:    items,
		registry: registry,
		matcher:  keybinds.NewMatcher(registry),
		mode:     ModeNormal,
		version:  version,
		appName:  DefaultAppName,
		helpView: viewport.New(80, 20),
		openURL:  openBrowser,
		copyURL:  clipboard.WriteAll,
	}
	m.updateSwitcherMatches()

	return m, nil
}

// Run starts the dashboard shell
func Run(opts Options) error {
	if err := config.Initialize(); err != nil {
		return err
	}

	root := opts.Root
	if root == "" {
		if opts.ScriptURL == "" {
			return errors.New("either a root or a script URL is required")
		}
		detected, err := nav.DetectRoot(opts.ScriptURL)
		if err != nil {
			return err
		}
		root = detected
	}
	resolver := nav.NewResolver(root)

	items, err := nav.LoadItems(config.GetNavigationFilePath())
	if err != nil {
		return err
	}

	registry, err := keybinds.LoadOrDefault(config.KeybindsFile, items)
	if err != nil {
		return err
	}

	store := prefs.NewStore("")
	applier := theme.NewApplier(store)

	m, err := New(store, applier, resolver, items, registry, opts.Version)
	if err != nil {
		return err
	}

	m.brandingSource = opts.Branding
	if m.brandingSource == "" && strings.HasPrefix(root, "http") {
		m.brandingSource = resolver.Resolve("/branding.json")
	}

	// Pass pointer since Update uses pointer receiver
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}

// openBrowser opens a URL with the platform opener
func openBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}

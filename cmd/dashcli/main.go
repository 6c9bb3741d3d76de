package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/studiowebux/dashcli/internal/config"
	"github.com/studiowebux/dashcli/internal/keybinds"
	"github.com/studiowebux/dashcli/internal/nav"
	"github.com/studiowebux/dashcli/internal/tui"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dashcli",
	Short: "Dashboard CLI - keyboard-driven dashboard shell",
	Long: `Dashboard CLI is a keyboard-driven shell for a statically hosted
dashboard site.

Run without arguments to start the interactive shell. Pages are reached
with two-key sequences (g h for home, g t for tools), and accessibility
preferences persist across runs.

The site root is derived from the deployed script URL (two directory
levels up), or set explicitly with --root.

Examples:
  dashcli --root https://tools.example.com/dash/     # Start the shell
  dashcli --script-url https://x.io/d/assets/app.js  # Derive the root
  dashcli open tools                                 # Open a page directly
  dashcli resolve /status/                           # Print a page URL
  dashcli keybinds export                            # Write default shortcuts`,
	Version: version,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(tui.Options{
			Version:   version,
			ScriptURL: flagScriptURL,
			Root:      flagRoot,
			Branding:  flagBranding,
		})
	},
}

var openCmd = &cobra.Command{
	Use:   "open <page-id>",
	Short: "Open a dashboard page in the browser",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		resolver, err := buildResolver()
		if err != nil {
			return err
		}

		items, err := nav.LoadItems(config.GetNavigationFilePath())
		if err != nil {
			return err
		}

		item, ok := nav.FindByID(items, args[0])
		if !ok {
			return fmt.Errorf("unknown page: %s", args[0])
		}

		url := resolver.Resolve(item.Path)
		fmt.Println(url)
		return openBrowser(url)
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <path>",
	Short: "Print the absolute URL for a logical path",
	Long: `Resolve a logical path against the site root and print the result.

"/" resolves to the site root itself; any other path is appended to it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, err := buildResolver()
		if err != nil {
			return err
		}

		fmt.Println(resolver.Resolve(args[0]))
		return nil
	},
}

var keybindsCmd = &cobra.Command{
	Use:   "keybinds",
	Short: "Manage shortcut overrides",
}

var keybindsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the default shortcuts to the keybinds file",
	Long: `Write the built-in shortcut set to the keybinds file as a starting
point for overrides. Refuses to overwrite an existing file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		if _, err := os.Stat(config.KeybindsFile); err == nil {
			return fmt.Errorf("%s already exists", config.KeybindsFile)
		}

		items, err := nav.LoadItems(config.GetNavigationFilePath())
		if err != nil {
			return err
		}

		defaults, err := keybinds.ExportDefaults(items)
		if err != nil {
			return err
		}
		if err := keybinds.SaveConfig(defaults, config.KeybindsFile); err != nil {
			return err
		}

		fmt.Printf("Wrote %s\n", config.KeybindsFile)
		return nil
	},
}

var (
	flagScriptURL string
	flagRoot      string
	flagBranding  string
)

// buildResolver derives the site root from the flags
func buildResolver() (*nav.Resolver, error) {
	if flagRoot != "" {
		return nav.NewResolver(flagRoot), nil
	}
	if flagScriptURL == "" {
		return nil, errors.New("either --root or --script-url is required")
	}

	root, err := nav.DetectRoot(flagScriptURL)
	if err != nil {
		return nil, err
	}
	return nav.NewResolver(root), nil
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

func init() {
	rootCmd.PersistentFlags().StringVar(&flagScriptURL, "script-url", "", "Deployed script URL the site root is derived from")
	rootCmd.PersistentFlags().StringVar(&flagRoot, "root", "", "Site root URL (overrides --script-url)")
	rootCmd.Flags().StringVar(&flagBranding, "branding", "", "Branding file URL or path (default <root>branding.json)")

	keybindsCmd.AddCommand(keybindsExportCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(keybindsCmd)
}

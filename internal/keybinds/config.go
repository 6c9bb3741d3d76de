package keybinds

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/studiowebux/dashcli/internal/nav"
	"github.com/tidwall/jsonc"
)

// Config represents the user's shortcut overrides. Sequences are
// space-separated token strings ("g h", "?"); values are action names,
// with navigation targets written as "navigate:<item-id>".
type Config struct {
	Version  string            `json:"version"`
	Bindings map[string]string `json:"bindings,omitempty"`
}

// LoadConfig loads shortcut overrides from a JSON file. Comments and
// trailing commas are tolerated.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(jsonc.ToJSON(data), &config); err != nil {
		return nil, fmt.Errorf("invalid keybinds.json format: %w", err)
	}

	return &config, nil
}

// SaveConfig saves shortcut overrides to a JSON file
func SaveConfig(config *Config, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ApplyConfig applies user overrides to a registry. User bindings
// replace default bindings for the same sequence.
func ApplyConfig(registry *Registry, config *Config, items []nav.Item) error {
	for sequence, actionStr := range config.Bindings {
		tokens := strings.Fields(strings.ToLower(sequence))
		if len(tokens) < 1 || len(tokens) > 2 {
			return fmt.Errorf("sequence %q must have 1 or 2 tokens", sequence)
		}

		action, target := parseAction(actionStr)
		entry := Entry{
			Sequence: tokens,
			Label:    GetActionInfo(action).Description,
			Action:   action,
			Target:   target,
		}
		if action == ActionNavigate {
			item, ok := nav.FindByID(items, target)
			if !ok {
				return fmt.Errorf("sequence %q targets unknown page %q", sequence, target)
			}
			entry.Label = fmt.Sprintf("Go to %s", item.Label)
		}

		registry.replace(entry)
	}

	return nil
}

// LoadOrDefault builds the default registry for the given navigation
// items and applies the user config when one exists
func LoadOrDefault(configPath string, items []nav.Item) (*Registry, error) {
	registry, err := NewDefaultRegistry(items)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(configPath); err == nil {
		config, err := LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load keybinds.json: %w", err)
		}

		if err := ApplyConfig(registry, config, items); err != nil {
			return nil, fmt.Errorf("failed to apply keybinds config: %w", err)
		}
	}
	// If config doesn't exist, that's fine - use defaults

	return registry, nil
}

// ExportDefaults exports the built-in bindings as a config file so
// users can see what can be customized
func ExportDefaults(items []nav.Item) (*Config, error) {
	registry, err := NewDefaultRegistry(items)
	if err != nil {
		return nil, err
	}

	config := &Config{
		Version:  "1.0",
		Bindings: make(map[string]string),
	}
	for _, entry := range registry.Entries() {
		config.Bindings[entry.SequenceString()] = formatAction(entry)
	}

	return config, nil
}

// replace installs an entry, overwriting any existing binding for the
// same sequence
func (r *Registry) replace(entry Entry) {
	r.entries[entry.SequenceString()] = entry
	r.rebuildPrefixes()
}

func (r *Registry) rebuildPrefixes() {
	r.prefixes = make(map[string]bool)
	for _, entry := range r.entries {
		if len(entry.Sequence) == 2 {
			r.prefixes[entry.Sequence[0]] = true
		}
	}
}

func parseAction(actionStr string) (Action, string) {
	if target, ok := strings.CutPrefix(actionStr, string(ActionNavigate)+":"); ok {
		return ActionNavigate, target
	}
	return Action(actionStr), ""
}

func formatAction(entry Entry) string {
	if entry.Action == ActionNavigate {
		return string(ActionNavigate) + ":" + entry.Target
	}
	return string(entry.Action)
}

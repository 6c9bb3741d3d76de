package nav

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Item is a logical navigation destination rendered in the header and
// reachable through the g-prefixed shortcuts. The item set is fixed at
// load and read-only afterwards.
type Item struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	Path  string `yaml:"path"`
	Key   string `yaml:"key,omitempty"` // second token of the "g <key>" shortcut
}

// DefaultItems returns the built-in navigation set
func DefaultItems() []Item {
	return []Item{
		{ID: "home", Label: "Home", Path: "/", Key: "h"},
		{ID: "tools", Label: "Tools", Path: "/tools/", Key: "t"},
		{ID: "status", Label: "Status", Path: "/status/", Key: "s"},
		{ID: "docs", Label: "Docs", Path: "/docs/", Key: "d"},
	}
}

// LoadItems returns the default navigation set extended by the entries
// in the given YAML file. A missing file is not an error; the defaults
// are returned unchanged. Entries whose id matches a default replace
// it, other entries are appended in file order.
func LoadItems(path string) ([]Item, error) {
	items := DefaultItems()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return items, nil
		}
		return nil, err
	}

	var extra []Item
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return nil, fmt.Errorf("invalid navigation file %s: %w", path, err)
	}

	for _, item := range extra {
		if item.ID == "" || item.Path == "" {
			return nil, fmt.Errorf("navigation entry missing id or path in %s", path)
		}
		items = merge(items, item)
	}

	return items, nil
}

// FindByID returns the item with the given id
func FindByID(items []Item, id string) (Item, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

func merge(items []Item, item Item) []Item {
	for i := range items {
		if items[i].ID == item.ID {
			// Keep the default shortcut key unless the override sets one
			if item.Key == "" {
				item.Key = items[i].Key
			}
			items[i] = item
			return items
		}
	}
	return append(items, item)
}

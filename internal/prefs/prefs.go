package prefs

import (
	"encoding/json"
	"os"

	"github.com/studiowebux/dashcli/internal/config"
)

// TextScale is the user-selected text size step
type TextScale string

const (
	ScaleDefault TextScale = "default"
	ScaleLarge   TextScale = "large"
	ScaleLarger  TextScale = "larger"
)

// Record is the persisted accessibility preferences record.
// Absent fields mean "use default". The whole record is serialized
// as a single JSON object under one file.
type Record struct {
	TextScale    TextScale `json:"textScale,omitempty"`
	HighContrast *bool     `json:"highContrast,omitempty"`
}

// ContrastEnabled returns the high-contrast flag, treating absent as false
func (r Record) ContrastEnabled() bool {
	if r.HighContrast == nil {
		return false
	}
	return *r.HighContrast
}

// Store reads and writes the preferences record
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
// An empty path falls back to the configured preferences file.
func NewStore(path string) *Store {
	if path == "" {
		path = config.GetPrefsFilePath()
	}
	return &Store{path: path}
}

// Load reads the persisted record. Missing, corrupt, or undecodable
// data yields an empty record; Load never reports an error.
func (s *Store) Load() Record {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Record{}
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return Record{}
	}

	return record
}

// Save serializes and persists the full record, overwriting any prior
// value. No partial-field merge happens here; callers must
// read-modify-write the complete record.
func (s *Store) Save(record Record) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, config.FilePermissions)
}

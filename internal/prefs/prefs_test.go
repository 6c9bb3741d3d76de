package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func testStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prefs.json")
	return NewStore(path), path
}

func TestLoad_MissingFile(t *testing.T) {
	s, _ := testStore(t)

	record := s.Load()

	if record.TextScale != "" {
		t.Errorf("TextScale = %q, want absent", record.TextScale)
	}
	if record.HighContrast != nil {
		t.Errorf("HighContrast = %v, want absent", *record.HighContrast)
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "truncated json", content: `{"textScale": "lar`},
		{name: "not json at all", content: "scale=large"},
		{name: "wrong top-level type", content: `["large"]`},
		{name: "empty file", content: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, path := testStore(t)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to write test file: %v", err)
			}

			record := s.Load()

			if record.TextScale != "" || record.HighContrast != nil {
				t.Errorf("Load() = %+v, want empty record", record)
			}
		})
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s, _ := testStore(t)

	if err := s.Save(Record{TextScale: ScaleLarge}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	record := s.Load()

	if record.TextScale != ScaleLarge {
		t.Errorf("TextScale = %q, want %q", record.TextScale, ScaleLarge)
	}
	if record.HighContrast != nil {
		t.Errorf("HighContrast = %v, want absent", *record.HighContrast)
	}
}

func TestSave_ReadModifyWritePreservesFields(t *testing.T) {
	s, _ := testStore(t)

	if err := s.Save(Record{TextScale: ScaleLarge}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// Mutate only the contrast flag the way a preference control would
	record := s.Load()
	enabled := true
	record.HighContrast = &enabled
	if err := s.Save(record); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got := s.Load()
	if got.TextScale != ScaleLarge {
		t.Errorf("TextScale = %q after contrast change, want %q preserved", got.TextScale, ScaleLarge)
	}
	if !got.ContrastEnabled() {
		t.Error("ContrastEnabled() = false, want true")
	}
}

func TestSave_OverwritesWholeRecord(t *testing.T) {
	s, _ := testStore(t)

	enabled := true
	if err := s.Save(Record{TextScale: ScaleLarger, HighContrast: &enabled}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// Saving a partial record drops fields the caller did not carry over
	if err := s.Save(Record{TextScale: ScaleLarge}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got := s.Load()
	if got.HighContrast != nil {
		t.Error("HighContrast survived a full-record overwrite, want absent")
	}
}

func TestLoad_ToleratesUnknownScale(t *testing.T) {
	s, path := testStore(t)
	if err := os.WriteFile(path, []byte(`{"textScale":"enormous"}`), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	record := s.Load()

	// The store does not validate enum values; the applier decides
	// what to do with unrecognized ones
	if record.TextScale != "enormous" {
		t.Errorf("TextScale = %q, want %q passed through", record.TextScale, "enormous")
	}
}

func TestContrastEnabled(t *testing.T) {
	enabled := true
	disabled := false

	tests := []struct {
		name   string
		record Record
		want   bool
	}{
		{name: "absent", record: Record{}, want: false},
		{name: "explicit false", record: Record{HighContrast: &disabled}, want: false},
		{name: "explicit true", record: Record{HighContrast: &enabled}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.ContrastEnabled(); got != tt.want {
				t.Errorf("ContrastEnabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

package keybinds

import (
	"testing"

	"github.com/studiowebux/dashcli/internal/nav"
)

func TestRegister_RejectsInvalidSequences(t *testing.T) {
	tests := []struct {
		name     string
		sequence []string
	}{
		{name: "empty", sequence: []string{}},
		{name: "three tokens", sequence: []string{"g", "h", "x"}},
		{name: "blank token", sequence: []string{" "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			err := r.Register(Entry{Sequence: tt.sequence, Action: ActionQuit})
			if err == nil {
				t.Errorf("Register(%v) expected error", tt.sequence)
			}
		})
	}
}

func TestRegister_RejectsDuplicates(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(Entry{Sequence: []string{"g", "h"}, Action: ActionNavigate, Target: "home"}); err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	err := r.Register(Entry{Sequence: []string{"g", "h"}, Action: ActionNavigate, Target: "tools"})
	if err == nil {
		t.Error("Register() expected duplicate-sequence error")
	}
}

func TestRegister_NormalizesTokens(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(Entry{Sequence: []string{"G", " H "}, Action: ActionNavigate, Target: "home"}); err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	if _, ok := r.Lookup("g", "h"); !ok {
		t.Error("Lookup(g, h) not found after registering 'G', ' H '")
	}
}

func TestIsPrefix(t *testing.T) {
	r := testRegistry(t)

	if !r.IsPrefix("g") {
		t.Error("IsPrefix(g) = false, want true")
	}
	if r.IsPrefix("h") {
		t.Error("IsPrefix(h) = true, want false")
	}
	if r.IsPrefix("?") {
		t.Error("IsPrefix(?) = true, want false")
	}
}

func TestEntries_SortedBySequence(t *testing.T) {
	r := testRegistry(t)

	entries := r.Entries()
	if len(entries) != 4 {
		t.Fatalf("got %d entries, want 4", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].SequenceString() > entries[i].SequenceString() {
			t.Errorf("entries out of order: %q before %q",
				entries[i-1].SequenceString(), entries[i].SequenceString())
		}
	}
}

func TestBindingFor(t *testing.T) {
	r := testRegistry(t)

	if got := r.BindingFor(ActionNavigate, "home"); got != "g h" {
		t.Errorf("BindingFor(navigate, home) = %q, want %q", got, "g h")
	}
	if got := r.BindingFor(ActionToggleHelp, ""); got != "?" {
		t.Errorf("BindingFor(toggle_help) = %q, want %q", got, "?")
	}
	if got := r.BindingFor(ActionOpenPrefs, ""); got != "unbound" {
		t.Errorf("BindingFor(open_prefs) = %q, want unbound", got)
	}
}

func TestNewDefaultRegistry(t *testing.T) {
	r, err := NewDefaultRegistry(nav.DefaultItems())
	if err != nil {
		t.Fatalf("NewDefaultRegistry() error: %v", err)
	}

	// One g-sequence per default nav item
	for _, item := range nav.DefaultItems() {
		entry, ok := r.Lookup("g", item.Key)
		if !ok {
			t.Errorf("no binding for 'g %s' (%s)", item.Key, item.ID)
			continue
		}
		if entry.Action != ActionNavigate || entry.Target != item.ID {
			t.Errorf("'g %s' = %+v, want navigate to %s", item.Key, entry, item.ID)
		}
	}

	if entry, ok := r.Lookup("?"); !ok || entry.Action != ActionToggleHelp {
		t.Error("'?' should toggle the help dialog")
	}

	// The defaults must not shadow any two-token prefix
	result := NewValidator().ValidateRegistry(r)
	for _, warn := range result.Warnings {
		t.Errorf("default registry warning: %s", warn.Error())
	}
	if result.HasErrors() {
		t.Errorf("default registry invalid:\n%s", result.String())
	}
}

func TestNewDefaultRegistry_SkipsKeylessItems(t *testing.T) {
	items := []nav.Item{
		{ID: "home", Label: "Home", Path: "/", Key: "h"},
		{ID: "hidden", Label: "Hidden", Path: "/hidden/"},
	}

	r, err := NewDefaultRegistry(items)
	if err != nil {
		t.Fatalf("NewDefaultRegistry() error: %v", err)
	}

	for _, entry := range r.Entries() {
		if entry.Target == "hidden" {
			t.Error("keyless item should not get a navigation binding")
		}
	}
}

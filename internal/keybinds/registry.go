package keybinds

import (
	"fmt"
	"sort"
	"strings"
)

// Entry is one registered shortcut: a one- or two-token key sequence
// bound to an action. Entries are defined once at startup and never
// mutated at runtime.
type Entry struct {
	Sequence []string // 1 or 2 lowercase key tokens
	Label    string   // display string for the help dialog
	Action   Action
	Target   string // navigation target id for ActionNavigate, otherwise empty
}

// SequenceString returns the canonical space-joined form of the sequence
func (e Entry) SequenceString() string {
	return strings.Join(e.Sequence, " ")
}

// Registry maps key sequences to entries. It is consulted by the
// matcher and the help dialog, never mutated after startup.
type Registry struct {
	entries map[string]Entry

	// prefixes holds the first tokens of all two-token sequences
	prefixes map[string]bool
}

// NewRegistry creates an empty shortcut registry
func NewRegistry() *Registry {
	return &Registry{
		entries:  make(map[string]Entry),
		prefixes: make(map[string]bool),
	}
}

// Register adds an entry to the registry. Sequences must have one or
// two tokens and be unique.
func (r *Registry) Register(entry Entry) error {
	if len(entry.Sequence) < 1 || len(entry.Sequence) > 2 {
		return fmt.Errorf("sequence must have 1 or 2 tokens, got %d", len(entry.Sequence))
	}

	normalized := make([]string, len(entry.Sequence))
	for i, token := range entry.Sequence {
		token = strings.ToLower(strings.TrimSpace(token))
		if token == "" {
			return fmt.Errorf("empty token in sequence %q", entry.SequenceString())
		}
		normalized[i] = token
	}
	entry.Sequence = normalized

	key := entry.SequenceString()
	if _, exists := r.entries[key]; exists {
		return fmt.Errorf("duplicate binding for sequence %q", key)
	}

	r.entries[key] = entry
	if len(entry.Sequence) == 2 {
		r.prefixes[entry.Sequence[0]] = true
	}

	return nil
}

// Lookup returns the entry bound to the exact token sequence
func (r *Registry) Lookup(tokens ...string) (Entry, bool) {
	entry, ok := r.entries[strings.Join(tokens, " ")]
	return entry, ok
}

// IsPrefix reports whether the token starts any two-token sequence
func (r *Registry) IsPrefix(token string) bool {
	return r.prefixes[token]
}

// Entries returns all registered entries sorted by sequence, for
// rendering the help dialog
func (r *Registry) Entries() []Entry {
	entries := make([]Entry, 0, len(r.entries))
	for _, entry := range r.entries {
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].SequenceString() < entries[j].SequenceString()
	})

	return entries
}

// HasBinding checks if a sequence is bound
func (r *Registry) HasBinding(tokens ...string) bool {
	_, ok := r.Lookup(tokens...)
	return ok
}

// BindingFor returns the sequence string bound to an action, for
// rendering shortcut hints. Navigation entries are further narrowed by
// target id.
func (r *Registry) BindingFor(action Action, target string) string {
	for _, entry := range r.Entries() {
		if entry.Action == action && entry.Target == target {
			return entry.SequenceString()
		}
	}
	return "unbound"
}

package keybinds

import (
	"fmt"
	"strings"
)

// ValidationError represents a shortcut validation issue
type ValidationError struct {
	Type     string // "conflict", "invalid", "warning"
	Sequence string
	Message  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Sequence, e.Message)
}

// ValidationResult contains all validation errors and warnings
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors returns true if there are any errors
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if there are any warnings
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// String returns a human-readable summary of validation results
func (r *ValidationResult) String() string {
	var sb strings.Builder

	if len(r.Errors) > 0 {
		sb.WriteString(fmt.Sprintf("Errors (%d):\n", len(r.Errors)))
		for _, err := range r.Errors {
			sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
		}
	}

	if len(r.Warnings) > 0 {
		sb.WriteString(fmt.Sprintf("Warnings (%d):\n", len(r.Warnings)))
		for _, warn := range r.Warnings {
			sb.WriteString(fmt.Sprintf("  - %s\n", warn.Error()))
		}
	}

	if !r.HasErrors() && !r.HasWarnings() {
		sb.WriteString("No issues found")
	}

	return sb.String()
}

// Validator validates shortcut registries
type Validator struct {
	// reservedTokens are keys that should not be rebound
	reservedTokens map[string]bool
}

// NewValidator creates a new shortcut validator
func NewValidator() *Validator {
	return &Validator{
		reservedTokens: map[string]bool{
			"ctrl+c": true, // Force quit should always work
		},
	}
}

// ValidateRegistry validates an entire registry
func (v *Validator) ValidateRegistry(registry *Registry) *ValidationResult {
	result := &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	v.checkTokens(registry, result)
	v.checkReservedTokens(registry, result)
	v.checkAmbiguousPrefixes(registry, result)

	return result
}

// checkTokens flags sequences containing modifier combos; modified
// keys never qualify for sequence matching so such bindings can never
// fire
func (v *Validator) checkTokens(registry *Registry, result *ValidationResult) {
	for _, entry := range registry.Entries() {
		for _, token := range entry.Sequence {
			if v.reservedTokens[token] {
				continue // reported separately
			}
			if strings.Contains(token, "+") {
				result.Errors = append(result.Errors, ValidationError{
					Type:     "invalid",
					Sequence: entry.SequenceString(),
					Message:  fmt.Sprintf("modified key %q is never dispatched", token),
				})
			}
		}
	}
}

// checkReservedTokens checks if any reserved keys have been rebound
func (v *Validator) checkReservedTokens(registry *Registry, result *ValidationResult) {
	for _, entry := range registry.Entries() {
		for _, token := range entry.Sequence {
			if v.reservedTokens[token] && entry.Action != ActionQuitForce {
				result.Warnings = append(result.Warnings, ValidationError{
					Type:     "warning",
					Sequence: entry.SequenceString(),
					Message:  "reserved key rebound (may cause issues)",
				})
			}
		}
	}
}

// checkAmbiguousPrefixes warns when the first token of a two-token
// sequence is also bound as a single-key shortcut. The single-key
// binding wins, so the two-token sequence is unreachable.
func (v *Validator) checkAmbiguousPrefixes(registry *Registry, result *ValidationResult) {
	for _, entry := range registry.Entries() {
		if len(entry.Sequence) != 2 {
			continue
		}
		if single, ok := registry.Lookup(entry.Sequence[0]); ok {
			result.Warnings = append(result.Warnings, ValidationError{
				Type:     "warning",
				Sequence: entry.SequenceString(),
				Message: fmt.Sprintf("first token shadowed by single-key binding %q (%s)",
					entry.Sequence[0], single.Action),
			})
		}
	}
}

// ValidateConfig validates shortcut overrides before applying them
func (v *Validator) ValidateConfig(config *Config) *ValidationResult {
	result := &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	seen := make(map[string]bool)
	for sequence, actionStr := range config.Bindings {
		tokens := strings.Fields(strings.ToLower(sequence))

		if len(tokens) < 1 || len(tokens) > 2 {
			result.Errors = append(result.Errors, ValidationError{
				Type:     "invalid",
				Sequence: sequence,
				Message:  fmt.Sprintf("sequence must have 1 or 2 tokens, got %d", len(tokens)),
			})
			continue
		}

		if actionStr == "" {
			result.Errors = append(result.Errors, ValidationError{
				Type:     "invalid",
				Sequence: sequence,
				Message:  "action cannot be empty",
			})
		}

		canonical := strings.Join(tokens, " ")
		if seen[canonical] {
			result.Errors = append(result.Errors, ValidationError{
				Type:     "conflict",
				Sequence: sequence,
				Message:  "sequence bound more than once",
			})
		}
		seen[canonical] = true
	}

	return result
}

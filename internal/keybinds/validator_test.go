package keybinds

import (
	"strings"
	"testing"
)

func TestNewValidator(t *testing.T) {
	v := NewValidator()

	if v == nil {
		t.Fatal("NewValidator returned nil")
	}

	if !v.reservedTokens["ctrl+c"] {
		t.Error("Expected ctrl+c to be a reserved key")
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      ValidationError
		expected string
	}{
		{
			name: "conflict error",
			err: ValidationError{
				Type:     "conflict",
				Sequence: "g h",
				Message:  "sequence bound more than once",
			},
			expected: "[conflict] g h: sequence bound more than once",
		},
		{
			name: "warning",
			err: ValidationError{
				Type:     "warning",
				Sequence: "ctrl+c",
				Message:  "reserved key rebound (may cause issues)",
			},
			expected: "[warning] ctrl+c: reserved key rebound (may cause issues)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestValidationResult_String(t *testing.T) {
	tests := []struct {
		name     string
		result   *ValidationResult
		contains []string
	}{
		{
			name:     "no issues",
			result:   &ValidationResult{},
			contains: []string{"No issues found"},
		},
		{
			name: "errors and warnings",
			result: &ValidationResult{
				Errors: []ValidationError{
					{Type: "invalid", Sequence: "a b c", Message: "too many tokens"},
				},
				Warnings: []ValidationError{
					{Type: "warning", Sequence: "g h", Message: "shadowed"},
				},
			},
			contains: []string{"Errors (1)", "Warnings (1)", "invalid", "shadowed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.result.String()
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("String() output missing %q, got:\n%s", want, got)
				}
			}
		})
	}
}

func TestValidateRegistry_AmbiguousPrefix(t *testing.T) {
	v := NewValidator()

	r := NewRegistry()
	if err := r.Register(Entry{Sequence: []string{"g"}, Action: ActionOpenSwitcher}); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if err := r.Register(Entry{Sequence: []string{"g", "h"}, Action: ActionNavigate, Target: "home"}); err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	result := v.ValidateRegistry(r)

	if !result.HasWarnings() {
		t.Fatal("expected shadowed-prefix warning")
	}
	if !strings.Contains(result.Warnings[0].Message, "shadowed") {
		t.Errorf("warning = %q, want shadowed-prefix message", result.Warnings[0].Message)
	}
}

func TestValidateRegistry_ModifiedKeyNeverFires(t *testing.T) {
	v := NewValidator()

	r := NewRegistry()
	if err := r.Register(Entry{Sequence: []string{"ctrl+h"}, Action: ActionNavigate, Target: "home"}); err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	result := v.ValidateRegistry(r)

	if !result.HasErrors() {
		t.Fatal("expected error for modified-key sequence")
	}
	if result.Errors[0].Type != "invalid" {
		t.Errorf("error type = %q, want invalid", result.Errors[0].Type)
	}
}

func TestValidateRegistry_ReservedKeyRebound(t *testing.T) {
	v := NewValidator()

	r := NewRegistry()
	if err := r.Register(Entry{Sequence: []string{"ctrl+c"}, Action: ActionToggleHelp}); err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	result := v.ValidateRegistry(r)

	if len(result.Warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(result.Warnings))
	}
}

func TestValidateConfig(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name         string
		config       *Config
		expectErrors bool
	}{
		{
			name: "valid config",
			config: &Config{
				Bindings: map[string]string{
					"g m": "navigate:metrics",
					"?":   "toggle_help",
				},
			},
			expectErrors: false,
		},
		{
			name:         "empty config",
			config:       &Config{},
			expectErrors: false,
		},
		{
			name: "too many tokens",
			config: &Config{
				Bindings: map[string]string{"g h x": "navigate:home"},
			},
			expectErrors: true,
		},
		{
			name: "empty action",
			config: &Config{
				Bindings: map[string]string{"g m": ""},
			},
			expectErrors: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.ValidateConfig(tt.config)

			if tt.expectErrors && !result.HasErrors() {
				t.Error("Expected errors but got none")
			}
			if !tt.expectErrors && result.HasErrors() {
				t.Errorf("Expected no errors but got: %v", result.Errors)
			}
		})
	}
}

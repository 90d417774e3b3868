package sync

import (
	"errors"
	"testing"
)

func TestGate_Check_ValidKey(t *testing.T) {
	gate := NewGate("top-secret")

	if err := gate.Check("top-secret"); err != nil {
		t.Errorf("Expected matching key to pass, got error: %v", err)
	}
}

func TestGate_Check_InvalidKey(t *testing.T) {
	gate := NewGate("top-secret")

	err := gate.Check("wrong-key")
	if err == nil {
		t.Fatal("Expected error for non-matching key")
	}

	var unauthorizedErr *UnauthorizedError
	if !errors.As(err, &unauthorizedErr) {
		t.Errorf("Expected UnauthorizedError, got %T", err)
	}

	// The error text must not leak the expected secret
	if err.Error() != "invalid key" {
		t.Errorf("Expected generic error message, got: %s", err.Error())
	}
}

func TestGate_Check_EmptyKey(t *testing.T) {
	gate := NewGate("top-secret")

	var unauthorizedErr *UnauthorizedError
	if err := gate.Check(""); !errors.As(err, &unauthorizedErr) {
		t.Errorf("Expected UnauthorizedError for empty key, got %v", err)
	}
}

func TestGate_Check_SecretNotConfigured(t *testing.T) {
	gate := NewGate("")

	err := gate.Check("anything")
	if err == nil {
		t.Fatal("Expected error when no secret is configured")
	}

	var configErr *ConfigError
	if !errors.As(err, &configErr) {
		t.Errorf("Expected ConfigError, got %T", err)
	}
}

func TestGate_Check_EmptyKeyEmptySecret(t *testing.T) {
	gate := NewGate("")

	// Even a matching empty key fails: a missing secret never authorizes
	var configErr *ConfigError
	if err := gate.Check(""); !errors.As(err, &configErr) {
		t.Errorf("Expected ConfigError, got %v", err)
	}
}

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"unauthorized", &UnauthorizedError{}, 401},
		{"config", &ConfigError{Message: "missing key"}, 500},
		{"upstream", &UpstreamError{StatusCode: 503, Message: "down"}, 502},
		{"unknown", errors.New("boom"), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusForError(tt.err); got != tt.expected {
				t.Errorf("Expected status %d, got %d", tt.expected, got)
			}
		})
	}
}

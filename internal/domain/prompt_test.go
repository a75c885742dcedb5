package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestNewPrompt(t *testing.T) {
	t.Parallel() // Enable parallel execution

	// Test valid prompt with surrounding whitespace
	prompt, err := NewPrompt("  a cat wearing a top hat  ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if prompt.String() != "a cat wearing a top hat" {
		t.Errorf("Expected trimmed prompt, got %q", prompt.String())
	}

	// Test empty prompt
	_, err = NewPrompt("")
	if !errors.Is(err, ErrPromptEmpty) {
		t.Errorf("Expected error %v, got %v", ErrPromptEmpty, err)
	}

	// Test whitespace-only prompt
	_, err = NewPrompt("   \t\n  ")
	if !errors.Is(err, ErrPromptEmpty) {
		t.Errorf("Expected error %v, got %v", ErrPromptEmpty, err)
	}

	// Test prompt at the length bound
	atLimit := strings.Repeat("x", MaxPromptLength)
	if _, err := NewPrompt(atLimit); err != nil {
		t.Errorf("Expected no error for prompt of %d characters, got %v", MaxPromptLength, err)
	}

	// Test prompt over the length bound
	overLimit := strings.Repeat("x", MaxPromptLength+1)
	if _, err := NewPrompt(overLimit); !errors.Is(err, ErrPromptTooLong) {
		t.Errorf("Expected error %v, got %v", ErrPromptTooLong, err)
	}

	// Trailing whitespace does not count against the bound
	padded := "  " + atLimit + "  "
	if _, err := NewPrompt(padded); err != nil {
		t.Errorf("Expected no error for padded prompt, got %v", err)
	}
}

func TestNewPromptCountsCharactersNotBytes(t *testing.T) {
	t.Parallel() // Enable parallel execution

	// 500 two-byte characters is 1000 bytes but exactly at the bound
	multibyte := strings.Repeat("é", MaxPromptLength)
	if _, err := NewPrompt(multibyte); err != nil {
		t.Errorf("Expected no error for %d-character multibyte prompt, got %v", MaxPromptLength, err)
	}

	// One character over the bound still fails
	over := strings.Repeat("é", MaxPromptLength+1)
	if _, err := NewPrompt(over); !errors.Is(err, ErrPromptTooLong) {
		t.Errorf("Expected error %v, got %v", ErrPromptTooLong, err)
	}
}

func TestNewPromptIdempotent(t *testing.T) {
	t.Parallel() // Enable parallel execution

	// Validating an already-validated prompt is a no-op
	first, err := NewPrompt("  hi  ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	second, err := NewPrompt(first.String())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if first != second {
		t.Errorf("Expected %q, got %q", first, second)
	}

	if second.String() != "hi" {
		t.Errorf("Expected %q, got %q", "hi", second.String())
	}
}

package domain

import (
	"strings"
	"unicode/utf8"
)

// MaxPromptLength is the maximum number of characters allowed in a prompt
// after surrounding whitespace has been trimmed.
const MaxPromptLength = 500

// Prompt is a validated text description of the image to generate.
// A Prompt is immutable once created; construct one with NewPrompt.
type Prompt string

// NewPrompt validates and normalizes raw user input into a Prompt.
// It trims surrounding whitespace and enforces the length bound.
// Returns an error if the trimmed input is empty or exceeds MaxPromptLength.
func NewPrompt(raw string) (Prompt, error) {
	cleaned := strings.TrimSpace(raw)

	if cleaned == "" {
		return "", ErrPromptEmpty
	}

	// The bound is in characters, not bytes; multibyte prompts must not be
	// penalized for their encoding.
	if utf8.RuneCountInString(cleaned) > MaxPromptLength {
		return "", ErrPromptTooLong
	}

	return Prompt(cleaned), nil
}

// String returns the prompt text.
func (p Prompt) String() string {
	return string(p)
}

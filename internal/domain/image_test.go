package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestNewGeneratedImage(t *testing.T) {
	t.Parallel() // Enable parallel execution

	prompt, err := NewPrompt("a lighthouse at dusk")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	img, err := NewGeneratedImage(prompt, "https://example.com/out.png", "generated_images/generated_image_20250101_120000.png")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if img.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if img.Prompt != prompt {
		t.Errorf("Expected prompt %q, got %q", prompt, img.Prompt)
	}

	if img.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	// Missing source URL
	_, err = NewGeneratedImage(prompt, "", "out.png")
	if !errors.Is(err, ErrEmptySourceURL) {
		t.Errorf("Expected error %v, got %v", ErrEmptySourceURL, err)
	}

	// Missing filepath
	_, err = NewGeneratedImage(prompt, "https://example.com/out.png", "")
	if !errors.Is(err, ErrEmptyFilepath) {
		t.Errorf("Expected error %v, got %v", ErrEmptyFilepath, err)
	}
}

func TestGeneratedImageValidate(t *testing.T) {
	t.Parallel() // Enable parallel execution

	valid := GeneratedImage{
		ID:        uuid.New(),
		Prompt:    "a lighthouse at dusk",
		SourceURL: "https://example.com/out.png",
		Filepath:  "out.png",
	}

	if err := valid.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	invalid := valid
	invalid.ID = uuid.Nil
	if err := invalid.Validate(); !errors.Is(err, ErrEmptyImageID) {
		t.Errorf("Expected error %v, got %v", ErrEmptyImageID, err)
	}

	invalid = valid
	invalid.Prompt = ""
	if err := invalid.Validate(); !errors.Is(err, ErrPromptEmpty) {
		t.Errorf("Expected error %v, got %v", ErrPromptEmpty, err)
	}
}

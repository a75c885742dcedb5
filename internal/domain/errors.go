package domain

import "errors"

// Common validation errors for domain entities.
var (
	// ErrPromptEmpty is returned when a prompt is empty or only whitespace.
	ErrPromptEmpty = errors.New("prompt cannot be empty or whitespace")

	// ErrPromptTooLong is returned when a prompt exceeds MaxPromptLength after trimming.
	ErrPromptTooLong = errors.New("prompt too long, maximum 500 characters")

	// ErrEmptyImageID is returned when a generated image has a nil ID.
	ErrEmptyImageID = errors.New("image ID cannot be empty")

	// ErrEmptySourceURL is returned when a generated image has no source URL.
	ErrEmptySourceURL = errors.New("image source URL cannot be empty")

	// ErrEmptyFilepath is returned when a generated image has no destination path.
	ErrEmptyFilepath = errors.New("image filepath cannot be empty")
)

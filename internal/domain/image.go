package domain

import (
	"time"

	"github.com/google/uuid"
)

// GeneratedImage is the final artifact of a successful generation: a record
// of the saved image file, the prompt that produced it, and the remote URL
// the bytes were fetched from. The file on disk it names is the owned
// resource; the record itself carries no further lifecycle.
type GeneratedImage struct {
	ID        uuid.UUID `json:"id"`
	Prompt    Prompt    `json:"prompt"`
	SourceURL string    `json:"source_url"`
	Filepath  string    `json:"filepath"`
	CreatedAt time.Time `json:"created_at"`
}

// NewGeneratedImage creates a GeneratedImage record for a saved file.
// It generates a new UUID and sets the creation timestamp.
// Returns an error if validation fails.
func NewGeneratedImage(prompt Prompt, sourceURL, filepath string) (*GeneratedImage, error) {
	img := &GeneratedImage{
		ID:        uuid.New(),
		Prompt:    prompt,
		SourceURL: sourceURL,
		Filepath:  filepath,
		CreatedAt: time.Now().UTC(),
	}

	if err := img.Validate(); err != nil {
		return nil, err
	}

	return img, nil
}

// Validate checks if the GeneratedImage has valid data.
// Returns an error if any field fails validation.
func (g *GeneratedImage) Validate() error {
	if g.ID == uuid.Nil {
		return ErrEmptyImageID
	}

	if g.Prompt == "" {
		return ErrPromptEmpty
	}

	if g.SourceURL == "" {
		return ErrEmptySourceURL
	}

	if g.Filepath == "" {
		return ErrEmptyFilepath
	}

	return nil
}

package generation

import (
	"context"

	"github.com/phrazzld/imagegen/internal/domain"
)

// Generator defines the interface for invoking a remote text-to-image service.
// This interface serves as a boundary between the application core and the
// external service, following the hexagonal architecture pattern.
type Generator interface {
	// GenerateImage submits the prompt to the remote service and returns the
	// ordered list of result URLs for the generated images.
	//
	// Implementations translate remote-service failures into the package's
	// error taxonomy: a *ModelError for permanent content rejections, a
	// *APIError for other service errors, and untranslated transport errors
	// for network-level failures, so that Classify can reach a verdict.
	GenerateImage(ctx context.Context, prompt domain.Prompt) ([]string, error)
}

// Saver persists a generated image from its remote URL to local storage.
// The orchestrator hands the first result URL of a successful attempt to
// the Saver and returns its record; a Saver failure is terminal and is not
// retried against the remote service.
type Saver interface {
	Save(ctx context.Context, prompt domain.Prompt, url string) (*domain.GeneratedImage, error)
}

package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/imagegen/internal/domain"
)

// MockSaver implements generation.Saver for testing
type MockSaver struct {
	// SaveFn allows test cases to mock the Save behavior
	SaveFn func(ctx context.Context, prompt domain.Prompt, url string) (*domain.GeneratedImage, error)

	// Default response values
	Image *domain.GeneratedImage
	Err   error

	// Call tracking for verification
	SaveCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times Save was called
		Count int

		// URLs contains all URLs passed to Save calls
		URLs []string
	}
}

// Save implements the generation.Saver interface
func (m *MockSaver) Save(ctx context.Context, prompt domain.Prompt, url string) (*domain.GeneratedImage, error) {
	// Track call details for verification
	m.SaveCalls.mu.Lock()
	m.SaveCalls.Count++
	m.SaveCalls.URLs = append(m.SaveCalls.URLs, url)
	m.SaveCalls.mu.Unlock()

	// Use custom function if provided
	if m.SaveFn != nil {
		return m.SaveFn(ctx, prompt, url)
	}

	if m.Err != nil {
		return nil, m.Err
	}

	if m.Image != nil {
		return m.Image, nil
	}

	return domain.NewGeneratedImage(prompt, url, "generated_images/generated_image_20250101_120000.png")
}

// NewMockSaverWithError creates a MockSaver that returns the specified error
func NewMockSaverWithError(err error) *MockSaver {
	return &MockSaver{
		Err: err,
	}
}

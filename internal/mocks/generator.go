package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/imagegen/internal/domain"
)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateImageFn allows test cases to mock the GenerateImage behavior
	GenerateImageFn func(ctx context.Context, prompt domain.Prompt) ([]string, error)

	// Default response values
	URLs []string
	Err  error

	// Call tracking for verification
	GenerateImageCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times GenerateImage was called
		Count int

		// Prompts contains all prompts passed to GenerateImage calls
		Prompts []domain.Prompt
	}
}

// GenerateImage implements the generation.Generator interface
func (m *MockGenerator) GenerateImage(ctx context.Context, prompt domain.Prompt) ([]string, error) {
	// Track call details for verification
	m.GenerateImageCalls.mu.Lock()
	m.GenerateImageCalls.Count++
	m.GenerateImageCalls.Prompts = append(m.GenerateImageCalls.Prompts, prompt)
	m.GenerateImageCalls.mu.Unlock()

	// Use custom function if provided
	if m.GenerateImageFn != nil {
		return m.GenerateImageFn(ctx, prompt)
	}

	// Return default values
	return m.URLs, m.Err
}

// NewMockGeneratorWithURLs creates a MockGenerator that returns the specified URLs
func NewMockGeneratorWithURLs(urls ...string) *MockGenerator {
	return &MockGenerator{
		URLs: urls,
	}
}

// NewMockGeneratorWithError creates a MockGenerator that returns the specified error
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{
		Err: err,
	}
}

package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/imagegen/internal/domain"
)

// Default retry configuration used when no option overrides it.
const (
	// DefaultMaxRetries is the number of additional attempts beyond the first.
	DefaultMaxRetries = 3

	// DefaultBaseDelay seeds the exponential backoff between attempts.
	DefaultBaseDelay = 1 * time.Second
)

// WaitFunc suspends the calling goroutine for the given duration or until the
// context is done, whichever comes first. Tests inject a recording WaitFunc to
// observe backoff behavior without real sleeps.
type WaitFunc func(ctx context.Context, d time.Duration) error

// Service orchestrates the generate-classify-retry loop around a Generator
// and hands the result of the first successful attempt to a Saver. Each
// Service instance is self-contained: it holds its own configuration and
// shares no mutable state with other instances, so a hosting program may run
// many generations concurrently on separate Services (or the same one, since
// Generate keeps all per-request state on the stack).
type Service struct {
	generator  Generator
	saver      Saver
	logger     *slog.Logger
	maxRetries int
	baseDelay  time.Duration
	wait       WaitFunc
}

// Option configures a Service.
type Option func(*Service)

// WithMaxRetries sets the number of additional attempts beyond the first.
func WithMaxRetries(n int) Option {
	return func(s *Service) { s.maxRetries = n }
}

// WithBaseDelay sets the seed duration for exponential backoff.
func WithBaseDelay(d time.Duration) Option {
	return func(s *Service) { s.baseDelay = d }
}

// WithWaitFunc replaces the backoff wait implementation.
func WithWaitFunc(f WaitFunc) Option {
	return func(s *Service) { s.wait = f }
}

// NewService creates a retry orchestrator with the provided dependencies.
//
// Returns an error if any dependency is nil or the retry configuration is
// invalid: maxRetries must be non-negative and baseDelay positive.
func NewService(generator Generator, saver Saver, logger *slog.Logger, opts ...Option) (*Service, error) {
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}

	if saver == nil {
		return nil, errors.New("saver cannot be nil")
	}

	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	s := &Service{
		generator:  generator,
		saver:      saver,
		logger:     logger,
		maxRetries: DefaultMaxRetries,
		baseDelay:  DefaultBaseDelay,
		wait:       contextWait,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.maxRetries < 0 {
		return nil, fmt.Errorf("%w: max retries cannot be negative", ErrInvalidConfig)
	}

	if s.baseDelay <= 0 {
		return nil, fmt.Errorf("%w: base delay must be positive", ErrInvalidConfig)
	}

	return s, nil
}

// Generate validates the raw prompt once, then attempts the remote call up to
// maxRetries+1 times, sleeping baseDelay * 2^(attempt-1) before each retry.
// On the first success it hands the first result URL to the Saver and returns
// its record. The caller receives either a record or exactly one terminal
// error: prompt validation failures propagate unchanged and are not counted
// against the retry budget; remote failures end the loop wrapped in
// ErrGenerationFailed with their classification message; Saver failures are
// terminal and never retried against the remote service.
func (s *Service) Generate(ctx context.Context, raw string) (*domain.GeneratedImage, error) {
	prompt, err := domain.NewPrompt(raw)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if attempt > 0 {
			delay := s.baseDelay * time.Duration(1<<(attempt-1))
			s.logger.InfoContext(ctx, "Retrying after delay",
				"attempt", attempt,
				"max_retries", s.maxRetries,
				"delay", delay)

			if err := s.wait(ctx, delay); err != nil {
				// The wait only fails when the context is done; the loop
				// ends here regardless of how the error classifies, but
				// the message keeps the distinction between cancellation
				// and deadline expiry.
				classification := Classify(err)
				s.logger.WarnContext(ctx, "Generation aborted during retry delay",
					"attempt", attempt,
					"ctx_err", err)
				return nil, fmt.Errorf("%w: %s", ErrGenerationFailed, classification.Message)
			}
		}

		s.logger.InfoContext(ctx, "Calling image generation service",
			"attempt", attempt+1,
			"max_attempts", s.maxRetries+1)

		urls, err := s.generator.GenerateImage(ctx, prompt)
		if err == nil {
			if len(urls) == 0 {
				s.logger.ErrorContext(ctx, "Service response contained no result URL")
				return nil, fmt.Errorf("%w: %s", ErrGenerationFailed, ErrMalformedResponse)
			}

			s.logger.InfoContext(ctx, "Image generated successfully",
				"attempt", attempt+1,
				"url", urls[0])

			img, err := s.saver.Save(ctx, prompt, urls[0])
			if err != nil {
				// A save failure after a successful remote call is terminal;
				// the remote call is not repeated.
				s.logger.ErrorContext(ctx, "Failed to save generated image",
					"url", urls[0],
					"error", err)
				return nil, err
			}

			return img, nil
		}

		classification := Classify(err)
		if !classification.Retry || attempt == s.maxRetries {
			s.logger.ErrorContext(ctx, "Image generation failed",
				"attempt", attempt+1,
				"retryable", classification.Retry,
				"reason", classification.Message)
			return nil, fmt.Errorf("%w: %s", ErrGenerationFailed, classification.Message)
		}

		s.logger.WarnContext(ctx, "Generation attempt failed",
			"attempt", attempt+1,
			"reason", classification.Message,
			"error", err)
	}

	// Unreachable: the loop always returns on its final iteration.
	return nil, ErrGenerationFailed
}

// contextWait is the production WaitFunc: a context-aware sleep.
func contextWait(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

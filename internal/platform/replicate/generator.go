package replicate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	r8 "github.com/replicate/replicate-go"

	"github.com/phrazzld/imagegen/internal/domain"
	"github.com/phrazzld/imagegen/internal/generation"
)

// DefaultModel is the pinned model version run when no other is configured.
const DefaultModel = "stability-ai/sdxl:39ed52f2a78e934b3ba6e2a89f5b1c712de7dfea535525255b1aa35c5565e08b"

// Config contains the settings needed to reach the Replicate API.
type Config struct {
	// APIToken authenticates requests. Required.
	APIToken string

	// Model is the "owner/name:version" identifier to run.
	// Defaults to DefaultModel.
	Model string
}

// Generator implements the generation.Generator interface using the
// Replicate API to run a text-to-image model.
type Generator struct {
	logger *slog.Logger
	client *r8.Client
	model  string
}

// NewGenerator creates a new Generator with the provided dependencies.
//
// Returns an error if the logger is nil, the API token is empty, or the
// underlying client cannot be constructed.
func NewGenerator(logger *slog.Logger, cfg Config) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.APIToken == "" {
		return nil, fmt.Errorf("%w: replicate API token cannot be empty", generation.ErrInvalidConfig)
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	client, err := r8.NewClient(r8.WithToken(cfg.APIToken))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create replicate client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &Generator{
		logger: logger,
		client: client,
		model:  model,
	}, nil
}

// GenerateImage runs the configured model with the prompt and returns the
// ordered result URLs of the prediction output. SDK errors are translated
// into the generation package's taxonomy; transport errors pass through
// untouched so they remain recognizable as network failures.
func (g *Generator) GenerateImage(ctx context.Context, prompt domain.Prompt) ([]string, error) {
	input := r8.PredictionInput{"prompt": prompt.String()}

	g.logger.DebugContext(ctx, "Submitting prediction",
		"model", g.model,
		"prompt_length", len(prompt))

	output, err := g.client.Run(ctx, g.model, input, nil)
	if err != nil {
		return nil, translateError(err)
	}

	urls, err := outputURLs(output)
	if err != nil {
		return nil, err
	}

	g.logger.DebugContext(ctx, "Prediction completed", "result_count", len(urls))
	return urls, nil
}

// translateError maps SDK errors into the generation taxonomy: a failed
// prediction becomes a permanent ModelError, an API-level failure becomes an
// APIError carrying status and detail, and anything else (timeouts, DNS,
// connection resets) passes through unchanged.
func translateError(err error) error {
	var modelErr *r8.ModelError
	if errors.As(err, &modelErr) {
		detail := "prediction failed"
		if modelErr.Prediction != nil && modelErr.Prediction.Error != nil {
			detail = fmt.Sprintf("%v", modelErr.Prediction.Error)
		}
		return &generation.ModelError{Detail: detail}
	}

	var apiErr *r8.APIError
	if errors.As(err, &apiErr) {
		detail := apiErr.Detail
		if detail == "" {
			detail = apiErr.Title
		}
		return &generation.APIError{Status: apiErr.Status, Detail: detail}
	}

	return err
}

// outputURLs extracts result URLs from a prediction output. Image models
// return a JSON array of URL strings; a bare string is accepted as a
// single-element list.
func outputURLs(output r8.PredictionOutput) ([]string, error) {
	switch v := output.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{v}, nil
	case []any:
		urls := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: unexpected output element of type %T",
					generation.ErrMalformedResponse, item)
			}
			urls = append(urls, s)
		}
		return urls, nil
	default:
		return nil, fmt.Errorf("%w: unexpected output of type %T",
			generation.ErrMalformedResponse, output)
	}
}

// Package main implements the imagegen command line tool, which reads a text
// prompt from standard input, generates an image through the Replicate API,
// and saves it to the configured output directory.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/phrazzld/imagegen/internal/config"
	"github.com/phrazzld/imagegen/internal/generation"
	"github.com/phrazzld/imagegen/internal/platform/logger"
	"github.com/phrazzld/imagegen/internal/platform/replicate"
	"github.com/phrazzld/imagegen/internal/storage"
)

func main() {
	svc, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	// Ctrl-C cancels the in-flight call or backoff wait.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, svc, os.Stdin, os.Stdout); err != nil {
		os.Exit(1)
	}
}

// initializeApp loads configuration and wires the application components.
// Returns the generation service and any initialization error.
func initializeApp() (*generation.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Debug("Configuration loaded",
		"output_dir", cfg.Storage.OutputDir,
		"max_retries", cfg.Generation.MaxRetries,
		"base_delay", cfg.Generation.BaseDelay)

	if err := os.MkdirAll(cfg.Storage.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	generator, err := replicate.NewGenerator(appLogger, replicate.Config{
		APIToken: cfg.Replicate.APIToken,
		Model:    cfg.Replicate.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}

	saver, err := storage.NewSaver(appLogger, cfg.Storage.OutputDir,
		storage.WithMinFreeBytes(cfg.Storage.MinFreeBytes),
		storage.WithHTTPClient(&http.Client{Timeout: cfg.Storage.DownloadTimeout}))
	if err != nil {
		return nil, fmt.Errorf("failed to create saver: %w", err)
	}

	svc, err := generation.NewService(generator, saver, appLogger,
		generation.WithMaxRetries(cfg.Generation.MaxRetries),
		generation.WithBaseDelay(cfg.Generation.BaseDelay))
	if err != nil {
		return nil, fmt.Errorf("failed to create generation service: %w", err)
	}

	return svc, nil
}

// run reads one prompt line from in and prints either the saved filepath or
// the terminal error message to out.
func run(ctx context.Context, svc *generation.Service, in io.Reader, out io.Writer) error {
	fmt.Fprint(out, "Enter image prompt: ")

	reader := bufio.NewReader(in)
	raw, err := reader.ReadString('\n')
	if err != nil && raw == "" {
		fmt.Fprintf(out, "Error: failed to read prompt: %v\n", err)
		return err
	}
	raw = strings.TrimSuffix(raw, "\n")

	img, err := svc.Generate(ctx, raw)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return err
	}

	fmt.Fprintf(out, "Image generated successfully!\nSaved to: %s\n", img.Filepath)
	return nil
}

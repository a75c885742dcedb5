package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"

	"github.com/phrazzld/imagegen/internal/domain"
)

const (
	// DefaultDownloadTimeout bounds the HTTP fetch of the image bytes.
	DefaultDownloadTimeout = 30 * time.Second

	// DefaultMinFreeBytes is the free-space floor checked before downloading.
	DefaultMinFreeBytes = 10 * 1024 * 1024

	// timestampLayout gives second-resolution, lexically sortable filenames.
	timestampLayout = "20060102_150405"
)

// Saver persists generated images to a local output directory. Destination
// filenames are derived from the clock at second resolution; two saves within
// the same second collide and are covered only by the backup mechanism.
type Saver struct {
	logger       *slog.Logger
	outputDir    string
	httpClient   *http.Client
	minFreeBytes uint64

	// now and freeBytes are injectable so tests control naming and the
	// disk-space verdict without real time or a full filesystem.
	now       func() time.Time
	freeBytes func(dir string) (uint64, error)
}

// Option configures a Saver.
type Option func(*Saver)

// WithHTTPClient replaces the HTTP client used for downloads.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Saver) { s.httpClient = c }
}

// WithMinFreeBytes sets the advisory free-space floor.
func WithMinFreeBytes(n uint64) Option {
	return func(s *Saver) { s.minFreeBytes = n }
}

// WithClock replaces the wall clock used for destination filenames.
func WithClock(now func() time.Time) Option {
	return func(s *Saver) { s.now = now }
}

// NewSaver creates a Saver writing into outputDir.
func NewSaver(logger *slog.Logger, outputDir string, opts ...Option) (*Saver, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if outputDir == "" {
		return nil, errors.New("output directory cannot be empty")
	}

	s := &Saver{
		logger:       logger,
		outputDir:    outputDir,
		httpClient:   &http.Client{Timeout: DefaultDownloadTimeout},
		minFreeBytes: DefaultMinFreeBytes,
		now:          time.Now,
		freeBytes:    freeDiskBytes,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Save runs the persistence pipeline for the image at url: advisory
// free-space check, bounded download, decode, integrity check, best-effort
// backup of a colliding destination, and the final write. It returns the
// record of the saved file, or the error of the first failing step.
func (s *Saver) Save(ctx context.Context, prompt domain.Prompt, url string) (*domain.GeneratedImage, error) {
	filename := fmt.Sprintf("generated_image_%s.png", s.now().Format(timestampLayout))
	path := filepath.Join(s.outputDir, filename)

	if !s.hasFreeSpace() {
		return nil, ErrInsufficientDiskSpace
	}

	data, err := s.download(ctx, url)
	if err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAnImage, err)
	}

	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: image has no pixels", ErrImageInvalid)
	}

	if _, err := os.Stat(path); err == nil {
		s.backupExisting(path)
	}

	if err := imaging.Save(img, path); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	s.logger.InfoContext(ctx, "Image saved",
		"path", path,
		"bytes_downloaded", len(data))

	return domain.NewGeneratedImage(prompt, url, path)
}

// hasFreeSpace reports whether the output directory's filesystem has at
// least minFreeBytes available. The check is advisory: if it cannot be
// performed, the pipeline proceeds.
func (s *Saver) hasFreeSpace() bool {
	free, err := s.freeBytes(s.outputDir)
	if err != nil {
		s.logger.Warn("Failed to check disk space, proceeding anyway",
			"dir", s.outputDir,
			"error", err)
		return true
	}

	if free < s.minFreeBytes {
		s.logger.Error("Insufficient disk space",
			"dir", s.outputDir,
			"free_bytes", free,
			"required_bytes", s.minFreeBytes)
		return false
	}

	return true
}

// download fetches the image bytes with the Saver's bounded HTTP client.
func (s *Saver) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrDownloadFailed, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}

	return data, nil
}

// backupExisting copies the file about to be overwritten to a .backup
// sibling, preserving mode and modification time. Best-effort: failures are
// logged and never block the new write.
func (s *Saver) backupExisting(path string) {
	backupPath := path + ".backup"
	if err := copyFile(path, backupPath); err != nil {
		s.logger.Warn("Failed to create backup",
			"path", path,
			"error", err)
		return
	}

	s.logger.Info("Created backup of existing file", "backup_path", backupPath)
}

func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}

	if err := out.Close(); err != nil {
		return err
	}

	// Mode is set at create time; carrying the mtime over is as close to
	// metadata preservation as a portable copy gets.
	return os.Chtimes(dst, time.Now(), info.ModTime())
}

package storage

import "errors"

// Failures of the persistence pipeline. Each step surfaces its own sentinel
// so callers can distinguish a bad download from a bad write.
var (
	// ErrInsufficientDiskSpace is returned when the advisory free-space check
	// confirms a shortfall before any network access.
	ErrInsufficientDiskSpace = errors.New("insufficient disk space")

	// ErrDownloadFailed is returned for any transport failure or non-success
	// status while fetching the image bytes.
	ErrDownloadFailed = errors.New("failed to download")

	// ErrNotAnImage is returned when the downloaded bytes do not decode as a
	// recognized image format.
	ErrNotAnImage = errors.New("not a valid image")

	// ErrImageInvalid is returned when the decoded image fails the structural
	// integrity check.
	ErrImageInvalid = errors.New("image validation failed")

	// ErrSaveFailed is returned when writing the final file fails.
	ErrSaveFailed = errors.New("failed to save")
)

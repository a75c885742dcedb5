package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Log        LogConfig        `mapstructure:"log"`
	Replicate  ReplicateConfig  `mapstructure:"replicate"`
	Generation GenerationConfig `mapstructure:"generation"`
	Storage    StorageConfig    `mapstructure:"storage"`
}

// LogConfig contains the logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text pretty"`
}

// ReplicateConfig contains the settings for the remote generation service.
type ReplicateConfig struct {
	// APIToken authenticates against the Replicate API. Required; startup
	// fails when it is absent.
	APIToken string `mapstructure:"api_token" validate:"required"`

	// Model is the "owner/name:version" identifier to run. Empty means the
	// adapter's pinned default.
	Model string `mapstructure:"model"`
}

// GenerationConfig contains the retry loop settings.
type GenerationConfig struct {
	// MaxRetries is the number of additional attempts beyond the first.
	MaxRetries int `mapstructure:"max_retries" validate:"gte=0"`

	// BaseDelay seeds the exponential backoff between attempts.
	BaseDelay time.Duration `mapstructure:"base_delay" validate:"gt=0"`
}

// StorageConfig contains the persistence pipeline settings.
type StorageConfig struct {
	// OutputDir is where generated images are written. Created at startup
	// if missing.
	OutputDir string `mapstructure:"output_dir" validate:"required"`

	// MinFreeBytes is the advisory free-space floor checked before a save.
	MinFreeBytes uint64 `mapstructure:"min_free_bytes" validate:"gt=0"`

	// DownloadTimeout bounds the HTTP fetch of generated image bytes.
	DownloadTimeout time.Duration `mapstructure:"download_timeout" validate:"gt=0"`
}

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load configuration from environment variables and optionally a config file.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("generation.max_retries", 3)
	v.SetDefault("generation.base_delay", "1s")
	v.SetDefault("storage.output_dir", "generated_images")
	v.SetDefault("storage.min_free_bytes", 10*1024*1024)
	v.SetDefault("storage.download_timeout", "30s")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("IMAGEGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The unprefixed names are what the original tool read; keep honoring
	// them so existing environments work unchanged.
	if err := v.BindEnv("replicate.api_token", "IMAGEGEN_REPLICATE_API_TOKEN", "REPLICATE_API_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind api token env: %w", err)
	}
	if err := v.BindEnv("storage.output_dir", "IMAGEGEN_STORAGE_OUTPUT_DIR", "OUTPUT_DIR"); err != nil {
		return nil, fmt.Errorf("failed to bind output dir env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

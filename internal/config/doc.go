// Package config defines the application configuration and its loading.
// Settings come from an optional config.yaml in the working directory and
// from environment variables with the IMAGEGEN_ prefix; environment values
// take precedence. Loaded configuration is validated before use.
package config

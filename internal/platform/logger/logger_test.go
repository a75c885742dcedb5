package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantLevel slog.Level
		wantErr   bool
	}{
		{name: "debug json", cfg: Config{Level: "debug", Format: "json"}, wantLevel: slog.LevelDebug},
		{name: "info text", cfg: Config{Level: "info", Format: "text"}, wantLevel: slog.LevelInfo},
		{name: "warn pretty", cfg: Config{Level: "warn", Format: "pretty"}, wantLevel: slog.LevelWarn},
		{name: "error defaults to json", cfg: Config{Level: "error"}, wantLevel: slog.LevelError},
		{name: "empty config uses defaults", cfg: Config{}, wantLevel: slog.LevelInfo},
		{name: "bogus level falls back to info", cfg: Config{Level: "loud"}, wantLevel: slog.LevelInfo},
		{name: "bogus format is rejected", cfg: Config{Format: "xml"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := Setup(tt.cfg)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, logger)

			assert.True(t, logger.Enabled(context.Background(), tt.wantLevel))
			if tt.wantLevel > slog.LevelDebug {
				assert.False(t, logger.Enabled(context.Background(), tt.wantLevel-1))
			}
		})
	}
}

package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katakuxiko/qa-service/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.LogConfig
		wantErr   bool
		wantDebug bool
	}{
		{
			name:      "json at debug level",
			cfg:       config.LogConfig{Level: "debug", Format: "json"},
			wantDebug: true,
		},
		{
			name: "info level drops debug",
			cfg:  config.LogConfig{Level: "info", Format: "json"},
		},
		{
			name:    "unknown level",
			cfg:     config.LogConfig{Level: "loud", Format: "json"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := New(tt.cfg, &buf)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			logger.Debug().Msg("debug message")
			if !tt.wantDebug {
				assert.Empty(t, buf.String())
				return
			}

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, "debug", entry["level"])
			assert.Equal(t, "debug message", entry["message"])
			assert.Equal(t, "qa-service", entry["app_name"])
		})
	}
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.LogConfig{Level: "info", Format: "console"}, &buf)
	require.NoError(t, err)

	logger.Info().Int64("id", 7).Msg("saved QA pair")

	assert.Contains(t, buf.String(), "saved QA pair")
	assert.NotContains(t, buf.String(), `"message"`)
}

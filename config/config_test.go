package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadValidConfig(t *testing.T) {
	path := writeConfig(t, `
auth:
  username: test@example.com
  password: hunter2
api:
  timeout: 10s
logging:
  level: debug
  format: json
filters:
  home: 'is_home_studio'
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "test@example.com", cfg.Auth.Username)
	assert.Equal(t, "hunter2", cfg.Auth.Password)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "is_home_studio", cfg.Filters["home"])
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
auth:
  username: test@example.com
  password: hunter2
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.Logging.Color)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "missing username",
			content: "auth:\n  password: hunter2\n",
			errMsg:  "auth.username is required",
		},
		{
			name:    "missing password",
			content: "auth:\n  username: test@example.com\n",
			errMsg:  "auth.password is required",
		},
		{
			name: "bad log level",
			content: `
auth:
  username: test@example.com
  password: hunter2
logging:
  level: loud
`,
			errMsg: "invalid logging level",
		},
		{
			name: "bad log format",
			content: `
auth:
  username: test@example.com
  password: hunter2
logging:
  format: xml
`,
			errMsg: "invalid logging format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

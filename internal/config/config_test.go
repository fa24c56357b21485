package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/winutilz/internal/config"
	"github.com/Norgate-AV/winutilz/internal/output"
	"github.com/Norgate-AV/winutilz/internal/timeouts"
)

func TestLoadFrom_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, timeouts.HTTPTimeout, cfg.HTTPTimeout)
	assert.Equal(t, timeouts.HTTPRetryMax, cfg.HTTPRetries)
	assert.Equal(t, uint(timeouts.ClipboardOpenAttempts), cfg.ClipboardAttempts)
	assert.Equal(t, timeouts.ClipboardOpenDelay, cfg.ClipboardDelay)
	assert.Equal(t, output.FormatText, cfg.Output)
	assert.Empty(t, cfg.CacheDir)
	assert.False(t, cfg.Verbose)
}

func TestLoadFrom_Overrides(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFrom(map[string]string{
		"WINUTILZ_CACHE_DIR":          `C:\cache`,
		"WINUTILZ_USER_AGENT":         "test/1.0",
		"WINUTILZ_HTTP_TIMEOUT":       "5s",
		"WINUTILZ_HTTP_RETRIES":       "-1",
		"WINUTILZ_CLIPBOARD_ATTEMPTS": "9",
		"WINUTILZ_CLIPBOARD_DELAY":    "25ms",
		"WINUTILZ_LOG_DIR":            `C:\logs`,
		"WINUTILZ_VERBOSE":            "true",
		"WINUTILZ_OUTPUT":             "YML",
	})
	require.NoError(t, err)

	assert.Equal(t, `C:\cache`, cfg.CacheDir)
	assert.Equal(t, "test/1.0", cfg.UserAgent)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, -1, cfg.HTTPRetries)
	assert.Equal(t, uint(9), cfg.ClipboardAttempts)
	assert.Equal(t, 25*time.Millisecond, cfg.ClipboardDelay)
	assert.Equal(t, `C:\logs`, cfg.LogDir)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, output.FormatYAML, cfg.Output)
}

func TestLoadFrom_IgnoresUnprefixed(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFrom(map[string]string{"VERBOSE": "true", "OUTPUT": "json"})
	require.NoError(t, err)

	assert.False(t, cfg.Verbose)
	assert.Equal(t, output.FormatText, cfg.Output)
}

func TestLoadFrom_Invalid(t *testing.T) {
	t.Parallel()

	tests := map[string]map[string]string{
		"bad duration":  {"WINUTILZ_HTTP_TIMEOUT": "soon"},
		"bad bool":      {"WINUTILZ_VERBOSE": "maybe"},
		"bad retries":   {"WINUTILZ_HTTP_RETRIES": "many"},
		"bad output":    {"WINUTILZ_OUTPUT": "xml"},
		"zero attempts": {"WINUTILZ_CLIPBOARD_ATTEMPTS": "0"},
		"negative wait": {"WINUTILZ_CLIPBOARD_DELAY": "-1ms"},
	}

	for name, environ := range tests {
		_, err := config.LoadFrom(environ)
		assert.Error(t, err, name)
	}
}

func TestLoadFrom_InvalidFormatWrapsSentinel(t *testing.T) {
	t.Parallel()

	_, err := config.LoadFrom(map[string]string{"WINUTILZ_OUTPUT": "xml"})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.ErrorIs(t, err, output.ErrInvalidFormat)
}

func TestLoad_ProcessEnvironment(t *testing.T) {
	t.Setenv("WINUTILZ_OUTPUT", "json")
	t.Setenv("WINUTILZ_CACHE_DIR", t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, output.FormatJSON, cfg.Output)
	assert.NotEmpty(t, cfg.CacheDir)
}

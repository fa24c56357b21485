// Package config loads runtime settings from WINUTILZ_* environment
// variables. Command-line flags are applied on top by the cmd package.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/Norgate-AV/winutilz/internal/output"
	"github.com/Norgate-AV/winutilz/internal/timeouts"
)

// EnvPrefix is prepended to every variable name.
const EnvPrefix = "WINUTILZ_"

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	// CacheDir overrides the staging directory for downloaded and
	// extracted files. Empty selects cache.DefaultDir.
	CacheDir  string `env:"CACHE_DIR"`
	UserAgent string `env:"USER_AGENT"`

	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT"`
	HTTPRetries int           `env:"HTTP_RETRIES"`

	ClipboardAttempts uint          `env:"CLIPBOARD_ATTEMPTS"`
	ClipboardDelay    time.Duration `env:"CLIPBOARD_DELAY"`

	LogDir  string        `env:"LOG_DIR"`
	Verbose bool          `env:"VERBOSE"`
	Output  output.Format `env:"OUTPUT"`

	// ShowLogs is only ever set from the command line.
	ShowLogs bool
}

// Default returns the configuration used when no variable is set.
func Default() *Config {
	return &Config{
		HTTPTimeout:       timeouts.HTTPTimeout,
		HTTPRetries:       timeouts.HTTPRetryMax,
		ClipboardAttempts: timeouts.ClipboardOpenAttempts,
		ClipboardDelay:    timeouts.ClipboardOpenDelay,
		Output:            output.FormatText,
	}
}

// Load reads the process environment.
func Load() (*Config, error) {
	return LoadFrom(nil)
}

// LoadFrom reads variables from environ instead of the process environment
// when environ is non-nil.
func LoadFrom(environ map[string]string) (*Config, error) {
	cfg := Default()

	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("could not parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate normalises the output format and rejects out-of-range values.
func (c *Config) Validate() error {
	format, err := output.ParseFormat(string(c.Output))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	c.Output = format

	if c.HTTPTimeout < 0 {
		return fmt.Errorf("%w: HTTP timeout %s is negative", ErrInvalidConfig, c.HTTPTimeout)
	}

	if c.ClipboardAttempts == 0 {
		return fmt.Errorf("%w: clipboard attempts must be at least 1", ErrInvalidConfig)
	}

	if c.ClipboardDelay < 0 {
		return fmt.Errorf("%w: clipboard delay %s is negative", ErrInvalidConfig, c.ClipboardDelay)
	}

	return nil
}

package token

import (
	"errors"
	"time"
)

// Config configures the session token codec.
type Config struct {
	// Secret is the HMAC signing key. Required. There is exactly one active
	// secret per process; no rotation or grace window.
	Secret string `yaml:"secret" mapstructure:"secret"`

	// TTL is the session token lifetime (default: 7 days).
	TTL time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.TTL == 0 {
		c.TTL = 7 * 24 * time.Hour
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Secret == "" {
		return errors.New("token.secret is required")
	}
	if c.TTL <= 0 {
		return errors.New("token.ttl must be positive")
	}
	return nil
}

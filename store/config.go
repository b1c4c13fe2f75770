package store

import "errors"

// Config holds database configuration.
type Config struct {
	// DSN is the Postgres connection string. Required.
	DSN string `yaml:"dsn" mapstructure:"dsn"`

	// MaxConns caps the connection pool size (default: 10).
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.MaxConns == 0 {
		c.MaxConns = 10
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.DSN == "" {
		return errors.New("database.dsn is required")
	}
	if c.MaxConns < 1 {
		return errors.New("database.max_conns must be at least 1")
	}
	return nil
}

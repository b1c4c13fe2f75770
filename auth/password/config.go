package password

import "fmt"

// Config configures password hashing.
type Config struct {
	// BcryptCost balances verification latency against brute-force resistance
	// (default: 12, range: 4-31).
	BcryptCost int `yaml:"bcrypt_cost" mapstructure:"bcrypt_cost"`
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.BcryptCost == 0 {
		c.BcryptCost = 12
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	c.ApplyDefaults()
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("password.bcrypt_cost must be between 4 and 31 (got: %d)", c.BcryptCost)
	}
	return nil
}

package logger

import "fmt"

// Config contains logging configuration.
type Config struct {
	Level   string `yaml:"level" mapstructure:"level"`
	Format  string `yaml:"format" mapstructure:"format"` // "console" or "json"
	Output  string `yaml:"output" mapstructure:"output"` // "stdout" or "stderr"
	NoColor bool   `yaml:"no_color" mapstructure:"no_color"`
}

// ApplyDefaults applies default values to logging configuration.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "console"
	}
	if c.Output == "" {
		c.Output = "stdout"
	}
}

// Validate validates logging configuration.
func (c *Config) Validate() error {
	switch c.Level {
	case "trace", "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("log.level must be one of trace/debug/info/warn/error/fatal (got: %s)", c.Level)
	}
	switch c.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json (got: %s)", c.Format)
	}
	return nil
}

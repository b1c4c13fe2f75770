package transform

import "fmt"

// Config holds the upstream LLM provider configuration. The API key is not
// here: each user supplies their own key, stored on their account.
type Config struct {
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	Model   string `yaml:"model" mapstructure:"model"`
	Timeout int    `yaml:"timeout" mapstructure:"timeout"` // seconds
}

// ApplyDefaults sets sensible default values for unset fields.
func (c *Config) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.openai.com"
	}
	if c.Model == "" {
		c.Model = "gpt-4o"
	}
	if c.Timeout == 0 {
		c.Timeout = 60
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("llm.timeout must be non-negative (got: %d)", c.Timeout)
	}
	return nil
}

package config

import (
	"github.com/kbukum/textmorph/auth/password"
	"github.com/kbukum/textmorph/auth/token"
	"github.com/kbukum/textmorph/logger"
	"github.com/kbukum/textmorph/server"
	"github.com/kbukum/textmorph/store"
	"github.com/kbukum/textmorph/transform"
)

// Config is the full service configuration.
type Config struct {
	Server   server.Config    `yaml:"server" mapstructure:"server"`
	Database store.Config     `yaml:"database" mapstructure:"database"`
	Token    token.Config     `yaml:"token" mapstructure:"token"`
	Password password.Config  `yaml:"password" mapstructure:"password"`
	LLM      transform.Config `yaml:"llm" mapstructure:"llm"`
	Log      logger.Config    `yaml:"log" mapstructure:"log"`
}

// Load reads the service configuration, applies per-section defaults, and
// validates the result.
func Load(opts ...LoaderOption) (*Config, error) {
	cfg := &Config{}
	if err := load(cfg, opts...); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyDefaults fills unset fields in every section.
func (c *Config) ApplyDefaults() {
	c.Server.ApplyDefaults()
	c.Database.ApplyDefaults()
	c.Token.ApplyDefaults()
	c.Password.ApplyDefaults()
	c.LLM.ApplyDefaults()
	c.Log.ApplyDefaults()
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Token.Validate(); err != nil {
		return err
	}
	if err := c.Password.Validate(); err != nil {
		return err
	}
	if err := c.LLM.Validate(); err != nil {
		return err
	}
	return c.Log.Validate()
}

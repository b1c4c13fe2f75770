// Package config loads service configuration from a YAML file, a .env file,
// and environment variables, in increasing order of precedence.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoaderConfig holds optional file overrides for the loader.
type LoaderConfig struct {
	ConfigFile string // explicit config file path (optional)
	EnvFile    string // explicit .env file path (optional)
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// configSearchPaths are the default locations probed for config.yml.
var configSearchPaths = []string{
	"./cmd/server/config.yml",
	"./config/config.yml",
	"./config.yml",
}

// envSearchPaths are the default locations probed for a .env file.
var envSearchPaths = []string{
	".env",
	"./cmd/server/.env",
}

// load reads configuration into cfg. A missing config or .env file is not an
// error; environment variables alone are a valid configuration source.
func load(cfg interface{}, opts ...LoaderOption) error {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}

	v := viper.New()

	configFile := lc.ConfigFile
	if configFile == "" {
		configFile = firstExisting(configSearchPaths)
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read %s: %w", configFile, err)
		}
	}

	envFile := lc.EnvFile
	if envFile == "" {
		envFile = firstExisting(envSearchPaths)
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}

	// SERVER_PORT overrides server.port, DATABASE_DSN overrides database.dsn, etc.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindKnownEnvKeys(v)

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("config: unmarshal: %w", err)
	}
	return nil
}

// bindKnownEnvKeys makes AutomaticEnv work for nested keys that never appear
// in the YAML file (viper only maps env vars for keys it has seen).
func bindKnownEnvKeys(v *viper.Viper) {
	keys := []string{
		"server.host", "server.port",
		"server.read_timeout", "server.write_timeout", "server.idle_timeout",
		"database.dsn", "database.max_conns",
		"token.secret", "token.ttl",
		"password.bcrypt_cost",
		"llm.base_url", "llm.model", "llm.timeout",
		"log.level", "log.format", "log.output",
	}
	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}

func firstExisting(paths []string) string {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

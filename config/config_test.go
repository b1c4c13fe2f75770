package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_FromYAML(t *testing.T) {
	dir := t.TempDir()
	yml := writeFile(t, dir, "config.yml", `
server:
  port: 9090
database:
  dsn: postgres://localhost/textmorph_test
token:
  secret: yaml-secret
  ttl: 24h
log:
  level: debug
`)

	cfg, err := Load(WithConfigFile(yml), WithEnvFile(filepath.Join(dir, "missing.env")))
	if err == nil {
		t.Fatal("expected error for explicitly missing .env file")
	}

	cfg, err = Load(WithConfigFile(yml), WithEnvFile(writeFile(t, dir, ".env", "")))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Token.Secret != "yaml-secret" {
		t.Errorf("expected yaml secret, got %q", cfg.Token.Secret)
	}
	if cfg.Token.TTL != 24*time.Hour {
		t.Errorf("expected 24h ttl, got %v", cfg.Token.TTL)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected debug level, got %s", cfg.Log.Level)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yml := writeFile(t, dir, "config.yml", `
token:
  secret: yaml-secret
database:
  dsn: postgres://localhost/textmorph_test
`)
	env := writeFile(t, dir, ".env", "")

	t.Setenv("TOKEN_SECRET", "env-secret")

	cfg, err := Load(WithConfigFile(yml), WithEnvFile(env))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Token.Secret != "env-secret" {
		t.Errorf("expected env var to win, got %q", cfg.Token.Secret)
	}
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	yml := writeFile(t, dir, "config.yml", `
token:
  secret: s
database:
  dsn: postgres://localhost/textmorph
`)
	env := writeFile(t, dir, ".env", "")

	cfg, err := Load(WithConfigFile(yml), WithEnvFile(env))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Token.TTL != 7*24*time.Hour {
		t.Errorf("expected default 7d ttl, got %v", cfg.Token.TTL)
	}
	if cfg.Password.BcryptCost != 12 {
		t.Errorf("expected default bcrypt cost 12, got %d", cfg.Password.BcryptCost)
	}
}

func TestLoad_MissingSecretFails(t *testing.T) {
	dir := t.TempDir()
	yml := writeFile(t, dir, "config.yml", `
database:
  dsn: postgres://localhost/textmorph
`)
	env := writeFile(t, dir, ".env", "")

	if _, err := Load(WithConfigFile(yml), WithEnvFile(env)); err == nil {
		t.Fatal("expected validation error for missing token secret")
	}
}

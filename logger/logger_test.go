package logger

import "testing"

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("expected level info, got %s", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format console, got %s", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("expected output stdout, got %s", cfg.Output)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := Config{Level: "verbose", Format: "console", Output: "stdout"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected invalid level to fail validation")
	}
	cfg = Config{Level: "debug", Format: "xml", Output: "stdout"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected invalid format to fail validation")
	}
	cfg = Config{Level: "debug", Format: "json", Output: "stderr"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestFields(t *testing.T) {
	m := Fields("op", "signup", "count", 3)
	if m["op"] != "signup" {
		t.Errorf("expected op=signup, got %v", m["op"])
	}
	if m["count"] != 3 {
		t.Errorf("expected count=3, got %v", m["count"])
	}
}

func TestWithComponent(t *testing.T) {
	log := NewDefault("test")
	child := log.WithComponent("store")
	if child == nil {
		t.Fatal("expected component logger")
	}
	child.Info("component logger works")
}

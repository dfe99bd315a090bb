package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	Name   string `yaml:"name"`
	Secret string `yaml:"secret"`
}

type validatedConfig struct {
	Name string `yaml:"name"`
}

func (c *validatedConfig) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_ExpandsEnvironment(t *testing.T) {
	t.Setenv("TEST_SECRET", "hunter2")
	path := writeFile(t, "name: station\nsecret: ${TEST_SECRET}\n")

	var cfg testConfig
	if err := Load(path, &cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Secret != "hunter2" {
		t.Errorf("secret = %q, want expanded env value", cfg.Secret)
	}
}

func TestLoad_RunsValidator(t *testing.T) {
	path := writeFile(t, "name: \"\"\n")

	var cfg validatedConfig
	err := Load(path, &cfg)
	if err == nil {
		t.Fatal("invalid config should fail to load")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	var cfg testConfig
	if err := Load(filepath.Join(t.TempDir(), "missing.yaml"), &cfg); err == nil {
		t.Fatal("missing file should fail")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeFile(t, "name: [unterminated\n")
	var cfg testConfig
	if err := Load(path, &cfg); err == nil {
		t.Fatal("malformed YAML should fail")
	}
}

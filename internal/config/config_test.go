package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolate points HOME at a temp dir and clears credential variables so the
// developer's own environment cannot leak into the test.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, name := range []string{
		"API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY",
		"TUTORIAIS_MODEL", "GEMINI_MODEL", "TUTORIAIS_TIMEOUT",
		"TUTORIAIS_ADDR", "TUTORIAIS_CATALOG", "LOG_LEVEL", "TUTORIAIS_LOG_LEVEL",
	} {
		t.Setenv(name, "")
	}
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, _, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Assistant.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %q", cfg.Assistant.Model)
	}
	if cfg.Assistant.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Assistant.Timeout)
	}
	if cfg.Assistant.SummaryChars != 10000 {
		t.Errorf("SummaryChars = %d, want 10000", cfg.Assistant.SummaryChars)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	if cfg.Log.Dir != filepath.Join(home, ".tutoriais", "logs") {
		t.Errorf("Log.Dir = %q", cfg.Log.Dir)
	}
	if cfg.HasCredential() {
		t.Error("HasCredential() = true with no key configured")
	}
}

func TestLoadCredentialFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  string
	}{
		{"API_KEY", "API_KEY"},
		{"GEMINI_API_KEY", "GEMINI_API_KEY"},
		{"GOOGLE_API_KEY", "GOOGLE_API_KEY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			t.Setenv(tt.env, "  secret-key \n")

			cfg, _, err := Load("")
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.Assistant.APIKey != "secret-key" {
				t.Errorf("APIKey = %q, want trimmed key", cfg.Assistant.APIKey)
			}
			if !cfg.HasCredential() {
				t.Error("HasCredential() = false")
			}
		})
	}
}

func TestLoadExplicitFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := strings.Join([]string{
		"assistant:",
		"  model: gemini-2.5-pro",
		"  timeout: 5s",
		"  max_tokens: 512",
		"server:",
		"  addr: 127.0.0.1:9090",
		"log:",
		"  level: debug",
	}, "\n")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, v, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if v.ConfigFileUsed() != path {
		t.Errorf("ConfigFileUsed() = %q, want %q", v.ConfigFileUsed(), path)
	}
	if cfg.Assistant.Model != "gemini-2.5-pro" {
		t.Errorf("Model = %q", cfg.Assistant.Model)
	}
	if cfg.Assistant.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v", cfg.Assistant.Timeout)
	}
	if cfg.Assistant.MaxTokens != 512 {
		t.Errorf("MaxTokens = %d", cfg.Assistant.MaxTokens)
	}
	if cfg.Server.Addr != "127.0.0.1:9090" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
}

func TestLoadHomeFile(t *testing.T) {
	home := isolate(t)

	dir := filepath.Join(home, ".tutoriais")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("catalog:\n  path: /tmp/extra.yaml\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, _, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Catalog.Path != "/tmp/extra.yaml" {
		t.Errorf("Catalog.Path = %q", cfg.Catalog.Path)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("assistant:\n  model: from-file\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TUTORIAIS_MODEL", "from-env")
	t.Setenv("TUTORIAIS_TIMEOUT", "12s")

	cfg, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Assistant.Model != "from-env" {
		t.Errorf("Model = %q, want env value", cfg.Assistant.Model)
	}
	if cfg.Assistant.Timeout != 12*time.Second {
		t.Errorf("Timeout = %v, want 12s", cfg.Assistant.Timeout)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)

	if _, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("assistant:\n  summary_chars: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, _, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "summary_chars") {
		t.Fatalf("Load() error = %v, want summary_chars validation error", err)
	}
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{Assistant: AssistantConfig{
			Model:        "m",
			Timeout:      time.Second,
			SummaryChars: 10,
		}}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"empty key is fine", func(c *Config) { c.Assistant.APIKey = "" }, false},
		{"negative timeout", func(c *Config) { c.Assistant.Timeout = -time.Second }, true},
		{"negative max tokens", func(c *Config) { c.Assistant.MaxTokens = -1 }, true},
		{"negative rate", func(c *Config) { c.Assistant.RatePerSecond = -1 }, true},
		{"empty model", func(c *Config) { c.Assistant.Model = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(&c)
			if err := c.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

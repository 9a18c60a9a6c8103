// Package config loads runtime settings from defaults, an optional YAML
// file, a .env file and the environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the resolved application configuration
type Config struct {
	Assistant AssistantConfig `mapstructure:"assistant"`
	Server    ServerConfig    `mapstructure:"server"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Log       LogConfig       `mapstructure:"log"`
}

// AssistantConfig holds generative-text API settings
type AssistantConfig struct {
	APIKey        string        `mapstructure:"api_key"`
	Model         string        `mapstructure:"model"`
	BaseURL       string        `mapstructure:"base_url"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxTokens     int           `mapstructure:"max_tokens"`
	SummaryChars  int           `mapstructure:"summary_chars"`
	RatePerSecond float64       `mapstructure:"rate_per_second"`
	RateBurst     int           `mapstructure:"rate_burst"`
}

// ServerConfig holds HTTP surface settings
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// CatalogConfig selects an alternative dataset. Empty means the embedded one.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `mapstructure:"level"`
	Dir   string `mapstructure:"dir"`
}

// Dir returns the per-user application directory (~/.tutoriais)
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tutoriais"
	}
	return filepath.Join(home, ".tutoriais")
}

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("assistant.model", "gemini-2.5-flash")
	v.SetDefault("assistant.base_url", "https://generativelanguage.googleapis.com")
	v.SetDefault("assistant.timeout", 30*time.Second)
	v.SetDefault("assistant.max_tokens", 1024)
	v.SetDefault("assistant.summary_chars", 10000)
	v.SetDefault("assistant.rate_per_second", 1.0)
	v.SetDefault("assistant.rate_burst", 3)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("catalog.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", filepath.Join(Dir(), "logs"))
}

// bindEnv maps well-known environment variable names onto config keys.
// API_KEY is checked first, then the Gemini-specific names.
func bindEnv(v *viper.Viper) error {
	bindings := map[string][]string{
		"assistant.api_key":  {"API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY"},
		"assistant.model":    {"TUTORIAIS_MODEL", "GEMINI_MODEL"},
		"assistant.base_url": {"TUTORIAIS_BASE_URL"},
		"assistant.timeout":  {"TUTORIAIS_TIMEOUT"},
		"server.addr":        {"TUTORIAIS_ADDR"},
		"catalog.path":       {"TUTORIAIS_CATALOG"},
		"log.level":          {"LOG_LEVEL", "TUTORIAIS_LOG_LEVEL"},
	}
	for key, names := range bindings {
		args := append([]string{key}, names...)
		if err := v.BindEnv(args...); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}
	return nil
}

// Load resolves configuration into a fresh viper instance.
//
// path names an explicit config file; when empty, config.yaml is looked up in
// the working directory and ~/.tutoriais and its absence is not an error.
// A .env file in the working directory is loaded first; it never overrides
// variables already set in the process environment.
func Load(path string) (*Config, *viper.Viper, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("TUTORIAIS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	if err := bindEnv(v); err != nil {
		return nil, nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(Dir())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg, err := Decode(v)
	if err != nil {
		return nil, nil, err
	}
	return cfg, v, nil
}

// Decode unmarshals v into a Config and validates it
func Decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Assistant.APIKey = strings.TrimSpace(cfg.Assistant.APIKey)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values that would make the program misbehave.
// An empty API key is valid: the assistant degrades to fallback text.
func (c *Config) Validate() error {
	if c.Assistant.Timeout < 0 {
		return fmt.Errorf("assistant.timeout must not be negative, got %s", c.Assistant.Timeout)
	}
	if c.Assistant.MaxTokens < 0 {
		return fmt.Errorf("assistant.max_tokens must not be negative, got %d", c.Assistant.MaxTokens)
	}
	if c.Assistant.SummaryChars <= 0 {
		return fmt.Errorf("assistant.summary_chars must be positive, got %d", c.Assistant.SummaryChars)
	}
	if c.Assistant.RatePerSecond < 0 {
		return fmt.Errorf("assistant.rate_per_second must not be negative, got %v", c.Assistant.RatePerSecond)
	}
	if c.Assistant.Model == "" {
		return errors.New("assistant.model must not be empty")
	}
	return nil
}

// HasCredential reports whether an API key is configured
func (c *Config) HasCredential() bool {
	return c.Assistant.APIKey != ""
}

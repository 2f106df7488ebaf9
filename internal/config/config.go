// Package config provides configuration loading and structs for the Tadoru server.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug     bool            `yaml:"debug"`
	Server    ServerConfig    `yaml:"server"`
	Content   ContentConfig   `yaml:"content"`
	Tokenizer TokenizerConfig `yaml:"tokenizer"`
	Session   SessionConfig   `yaml:"session"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// ContentConfig holds page-content derivation settings: which metadata keys
// may stand in for an empty body, and where content gets truncated.
type ContentConfig struct {
	PageContentKeys []string `yaml:"page_content_keys"`
	MaxChunkSize    int      `yaml:"max_chunk_size"`
}

// TokenizerConfig holds token encoder settings.
type TokenizerConfig struct {
	Model     string `yaml:"model"`
	Offline   bool   `yaml:"offline"`
	Cache     *bool  `yaml:"cache"`
	CacheSize int    `yaml:"cache_size"`
}

// CacheOrDefault returns whether encode results are memoized; defaults to true when unset.
func (t *TokenizerConfig) CacheOrDefault() bool {
	if t.Cache != nil {
		return *t.Cache
	}
	return true
}

// SessionConfig holds settings for a fresh exploration session.
type SessionConfig struct {
	RootQuery string `yaml:"root_query"`
}

// Load reads and parses the config file at path and applies defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	return &cfg, nil
}

// Save writes the config to path. Used for persisting settings changed at runtime.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

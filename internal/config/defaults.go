package config

import (
	"github.com/hyperjump/tadoru/internal/artifact"
	"github.com/hyperjump/tadoru/internal/tokenizer"
)

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if len(cfg.Content.PageContentKeys) == 0 {
		cfg.Content.PageContentKeys = append([]string(nil), artifact.DefaultPageContentKeys...)
	}
	if cfg.Content.MaxChunkSize == 0 {
		cfg.Content.MaxChunkSize = artifact.DefaultMaxChunkSize
	}
	if cfg.Tokenizer.Model == "" {
		cfg.Tokenizer.Model = tokenizer.DefaultModel
	}
	if cfg.Tokenizer.CacheSize == 0 {
		cfg.Tokenizer.CacheSize = 1024
	}
	if cfg.Session.RootQuery == "" {
		cfg.Session.RootQuery = "root"
	}
}

package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/hyperjump/tadoru/internal/config"
	"github.com/hyperjump/tadoru/internal/tokenizer"
)

func TestExpandArgsReorder(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "no flags",
			args: []string{"how", "do", "rivers", "form"},
			want: []string{"how", "do", "rivers", "form"},
		},
		{
			name: "flags already first",
			args: []string{"-parent", "abc", "follow", "up"},
			want: []string{"-parent", "abc", "follow", "up"},
		},
		{
			name: "flags after text",
			args: []string{"follow", "up", "-parent", "abc"},
			want: []string{"-parent", "abc", "follow", "up"},
		},
		{
			name: "double dash flags after text",
			args: []string{"a", "river", "--doc", "--title", "Rivers"},
			want: []string{"--doc", "--title", "Rivers", "a", "river"},
		},
		{
			name: "empty",
			args: []string{},
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := expandArgsReorder(tt.args)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expandArgsReorder(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestBuildItemText(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"single quoted arg", []string{"how do rivers form"}, "how do rivers form"},
		{"unquoted words", []string{"how", "do", "rivers", "form"}, "how do rivers form"},
		{"surrounding space", []string{" padded ", "words"}, "padded  words"},
		{"empty", []string{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildItemText(tt.args); got != tt.want {
				t.Errorf("buildItemText(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestParseOutputFormat(t *testing.T) {
	if f, err := parseOutputFormat("json"); err != nil || f != "json" {
		t.Errorf("parseOutputFormat(json) = %v, %v", f, err)
	}
	if f, err := parseOutputFormat("text"); err != nil || f != "text" {
		t.Errorf("parseOutputFormat(text) = %v, %v", f, err)
	}
	if _, err := parseOutputFormat("yaml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestLoadConfig_prefersCwdConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("server:\n  port: 9191\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get wd: %v", err)
	}
	defer os.Chdir(oldWd)
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}

	cfg, usedPath, err := loadConfig(defaultConfigPath)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Server.Port != 9191 {
		t.Errorf("expected port 9191 from cwd config, got %d", cfg.Server.Port)
	}

	// TempDir may sit behind a symlink (e.g. /var -> /private/var), so
	// compare resolved paths.
	wantPath, err := filepath.EvalSymlinks(cfgPath)
	if err != nil {
		t.Fatalf("failed to resolve path: %v", err)
	}
	gotPath, err := filepath.EvalSymlinks(usedPath)
	if err != nil {
		t.Fatalf("failed to resolve used path: %v", err)
	}
	if gotPath != wantPath {
		t.Errorf("expected used path %s, got %s", wantPath, gotPath)
	}
}

func TestLoadConfig_usesExplicitPath(t *testing.T) {
	dir := t.TempDir()
	explicit := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(explicit, []byte("server:\n  port: 7070\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, usedPath, err := loadConfig(explicit)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("expected port 7070, got %d", cfg.Server.Port)
	}
	if usedPath != explicit {
		t.Errorf("expected used path %s, got %s", explicit, usedPath)
	}
}

func TestBuildEncoder_offline(t *testing.T) {
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	cfg.Tokenizer.Offline = true

	enc := buildEncoder(cfg, zap.NewNop())
	if _, ok := enc.(*tokenizer.CachedEncoder); !ok {
		t.Errorf("expected cached encoder by default, got %T", enc)
	}
	if got := tokenizer.Count(enc, "three word phrase"); got != 3 {
		t.Errorf("expected 3 tokens, got %d", got)
	}
}

func TestBuildEncoder_cacheDisabled(t *testing.T) {
	disabled := false
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	cfg.Tokenizer.Offline = true
	cfg.Tokenizer.Cache = &disabled

	enc := buildEncoder(cfg, zap.NewNop())
	if _, ok := enc.(tokenizer.WordEncoder); !ok {
		t.Errorf("expected bare word encoder, got %T", enc)
	}
}

func TestNewSession(t *testing.T) {
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	cfg.Tokenizer.Offline = true
	cfg.Session.RootQuery = "starting point"

	sess, err := newSession(cfg, zap.NewNop(), nil)
	if err != nil {
		t.Fatalf("newSession failed: %v", err)
	}

	root := sess.Root()
	if root.Query != "starting point" {
		t.Errorf("expected root query 'starting point', got %q", root.Query)
	}
	stats := sess.Stats()
	if stats.TotalNodes != 1 {
		t.Errorf("expected 1 node, got %d", stats.TotalNodes)
	}
	if stats.Tokens != 0 {
		t.Errorf("expected 0 tokens, got %d", stats.Tokens)
	}
}

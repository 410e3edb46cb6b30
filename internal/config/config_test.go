package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsWhenFileAbsent(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "")
	t.Setenv("OMDB_API_KEY", "")

	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Errorf("expected exists=false for %s", resolved)
	}
	if cfg.TMDB.BaseURL != defaultTMDBBaseURL {
		t.Errorf("TMDB base url = %q", cfg.TMDB.BaseURL)
	}
	if cfg.CacheTTL() != 600*time.Second {
		t.Errorf("cache ttl = %v", cfg.CacheTTL())
	}
	if cfg.MinRequestInterval() != 250*time.Millisecond {
		t.Errorf("min request interval = %v", cfg.MinRequestInterval())
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Errorf("logging defaults = %+v", cfg.Logging)
	}
}

func TestLoadParsesFileAndExpandsPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
data_dir = "` + filepath.Join(dir, "data") + `"
log_dir = "` + filepath.Join(dir, "logs") + `"

[tmdb]
api_key = "file-key"

[gateway]
cache_ttl_seconds = 60
min_request_interval_ms = 10

[logging]
format = "json"
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be found")
	}
	if cfg.TMDB.APIKey != "file-key" {
		t.Errorf("api key = %q", cfg.TMDB.APIKey)
	}
	if cfg.Gateway.CacheTTLSeconds != 60 {
		t.Errorf("cache ttl seconds = %d", cfg.Gateway.CacheTTLSeconds)
	}
	if !filepath.IsAbs(cfg.Paths.DataDir) {
		t.Errorf("data dir not absolute: %q", cfg.Paths.DataDir)
	}
}

func TestEnvFallbackForAPIKeys(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "env-tmdb")
	t.Setenv("OMDB_API_KEY", "env-omdb")

	cfg, _, _, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TMDB.APIKey != "env-tmdb" {
		t.Errorf("tmdb key = %q, want env fallback", cfg.TMDB.APIKey)
	}
	if cfg.OMDB.APIKey != "env-omdb" {
		t.Errorf("omdb key = %q, want env fallback", cfg.OMDB.APIKey)
	}
}

func TestValidateRejectsBadLogging(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unsupported log format")
	}

	cfg = Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unsupported log level")
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := WriteSample(path); err != nil {
		t.Fatalf("WriteSample: %v", err)
	}
	if err := WriteSample(path); err == nil {
		t.Error("expected error when config already exists")
	}
}

func TestMissingAPIKeysAreAllowed(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "")
	t.Setenv("OMDB_API_KEY", "")

	cfg, _, _, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load should not require API keys: %v", err)
	}
	if cfg.TMDB.APIKey != "" || cfg.OMDB.APIKey != "" {
		t.Errorf("expected empty keys, got %+v %+v", cfg.TMDB, cfg.OMDB)
	}
}

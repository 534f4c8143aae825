package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tounesna/seeder/internal/config"
)

var allVars = []string{
	"TOUNESNA_DATABASE_URL",
	"TOUNESNA_VERIFY_URL",
	"TOUNESNA_AUTH_TOKEN",
	"TOUNESNA_DELAY",
	"TOUNESNA_HTTP_TIMEOUT",
	"TOUNESNA_SEED",
	"TOUNESNA_LOG_LEVEL",
	"TOUNESNA_ADDR",
	"TOUNESNA_BACKEND",
	"TOUNESNA_DB",
	"TOUNESNA_SECRET",
}

// isolate clears every variable and runs the test from an empty directory so
// no .env file is picked up.
func isolate(t *testing.T) {
	t.Helper()
	for _, k := range allVars {
		t.Setenv(k, "")
	}
	t.Chdir(t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DatabaseURL != config.DefaultDatabaseURL {
		t.Errorf("DatabaseURL = %q, want %q", cfg.DatabaseURL, config.DefaultDatabaseURL)
	}
	if cfg.VerifyURL != config.DefaultVerifyURL {
		t.Errorf("VerifyURL = %q, want %q", cfg.VerifyURL, config.DefaultVerifyURL)
	}
	if cfg.Delay != 100*time.Millisecond {
		t.Errorf("Delay = %v, want 100ms", cfg.Delay)
	}
	if cfg.HTTPTimeout != 0 {
		t.Errorf("HTTPTimeout = %v, want 0", cfg.HTTPTimeout)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want 0", cfg.Seed)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.Addr != ":9000" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":9000")
	}
	if cfg.Backend != "sqlite" {
		t.Errorf("Backend = %q, want sqlite", cfg.Backend)
	}
	if cfg.DBPath != "tounesna.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "tounesna.db")
	}
	if cfg.AuthToken != "" || cfg.Secret != "" {
		t.Errorf("AuthToken = %q, Secret = %q, want empty", cfg.AuthToken, cfg.Secret)
	}
}

func TestLoadFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("TOUNESNA_DATABASE_URL", "http://127.0.0.1:9000")
	t.Setenv("TOUNESNA_AUTH_TOKEN", "secret-token")
	t.Setenv("TOUNESNA_DELAY", "250ms")
	t.Setenv("TOUNESNA_HTTP_TIMEOUT", "5000")
	t.Setenv("TOUNESNA_SEED", "42")
	t.Setenv("TOUNESNA_LOG_LEVEL", "debug")
	t.Setenv("TOUNESNA_BACKEND", "leveldb")
	t.Setenv("TOUNESNA_DB", "/tmp/nodes")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DatabaseURL != "http://127.0.0.1:9000" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.AuthToken != "secret-token" {
		t.Errorf("AuthToken = %q, want %q", cfg.AuthToken, "secret-token")
	}
	if cfg.Delay != 250*time.Millisecond {
		t.Errorf("Delay = %v, want 250ms", cfg.Delay)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Errorf("HTTPTimeout = %v, want 5s", cfg.HTTPTimeout)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
	if cfg.Backend != "leveldb" || cfg.DBPath != "/tmp/nodes" {
		t.Errorf("Backend/DBPath = %q/%q", cfg.Backend, cfg.DBPath)
	}
}

func TestLoadDotEnv(t *testing.T) {
	isolate(t)
	dir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	env := "TOUNESNA_SECRET=from-file\nTOUNESNA_ADDR=:7000\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TOUNESNA_ADDR", ":7100")
	// .env never overrides a variable that is set, even to "".
	_ = os.Unsetenv("TOUNESNA_SECRET")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Secret != "from-file" {
		t.Errorf("Secret = %q, want from-file", cfg.Secret)
	}
	if cfg.Addr != ":7100" {
		t.Errorf("Addr = %q, want the environment to win", cfg.Addr)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	tests := map[string]string{
		"TOUNESNA_DELAY":        "soon",
		"TOUNESNA_HTTP_TIMEOUT": "-5",
		"TOUNESNA_SEED":         "abc",
		"TOUNESNA_LOG_LEVEL":    "loud",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			isolate(t)
			t.Setenv(key, value)
			if _, err := config.Load(); err == nil {
				t.Errorf("expected error for %s=%q", key, value)
			}
		})
	}
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Default database instances of the hosted service.
const (
	DefaultDatabaseURL = "https://tounesna-85dfe-default-rtdb.firebaseio.com"
	DefaultVerifyURL   = "https://tounesna-8021d-default-rtdb.firebaseio.com"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	DatabaseURL string        // TOUNESNA_DATABASE_URL, database written by seed
	VerifyURL   string        // TOUNESNA_VERIFY_URL, database checked by verify
	AuthToken   string        // TOUNESNA_AUTH_TOKEN, optional ?auth= token
	Delay       time.Duration // TOUNESNA_DELAY, default 100ms between records
	HTTPTimeout time.Duration // TOUNESNA_HTTP_TIMEOUT, default 0 (none)
	Seed        int64         // TOUNESNA_SEED, default 0 (time based)
	LogLevel    slog.Level    // TOUNESNA_LOG_LEVEL, default info

	Addr    string // TOUNESNA_ADDR, default ":9000"
	Backend string // TOUNESNA_BACKEND, default "sqlite"
	DBPath  string // TOUNESNA_DB, default "tounesna.db"
	Secret  string // TOUNESNA_SECRET, optional
}

// Load reads configuration from environment variables with sensible defaults.
// Variables in a .env file in the working directory are loaded first; real
// environment variables take precedence.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	delay, err := durationOr("TOUNESNA_DELAY", 100*time.Millisecond)
	if err != nil {
		return Config{}, err
	}
	timeout, err := durationOr("TOUNESNA_HTTP_TIMEOUT", 0)
	if err != nil {
		return Config{}, err
	}
	seed, err := int64Or("TOUNESNA_SEED", 0)
	if err != nil {
		return Config{}, err
	}
	level, err := ParseLevel(envOr("TOUNESNA_LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}

	return Config{
		DatabaseURL: envOr("TOUNESNA_DATABASE_URL", DefaultDatabaseURL),
		VerifyURL:   envOr("TOUNESNA_VERIFY_URL", DefaultVerifyURL),
		AuthToken:   os.Getenv("TOUNESNA_AUTH_TOKEN"),
		Delay:       delay,
		HTTPTimeout: timeout,
		Seed:        seed,
		LogLevel:    level,
		Addr:        envOr("TOUNESNA_ADDR", ":9000"),
		Backend:     envOr("TOUNESNA_BACKEND", "sqlite"),
		DBPath:      envOr("TOUNESNA_DB", "tounesna.db"),
		Secret:      os.Getenv("TOUNESNA_SECRET"),
	}, nil
}

// ParseLevel parses debug, info, warn or error.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// durationOr accepts a Go duration ("250ms") or a bare number of milliseconds.
func durationOr(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if ms, convErr := strconv.ParseInt(v, 10, 64); convErr == nil {
		d, err = time.Duration(ms)*time.Millisecond, nil
	}
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s %q: must not be negative", key, v)
	}
	return d, nil
}

func int64Or(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

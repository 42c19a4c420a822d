package config

import (
	"log/slog"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "STORAGE_BACKEND", "DATA_DIR", "SQLITE_DB_PATH", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	if cfg.Port != "8080" || cfg.StorageBackend != "file" || cfg.DataDir != "./data" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORAGE_BACKEND", "sqlite")
	t.Setenv("SQLITE_DB_PATH", t.TempDir()+"/x.db")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.Port != "9000" || cfg.StorageBackend != "sqlite" {
		t.Fatalf("environment not applied: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Fatalf("unexpected log level %v", cfg.SlogLevel())
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{
			name:   "non-numeric port",
			mutate: func(c *Config) { c.Port = "abc" },
			want:   "invalid port 'abc'",
		},
		{
			name:   "port out of range",
			mutate: func(c *Config) { c.Port = "70000" },
			want:   "must be between 1 and 65535",
		},
		{
			name:   "unknown backend",
			mutate: func(c *Config) { c.StorageBackend = "redis" },
			want:   "invalid storage backend 'redis'",
		},
		{
			name:   "empty data dir for file backend",
			mutate: func(c *Config) { c.DataDir = "" },
			want:   "data directory cannot be empty",
		},
		{
			name: "empty sqlite path for sqlite backend",
			mutate: func(c *Config) {
				c.StorageBackend = "sqlite"
				c.SQLiteDBPath = ""
			},
			want: "SQLite database path cannot be empty",
		},
		{
			name:   "bad log level",
			mutate: func(c *Config) { c.LogLevel = "verbose" },
			want:   "invalid log level 'verbose'",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{
				Port:           "8080",
				StorageBackend: "file",
				DataDir:        "./data",
				SQLiteDBPath:   "./data/spendlog.db",
				LogLevel:       "info",
			}
			tc.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid config",
			config: Config{
				Port:               "8081",
				SQLiteDBPath:       "./test.db",
				SessionTTL:         12 * time.Hour,
				RateLimitPerMinute: 30,
			},
			wantErr: false,
		},
		{
			name: "invalid port - non-numeric",
			config: Config{
				Port:               "abc",
				SQLiteDBPath:       "./test.db",
				SessionTTL:         12 * time.Hour,
				RateLimitPerMinute: 30,
			},
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name: "invalid port - out of range low",
			config: Config{
				Port:               "0",
				SQLiteDBPath:       "./test.db",
				SessionTTL:         12 * time.Hour,
				RateLimitPerMinute: 30,
			},
			wantErr:     true,
			errorString: "invalid port 0: must be between 1 and 65535",
		},
		{
			name: "invalid port - out of range high",
			config: Config{
				Port:               "70000",
				SQLiteDBPath:       "./test.db",
				SessionTTL:         12 * time.Hour,
				RateLimitPerMinute: 30,
			},
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name: "missing database path",
			config: Config{
				Port:               "8081",
				SQLiteDBPath:       "",
				SessionTTL:         12 * time.Hour,
				RateLimitPerMinute: 30,
			},
			wantErr:     true,
			errorString: "SQLite database path cannot be empty",
		},
		{
			name: "session TTL too short",
			config: Config{
				Port:               "8081",
				SQLiteDBPath:       "./test.db",
				SessionTTL:         10 * time.Second,
				RateLimitPerMinute: 30,
			},
			wantErr:     true,
			errorString: "must be at least 1 minute",
		},
		{
			name: "session TTL too long",
			config: Config{
				Port:               "8081",
				SQLiteDBPath:       "./test.db",
				SessionTTL:         60 * 24 * time.Hour,
				RateLimitPerMinute: 30,
			},
			wantErr:     true,
			errorString: "must be at most 720 hours",
		},
		{
			name: "rate limit too low",
			config: Config{
				Port:               "8081",
				SQLiteDBPath:       "./test.db",
				SessionTTL:         12 * time.Hour,
				RateLimitPerMinute: 0,
			},
			wantErr:     true,
			errorString: "must be at least 1 request per minute",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Fatalf("error %q does not contain %q", err.Error(), tt.errorString)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "SQLITE_DB_PATH", "SESSION_TTL", "SECURE_COOKIES", "RATE_LIMIT_PER_MINUTE"} {
		os.Unsetenv(key)
	}

	cfg := Load()
	if cfg.Port != "8081" {
		t.Fatalf("default port = %q", cfg.Port)
	}
	if cfg.SessionTTL != 12*time.Hour {
		t.Fatalf("default session TTL = %v", cfg.SessionTTL)
	}
	if cfg.SecureCookies {
		t.Fatalf("secure cookies should default to false for local use")
	}
	if cfg.RateLimitPerMinute != 30 {
		t.Fatalf("default rate limit = %d", cfg.RateLimitPerMinute)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "5")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("port = %q, want 9090", cfg.Port)
	}
	if cfg.SessionTTL != time.Hour {
		t.Fatalf("session TTL = %v, want 1h", cfg.SessionTTL)
	}
	if cfg.RateLimitPerMinute != 5 {
		t.Fatalf("rate limit = %d, want 5", cfg.RateLimitPerMinute)
	}
}

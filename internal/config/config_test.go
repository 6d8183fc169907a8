package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// validEnv sets the minimum required env vars for a valid config.
func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/testdb")
	t.Setenv("AUTH_JWT_SECRET", "this-is-a-very-long-jwt-secret-for-testing-32+")
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  write_timeout: "15s"
  idle_timeout: "30s"
  shutdown_timeout: "5s"

database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
  min_conns: 2

auth:
  jwt_secret: "this-is-a-very-long-jwt-secret-for-testing-32+"
  jwt_issuer: "skillsync-test"
  access_token_ttl: "30m"
  bcrypt_cost: 6

scoring:
  base_url: "http://scoring.internal:9000"
  timeout: "10s"

match:
  score_threshold: 75
  invite_message_max: 300

log:
  level: "debug"
  format: "text"
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 9090 {
		t.Errorf("server = %s:%d", cfg.Server.Host, cfg.Server.Port)
	}
	if cfg.Auth.JWTIssuer != "skillsync-test" {
		t.Errorf("JWTIssuer = %q", cfg.Auth.JWTIssuer)
	}
	if cfg.Auth.AccessTokenTTL != 30*time.Minute {
		t.Errorf("AccessTokenTTL = %v", cfg.Auth.AccessTokenTTL)
	}
	if cfg.Scoring.BaseURL != "http://scoring.internal:9000" {
		t.Errorf("Scoring.BaseURL = %q", cfg.Scoring.BaseURL)
	}
	if cfg.Match.ScoreThreshold != 75 {
		t.Errorf("ScoreThreshold = %d", cfg.Match.ScoreThreshold)
	}
	if cfg.Match.InviteMessageMax != 300 {
		t.Errorf("InviteMessageMax = %d", cfg.Match.InviteMessageMax)
	}
}

func TestLoad_EnvOnlyDefaults(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("default port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Auth.JWTIssuer != "skillsync" {
		t.Errorf("default issuer = %q, want skillsync", cfg.Auth.JWTIssuer)
	}
	if cfg.Match.ScoreThreshold != 80 {
		t.Errorf("default threshold = %d, want 80", cfg.Match.ScoreThreshold)
	}
	// No base URL means the in-process scorer.
	if cfg.Scoring.BaseURL != "" {
		t.Errorf("default scoring base url = %q, want empty", cfg.Scoring.BaseURL)
	}
}

func TestLoad_MissingDSN(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "this-is-a-very-long-jwt-secret-for-testing-32+")
	t.Setenv("CONFIG_PATH", "")

	// t.Setenv registers the restore, Unsetenv makes the var truly absent.
	t.Setenv("DATABASE_DSN", "placeholder")
	os.Unsetenv("DATABASE_DSN")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing DSN")
	}
}

func validConfig() *Config {
	return &Config{
		Auth: AuthConfig{
			JWTSecret:  "this-is-a-very-long-jwt-secret-for-testing-32+",
			BcryptCost: 10,
		},
		Scoring: ScoringConfig{Timeout: 15 * time.Second},
		Match:   MatchConfig{ScoreThreshold: 80, InviteMessageMax: 500},
	}
}

func TestValidate_JWTSecretTooShort(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Auth.JWTSecret = "short"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for short JWT secret")
	}
}

func TestValidate_BcryptCostOutOfRange(t *testing.T) {
	t.Parallel()

	for _, cost := range []int{0, 3, 32} {
		cfg := validConfig()
		cfg.Auth.BcryptCost = cost
		if err := cfg.Validate(); err == nil {
			t.Errorf("cost %d: expected error", cost)
		}
	}
}

func TestValidate_ScoringTimeoutZero(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Scoring.Timeout = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero scoring timeout")
	}
}

func TestValidate_ScoreThresholdOutOfRange(t *testing.T) {
	t.Parallel()

	for _, threshold := range []int{-1, 101} {
		cfg := validConfig()
		cfg.Match.ScoreThreshold = threshold
		if err := cfg.Validate(); err == nil {
			t.Errorf("threshold %d: expected error", threshold)
		}
	}
}

func TestValidate_InviteMessageMaxZero(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Match.InviteMessageMax = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero invite message max")
	}
}

func TestValidate_OK(t *testing.T) {
	t.Parallel()

	if err := validConfig().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

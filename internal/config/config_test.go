package config

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"BOARD_PRESET", "BOT_DIFFICULTY", "SEARCH_DEPTH", "MOVE_TIME_LIMIT_SECONDS",
		"RANDOM_SEED", "SCORE_FILE", "DATABASE_URL", "REDIS_URL", "KAFKA_BROKERS", "LOG_LEVEL", "SNAPSHOT_TTL_MINUTES",
		"PORT", "ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}
	cfg := LoadConfig()
	if cfg.BoardPreset != "medium" || cfg.BotDifficulty != "hard" || cfg.SearchDepth != 4 {
		t.Fatalf("unexpected game defaults %+v", cfg)
	}
	if cfg.MoveTimeLimit != 5*time.Second || cfg.SnapshotTTL != time.Hour {
		t.Fatalf("unexpected durations %v / %v", cfg.MoveTimeLimit, cfg.SnapshotTTL)
	}
	if cfg.DatabaseURL != "" || cfg.RedisURL != "" || cfg.KafkaBrokers != "" {
		t.Fatalf("backends must be off by default")
	}
	if cfg.ScoreFile != "scores.txt" || cfg.LogLevel != zerolog.InfoLevel || cfg.RandomSeed != 0 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.HTTPPort != "8080" || len(cfg.AllowedOrigins) != 1 {
		t.Fatalf("unexpected http defaults %q %v", cfg.HTTPPort, cfg.AllowedOrigins)
	}
	if AppConfig != cfg {
		t.Fatalf("AppConfig not set")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("BOARD_PRESET", "large")
	t.Setenv("SEARCH_DEPTH", "6")
	t.Setenv("MOVE_TIME_LIMIT_SECONDS", "0")
	t.Setenv("RANDOM_SEED", "99")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("ALLOWED_ORIGINS", " https://a.example , ,https://b.example")

	cfg := LoadConfig()
	if cfg.BoardPreset != "large" || cfg.SearchDepth != 6 || cfg.MoveTimeLimit != 0 || cfg.RandomSeed != 99 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Fatalf("origins = %q", cfg.AllowedOrigins)
	}
	if cfg.LogLevel != zerolog.DebugLevel || cfg.KafkaBrokers != "k1:9092,k2:9092" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestGetEnvAsIntFallsBack(t *testing.T) {
	t.Setenv("SEARCH_DEPTH", "deep")
	if got := GetEnvAsInt("SEARCH_DEPTH", 4); got != 4 {
		t.Fatalf("GetEnvAsInt = %d, want default 4", got)
	}
	t.Setenv("LOG_LEVEL", "loud")
	if cfg := LoadConfig(); cfg.LogLevel != zerolog.InfoLevel {
		t.Fatalf("invalid LOG_LEVEL should fall back to info, got %v", cfg.LogLevel)
	}
}

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	BoardPreset          string
	BotDifficulty        string
	SearchDepth          int
	MoveTimeLimit        time.Duration
	RandomSeed           int64 // 0 means seed from the clock
	ScoreFile            string
	DatabaseURL          string
	DBMaxOpenConns       int
	DBMaxIdleConns       int
	DBConnMaxLifetimeMin int
	RedisURL             string
	RedisPassword        string
	SnapshotTTL          time.Duration
	KafkaBrokers         string
	KafkaTopic           string
	LogLevel             zerolog.Level
	ResumeGameID         string
	HTTPPort             string
	ResultRetentionDays  int
	AllowedOrigins       []string
}

var AppConfig *Config

// LoadConfig reads the environment. Optional backends stay disabled while
// their address is empty.
func LoadConfig() *Config {
	moveLimitSec := GetEnvAsInt("MOVE_TIME_LIMIT_SECONDS", 5)
	snapshotTTLMin := GetEnvAsInt("SNAPSHOT_TTL_MINUTES", 60)

	level, err := zerolog.ParseLevel(strings.ToLower(GetEnv("LOG_LEVEL", "info")))
	if err != nil {
		log.Warn().Str("value", os.Getenv("LOG_LEVEL")).Msg("invalid LOG_LEVEL, using info")
		level = zerolog.InfoLevel
	}

	var allowedOrigins []string
	for _, origin := range strings.Split(GetEnv("ALLOWED_ORIGINS", "http://localhost:5173"), ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			allowedOrigins = append(allowedOrigins, trimmed)
		}
	}

	AppConfig = &Config{
		BoardPreset:          GetEnv("BOARD_PRESET", "medium"),
		BotDifficulty:        GetEnv("BOT_DIFFICULTY", "hard"),
		SearchDepth:          GetEnvAsInt("SEARCH_DEPTH", 4),
		MoveTimeLimit:        time.Duration(moveLimitSec) * time.Second,
		RandomSeed:           int64(GetEnvAsInt("RANDOM_SEED", 0)),
		ScoreFile:            GetEnv("SCORE_FILE", "scores.txt"),
		DatabaseURL:          GetEnv("DATABASE_URL", ""),
		DBMaxOpenConns:       GetEnvAsInt("DB_MAX_OPEN_CONNS", 5),
		DBMaxIdleConns:       GetEnvAsInt("DB_MAX_IDLE_CONNS", 5),
		DBConnMaxLifetimeMin: GetEnvAsInt("DB_CONN_MAX_LIFETIME_MINUTES", 5),
		RedisURL:             GetEnv("REDIS_URL", ""),
		RedisPassword:        GetEnv("REDIS_PASSWORD", ""),
		SnapshotTTL:          time.Duration(snapshotTTLMin) * time.Minute,
		KafkaBrokers:         GetEnv("KAFKA_BROKERS", ""),
		KafkaTopic:           GetEnv("KAFKA_TOPIC", "game.analytics"),
		LogLevel:             level,
		ResumeGameID:         GetEnv("RESUME_GAME_ID", ""),
		HTTPPort:             GetEnv("PORT", "8080"),
		ResultRetentionDays:  GetEnvAsInt("RESULT_RETENTION_DAYS", 90),
		AllowedOrigins:       allowedOrigins,
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Int("default", defaultValue).Msg("invalid integer value, using default")
		return defaultValue
	}
	return value
}

// SetupLogger points the global zerolog logger at a console writer on stderr.
func SetupLogger(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}

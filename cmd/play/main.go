package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iamasit07/connect4-obstacles/internal/analytics"
	"github.com/iamasit07/connect4-obstacles/internal/config"
	"github.com/iamasit07/connect4-obstacles/internal/domain"
	"github.com/iamasit07/connect4-obstacles/internal/repository/postgres"
	"github.com/iamasit07/connect4-obstacles/internal/repository/redis"
	"github.com/iamasit07/connect4-obstacles/internal/repository/scorefile"
	"github.com/iamasit07/connect4-obstacles/internal/service/bot"
	"github.com/iamasit07/connect4-obstacles/internal/service/game"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found")
	}

	cfg := config.LoadConfig()
	config.SetupLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var recorders []game.ResultRecorder
	if cfg.ScoreFile != "" {
		recorders = append(recorders, scorefile.NewRecorder(cfg.ScoreFile))
	}
	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(ctx, cfg.DatabaseURL, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBConnMaxLifetimeMin)
		if err != nil {
			log.Warn().Err(err).Msg("results will not be stored in postgres")
		} else {
			defer db.Close()
			recorders = append(recorders, postgres.NewGameRepo(db))
		}
	}

	var cache game.CacheRepository
	if cfg.RedisURL != "" {
		client, err := redis.Connect(ctx, cfg.RedisURL, cfg.RedisPassword)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable")
		}
		if client != nil {
			rc := redis.NewRedisCache(client)
			defer rc.Close()
			cache = rc
		}
	}

	var events game.EventPublisher
	if cfg.KafkaBrokers != "" {
		producer := analytics.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer producer.Close()
		events = producer
	}

	seed := cfg.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	svc := game.NewService(game.Config{
		Difficulty:    bot.ParseDifficulty(cfg.BotDifficulty),
		SearchDepth:   cfg.SearchDepth,
		MoveTimeLimit: cfg.MoveTimeLimit,
		SnapshotTTL:   cfg.SnapshotTTL,
	}, rand.New(rand.NewSource(seed)), cache, events, recorders...)

	p := &player{
		svc:   svc,
		out:   os.Stdout,
		lines: readLines(os.Stdin),
	}
	if err := p.run(ctx, cfg.BoardPreset, cfg.ResumeGameID); err != nil && ctx.Err() == nil {
		log.Error().Err(err).Msg("game stopped")
		os.Exit(1)
	}
}

// readLines feeds stdin to a channel so the turn timer can run alongside it.
func readLines(r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return lines
}

// render draws the board top row first with 1-based column numbers below.
func render(w io.Writer, b *domain.Board) {
	for r := b.Rows - 1; r >= 0; r-- {
		for c := 0; c < b.Cols; c++ {
			fmt.Fprintf(w, " %c", b.At(r, c).Symbol())
		}
		fmt.Fprintln(w)
	}
	for c := 0; c < b.Cols; c++ {
		fmt.Fprintf(w, "%2d", (c+1)%100)
	}
	fmt.Fprintln(w)
}

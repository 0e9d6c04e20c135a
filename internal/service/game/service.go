package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"sync"
	"time"

	"github.com/iamasit07/connect4-obstacles/internal/domain"
	"github.com/iamasit07/connect4-obstacles/internal/service/bot"
	"github.com/iamasit07/connect4-obstacles/pkg/uid"
	"github.com/rs/zerolog/log"
)

const snapshotKeyPrefix = "game_snapshot:"

const (
	ReasonConnect = "connect_four"
	ReasonDraw    = "draw"
)

var ErrSnapshotUnavailable = errors.New("game snapshot not available")

// ResultRecorder stores the outcome of a finished game.
type ResultRecorder interface {
	SaveResult(ctx context.Context, result domain.GameResult) error
}

type CacheRepository interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

type EventPublisher interface {
	Emit(ctx context.Context, event string, payload map[string]any)
}

type Config struct {
	Difficulty    bot.Difficulty
	SearchDepth   int
	MoveTimeLimit time.Duration // zero disables the limit
	SnapshotTTL   time.Duration
}

// Service is the entry point for game logic. It keeps no per-game state;
// everything lives in the GameSession the caller passes in.
type Service struct {
	cfg       Config
	engine    bot.Engine
	cache     CacheRepository // Optional, can be nil
	events    EventPublisher  // Optional, can be nil
	recorders []ResultRecorder
	mu        sync.Mutex // guards rng
	rng       *rand.Rand
	now       func() time.Time
}

func NewService(cfg Config, rng *rand.Rand, cache CacheRepository, events EventPublisher, recorders ...ResultRecorder) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		cfg:       cfg,
		engine:    bot.NewEngine(cfg.Difficulty, cfg.SearchDepth),
		cache:     cache,
		events:    events,
		recorders: recorders,
		rng:       rng,
		now:       time.Now,
	}
}

// NewSession starts a game on the named board preset. Who moves first is
// decided at random.
func (s *Service) NewSession(ctx context.Context, preset string) (*GameSession, error) {
	cfg, ok := domain.GetPreset(preset)
	if !ok {
		return nil, fmt.Errorf("%w: unknown board preset %q", domain.ErrConfiguration, preset)
	}

	s.mu.Lock()
	g, err := domain.NewGame(cfg, domain.Player1, s.rng)
	if err == nil && s.rng.Intn(2) == 1 {
		g.CurrentPlayer = domain.Player2
	}
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	now := s.now()
	gs := &GameSession{
		GameID:        uid.GenerateGameID(),
		Preset:        preset,
		Game:          g,
		HumanPiece:    domain.Player1,
		BotPiece:      domain.Player2,
		Difficulty:    s.engine.Difficulty,
		CreatedAt:     now,
		TurnStartedAt: now,
	}

	log.Info().
		Str("component", "session").
		Str("game_id", gs.GameID).
		Str("preset", preset).
		Int("rows", cfg.Rows).
		Int("cols", cfg.Cols).
		Bool("human_first", gs.IsHumanTurn()).
		Msg("created session")

	s.emit(ctx, "game_start", map[string]any{
		"gameId": gs.GameID,
		"preset": preset,
		"first":  int(g.CurrentPlayer),
	})

	gs.mu.Lock()
	defer gs.mu.Unlock()
	if g.IsFinished() {
		gs.Reason = ReasonDraw
		s.finishLocked(ctx, gs)
		return gs, nil
	}
	s.saveSnapshot(ctx, gs)
	return gs, nil
}

// TimeRemaining is what is left of the current turn's time budget.
func (s *Service) TimeRemaining(gs *GameSession) time.Duration {
	if s.cfg.MoveTimeLimit <= 0 {
		return 0
	}
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return max(0, s.cfg.MoveTimeLimit-s.now().Sub(gs.TurnStartedAt))
}

func (s *Service) turnExpiredLocked(gs *GameSession) bool {
	return s.cfg.MoveTimeLimit > 0 && s.now().Sub(gs.TurnStartedAt) > s.cfg.MoveTimeLimit
}

// PlayHuman drops the human's piece in column. A move that arrives after the
// time limit is refused and the turn goes to the bot.
func (s *Service) PlayHuman(ctx context.Context, gs *GameSession, column int) (int, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.Game.IsFinished() {
		return -1, domain.ErrGameFinished
	}
	if gs.Game.CurrentPlayer != gs.HumanPiece {
		return -1, domain.ErrNotYourTurn
	}
	if s.turnExpiredLocked(gs) {
		s.forfeitLocked(ctx, gs)
		return -1, domain.ErrMoveTimeout
	}

	row, err := gs.Game.MakeMove(gs.HumanPiece, column)
	if err != nil {
		return -1, err
	}
	gs.Stats.PlayerMoves++

	s.afterMoveLocked(ctx, gs, gs.HumanPiece, column, row)
	return row, nil
}

type botChoice struct {
	column int
	score  int
}

// PlayBot asks the engine for a move and plays it. The search runs on its own
// board copy; if it has not answered within the move time limit the bot
// forfeits the turn and the late answer is dropped.
func (s *Service) PlayBot(ctx context.Context, gs *GameSession) (int, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	// Verify it's actually bot's turn
	if gs.Game.IsFinished() {
		return bot.NoMove, domain.ErrGameFinished
	}
	if gs.Game.CurrentPlayer != gs.BotPiece {
		return bot.NoMove, domain.ErrNotYourTurn
	}

	blockingMoves := bot.WinningColumns(gs.Game.Board, gs.HumanPiece)
	board := gs.Game.Board.Copy()

	s.mu.Lock()
	rng := rand.New(rand.NewSource(s.rng.Int63()))
	s.mu.Unlock()

	searchCtx := ctx
	if s.cfg.MoveTimeLimit > 0 {
		var cancel context.CancelFunc
		searchCtx, cancel = context.WithTimeout(ctx, s.cfg.MoveTimeLimit)
		defer cancel()
	}

	done := make(chan botChoice, 1)
	started := s.now()
	go func() {
		col, score := s.engine.ChooseMove(board, gs.BotPiece, rng)
		done <- botChoice{column: col, score: score}
	}()

	var choice botChoice
	select {
	case <-searchCtx.Done():
		if err := ctx.Err(); err != nil {
			return bot.NoMove, err
		}
		log.Warn().
			Str("component", "session").
			Str("game_id", gs.GameID).
			Dur("limit", s.cfg.MoveTimeLimit).
			Msg("bot ran out of time, turn forfeited")
		s.forfeitLocked(ctx, gs)
		return bot.NoMove, domain.ErrMoveTimeout
	case choice = <-done:
	}

	log.Debug().
		Str("component", "session").
		Str("game_id", gs.GameID).
		Int("column", choice.column).
		Int("score", choice.score).
		Dur("took", s.now().Sub(started)).
		Msg("bot chose move")

	if choice.column == bot.NoMove {
		return bot.NoMove, domain.ErrNoLegalMove
	}

	row, err := gs.Game.MakeMove(gs.BotPiece, choice.column)
	if err != nil {
		return bot.NoMove, fmt.Errorf("bot move in column %d: %w", choice.column, err)
	}

	gs.Stats.BotMoves++
	if slices.Contains(blockingMoves, choice.column) {
		gs.Stats.BotBlocks++
	}
	if choice.score == bot.WinScore {
		gs.Stats.BotOptimalMoves++
	}

	s.afterMoveLocked(ctx, gs, gs.BotPiece, choice.column, row)
	return choice.column, nil
}

// Hint suggests a column for the human: a winning one, else a block. NoMove
// when there is nothing urgent.
func (s *Service) Hint(gs *GameSession) int {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.Game.IsFinished() {
		return bot.NoMove
	}
	return bot.SuggestMove(gs.Game.Board, gs.HumanPiece, gs.BotPiece)
}

// ExpireTurn forfeits the current turn, used by callers that run the turn
// timer themselves.
func (s *Service) ExpireTurn(ctx context.Context, gs *GameSession) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.Game.IsFinished() {
		return
	}
	s.forfeitLocked(ctx, gs)
}

func (s *Service) forfeitLocked(ctx context.Context, gs *GameSession) {
	side := gs.Game.CurrentPlayer
	gs.Game.PassTurn()
	gs.TurnStartedAt = s.now()

	s.emit(ctx, "turn_forfeit", map[string]any{
		"gameId": gs.GameID,
		"by":     int(side),
	})
	s.saveSnapshot(ctx, gs)
}

func (s *Service) afterMoveLocked(ctx context.Context, gs *GameSession, piece domain.Cell, column, row int) {
	s.emit(ctx, "move", map[string]any{
		"gameId": gs.GameID,
		"by":     int(piece),
		"col":    column,
		"row":    row,
	})

	switch gs.Game.Status {
	case domain.StatusWon:
		gs.Reason = ReasonConnect
		s.finishLocked(ctx, gs)
	case domain.StatusDraw:
		gs.Reason = ReasonDraw
		s.finishLocked(ctx, gs)
	default:
		gs.TurnStartedAt = s.now()
		s.saveSnapshot(ctx, gs)
	}
}

// finishLocked hands the result to every recorder. A failing recorder is
// logged and does not stop the others.
func (s *Service) finishLocked(ctx context.Context, gs *GameSession) {
	gs.FinishedAt = s.now()
	result := gs.Result()

	for _, r := range s.recorders {
		if err := r.SaveResult(ctx, result); err != nil {
			log.Error().Err(err).Str("component", "session").Str("game_id", gs.GameID).Msg("error saving game result")
		}
	}

	if s.cache != nil {
		if err := s.cache.Del(ctx, snapshotKeyPrefix+gs.GameID); err != nil {
			log.Warn().Err(err).Str("component", "session").Str("game_id", gs.GameID).Msg("could not drop snapshot")
		}
	}

	s.emit(ctx, "game_over", map[string]any{
		"gameId":   gs.GameID,
		"winner":   result.Winner,
		"reason":   result.Reason,
		"moves":    gs.Game.MoveCount,
		"duration": result.DurationSeconds,
	})

	log.Info().
		Str("component", "session").
		Str("game_id", gs.GameID).
		Str("winner", result.Winner).
		Int("player_moves", result.PlayerMoves).
		Int("bot_moves", result.BotMoves).
		Msg("game finished")
}

func (s *Service) saveSnapshot(ctx context.Context, gs *GameSession) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(gs)
	if err != nil {
		log.Error().Err(err).Str("component", "session").Str("game_id", gs.GameID).Msg("failed to encode snapshot")
		return
	}
	if err := s.cache.Set(ctx, snapshotKeyPrefix+gs.GameID, string(data), s.cfg.SnapshotTTL); err != nil {
		log.Warn().Err(err).Str("component", "session").Str("game_id", gs.GameID).Msg("failed to store snapshot")
	}
}

// Restore reloads an unfinished session from the snapshot cache. The turn
// timer restarts on restore.
func (s *Service) Restore(ctx context.Context, gameID string) (*GameSession, error) {
	if s.cache == nil {
		return nil, fmt.Errorf("%w: cache disabled", ErrSnapshotUnavailable)
	}
	data, err := s.cache.Get(ctx, snapshotKeyPrefix+gameID)
	if err != nil || data == "" {
		return nil, fmt.Errorf("%w: %s", ErrSnapshotUnavailable, gameID)
	}

	gs := &GameSession{}
	if err := json.Unmarshal([]byte(data), gs); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", gameID, err)
	}
	if gs.Game == nil || gs.Game.Board == nil || gs.Game.IsFinished() {
		return nil, fmt.Errorf("%w: %s is not an active game", ErrSnapshotUnavailable, gameID)
	}
	gs.TurnStartedAt = s.now()

	log.Info().Str("component", "session").Str("game_id", gameID).Msg("restored session")
	return gs, nil
}

func (s *Service) emit(ctx context.Context, event string, payload map[string]any) {
	if s.events == nil {
		return
	}
	s.events.Emit(ctx, event, payload)
}

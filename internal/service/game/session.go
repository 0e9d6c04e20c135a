package game

import (
	"sync"
	"time"

	"github.com/iamasit07/connect4-obstacles/internal/domain"
	"github.com/iamasit07/connect4-obstacles/internal/service/bot"
)

// Stats are the per-game counters shown on the post-game panel.
type Stats struct {
	PlayerMoves     int `json:"player_moves"`
	BotMoves        int `json:"bot_moves"`
	BotOptimalMoves int `json:"bot_optimal_moves"` // moves the search valued as a forced win
	BotBlocks       int `json:"bot_blocks"`        // moves that took a column the human could have won in
}

// GameSession is everything one human-vs-bot game needs between calls. The
// caller owns it; Service methods take it explicitly.
type GameSession struct {
	GameID        string         `json:"game_id"`
	Preset        string         `json:"preset"`
	Game          *domain.Game   `json:"game"`
	HumanPiece    domain.Cell    `json:"human_piece"`
	BotPiece      domain.Cell    `json:"bot_piece"`
	Difficulty    bot.Difficulty `json:"difficulty"`
	Stats         Stats          `json:"stats"`
	Reason        string         `json:"reason,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	TurnStartedAt time.Time      `json:"turn_started_at"`
	FinishedAt    time.Time      `json:"finished_at"`
	mu            sync.Mutex
}

func (gs *GameSession) IsHumanTurn() bool {
	return !gs.Game.IsFinished() && gs.Game.CurrentPlayer == gs.HumanPiece
}

func (gs *GameSession) IsBotTurn() bool {
	return !gs.Game.IsFinished() && gs.Game.CurrentPlayer == gs.BotPiece
}

// WinnerLabel is "Player", "AI" or "Tie" once the game is over, "" before.
func (gs *GameSession) WinnerLabel() string {
	switch {
	case gs.Game.Status == domain.StatusDraw:
		return domain.WinnerTie
	case gs.Game.Status != domain.StatusWon:
		return ""
	case gs.Game.Winner == gs.HumanPiece:
		return domain.WinnerPlayer
	default:
		return domain.WinnerBot
	}
}

// Result flattens a finished session into the record kept by score storage.
func (gs *GameSession) Result() domain.GameResult {
	board := gs.Game.Board
	return domain.GameResult{
		GameID:          gs.GameID,
		Preset:          gs.Preset,
		Rows:            board.Rows,
		Cols:            board.Cols,
		WinLength:       board.WinLength,
		Winner:          gs.WinnerLabel(),
		Reason:          gs.Reason,
		PlayerMoves:     gs.Stats.PlayerMoves,
		BotMoves:        gs.Stats.BotMoves,
		BotOptimalMoves: gs.Stats.BotOptimalMoves,
		BotBlocks:       gs.Stats.BotBlocks,
		DurationSeconds: int(gs.FinishedAt.Sub(gs.CreatedAt).Seconds()),
		CreatedAt:       gs.CreatedAt,
		FinishedAt:      gs.FinishedAt,
		Board:           board.Ints(),
	}
}

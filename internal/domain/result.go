package domain

import "time"

const (
	WinnerPlayer = "Player"
	WinnerBot    = "AI"
	WinnerTie    = "Tie"
)

// GameResult is the flat record handed to score persistence once a game ends.
type GameResult struct {
	GameID          string    `json:"game_id"`
	Preset          string    `json:"preset"`
	Rows            int       `json:"rows"`
	Cols            int       `json:"cols"`
	WinLength       int       `json:"win_length"`
	Winner          string    `json:"winner"`
	Reason          string    `json:"reason"`
	PlayerMoves     int       `json:"player_moves"`
	BotMoves        int       `json:"bot_moves"`
	BotOptimalMoves int       `json:"bot_optimal_moves"`
	BotBlocks       int       `json:"bot_blocks"`
	DurationSeconds int       `json:"duration_seconds"`
	CreatedAt       time.Time `json:"created_at"`
	FinishedAt      time.Time `json:"finished_at"`
	Board           [][]int   `json:"board"`
}

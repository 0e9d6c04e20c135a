package domain

import "strings"

// Cell is the content of a single board square.
type Cell int

const (
	Obstacle Cell = -1
	Empty    Cell = 0
	Player1  Cell = 1
	Player2  Cell = 2
)

// Opponent returns the other side for a piece. Anything that is not a
// player piece maps to Empty.
func Opponent(p Cell) Cell {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return Empty
}

func (c Cell) IsPiece() bool {
	return c == Player1 || c == Player2
}

func (c Cell) Symbol() byte {
	switch c {
	case Player1:
		return 'X'
	case Player2:
		return 'O'
	case Obstacle:
		return '#'
	}
	return '.'
}

// BoardConfig is fixed when the board is created and never changes for the game.
type BoardConfig struct {
	Rows            int     `json:"rows"`
	Cols            int     `json:"cols"`
	WinLength       int     `json:"win_length"`
	ObstacleDensity float64 `json:"obstacle_density"`
}

// roughly 12.5% of the board blocked
const DefaultObstacleDensity = 0.125

var BoardPresets = map[string]BoardConfig{
	"small":  {Rows: 5, Cols: 6, WinLength: 4, ObstacleDensity: DefaultObstacleDensity},
	"medium": {Rows: 6, Cols: 7, WinLength: 4, ObstacleDensity: DefaultObstacleDensity},
	"large":  {Rows: 8, Cols: 10, WinLength: 5, ObstacleDensity: DefaultObstacleDensity},
}

const DefaultPreset = "medium"

// GetPreset looks a preset up by name, case-insensitively.
func GetPreset(name string) (BoardConfig, bool) {
	cfg, ok := BoardPresets[strings.ToLower(strings.TrimSpace(name))]
	return cfg, ok
}

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove   Error = "invalid move"
	ErrColumnFull    Error = "column is full"
	ErrNoLegalMove   Error = "no legal move"
	ErrConfiguration Error = "invalid board configuration"
	ErrNotYourTurn   Error = "not your turn"
	ErrGameFinished  Error = "game already finished"
	ErrMoveTimeout   Error = "move time limit exceeded"
)

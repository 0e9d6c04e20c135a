package bot

import (
	"math/rand"
	"strings"

	"github.com/iamasit07/connect4-obstacles/internal/domain"
)

type Difficulty string

const (
	DifficultyEasy Difficulty = "easy"
	DifficultyHard Difficulty = "hard"
)

// ParseDifficulty falls back to hard for anything it does not recognise.
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case DifficultyEasy:
		return DifficultyEasy
	default:
		return DifficultyHard
	}
}

// Engine picks moves for the computer side. It holds configuration only,
// every call works on the board it is given.
type Engine struct {
	Difficulty Difficulty
	Depth      int
}

func NewEngine(difficulty Difficulty, depth int) Engine {
	if depth <= 0 {
		depth = DefaultDepth
	}
	return Engine{Difficulty: difficulty, Depth: depth}
}

// ChooseMove selects the best move based on difficulty. The score is only
// meaningful for the hard engine; easy reports 0.
func (e Engine) ChooseMove(board *domain.Board, piece domain.Cell, rng *rand.Rand) (int, int) {
	switch e.Difficulty {
	case DifficultyEasy:
		return chooseEasy(board, piece, rng), 0
	default:
		return Search(board, e.Depth, piece, rng)
	}
}

func chooseEasy(board *domain.Board, piece domain.Cell, rng *rand.Rand) int {
	validColumns := board.ValidColumns()
	if len(validColumns) == 0 {
		return NoMove
	}

	if col := SuggestMove(board, piece, domain.Opponent(piece)); col != NoMove {
		return col
	}

	return validColumns[rng.Intn(len(validColumns))]
}

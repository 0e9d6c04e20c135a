package bot

import (
	"math/rand"
	"time"

	"github.com/iamasit07/connect4-obstacles/internal/domain"
	"github.com/rs/zerolog/log"
)

const (
	NoMove       = -1
	DefaultDepth = 4
)

type searcher struct {
	maximizing domain.Cell
	minimizing domain.Cell
	rng        *rand.Rand
	nodes      int
}

// Search runs a depth-limited minimax with alpha-beta pruning for the
// maximizing side and returns the chosen column with its value. The column
// is NoMove when the board is already decided or depth is exhausted at the
// root; callers must not try to play it.
//
// Every interior node starts from a random legal column and only replaces it
// with a strictly better one, so among equal values the first improving
// column in ascending order wins.
func Search(board *domain.Board, depth int, maximizing domain.Cell, rng *rand.Rand) (int, int) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &searcher{
		maximizing: maximizing,
		minimizing: domain.Opponent(maximizing),
		rng:        rng,
	}

	column, score := s.minimax(board, depth, LossScore, WinScore, true)

	log.Debug().
		Str("component", "bot").
		Int("depth", depth).
		Int("nodes", s.nodes).
		Int("column", column).
		Int("score", score).
		Msg("search finished")
	return column, score
}

// minimax implements the minimax algorithm with alpha-beta pruning. Children
// are searched on board copies, the board passed in is never modified.
func (s *searcher) minimax(board *domain.Board, depth int, alpha, beta int, isMaximizing bool) (int, int) {
	s.nodes++

	terminal := board.IsTerminal()
	if depth <= 0 || terminal {
		if terminal {
			return NoMove, EvaluateTerminal(board, s.maximizing)
		}
		return NoMove, ScorePosition(board, s.maximizing)
	}

	validColumns := board.ValidColumns()
	bestCol := validColumns[s.rng.Intn(len(validColumns))]

	if isMaximizing {
		value := LossScore
		for _, col := range validColumns {
			testBoard, _, err := board.SimulateMove(col, s.maximizing)
			if err != nil {
				continue
			}

			_, score := s.minimax(testBoard, depth-1, alpha, beta, false)
			if score > value {
				value = score
				bestCol = col
			}

			alpha = max(alpha, value)
			if alpha >= beta {
				break // beta cutoff
			}
		}
		return bestCol, value
	}

	value := WinScore
	for _, col := range validColumns {
		testBoard, _, err := board.SimulateMove(col, s.minimizing)
		if err != nil {
			continue
		}

		_, score := s.minimax(testBoard, depth-1, alpha, beta, true)
		if score < value {
			value = score
			bestCol = col
		}

		beta = min(beta, value)
		if alpha >= beta {
			break // alpha cutoff
		}
	}
	return bestCol, value
}

package bot

import (
	"math"

	"github.com/iamasit07/connect4-obstacles/internal/domain"
)

// WindowLength is the heuristic window size. It is fixed at four cells and
// does not follow Board.WinLength, so on the large preset (five to win) the
// evaluator still scores four-cell windows.
const WindowLength = 4

const (
	SCORE_CENTER     = 6   // per own piece in the middle column
	SCORE_FOUR       = 100 // window fully owned
	SCORE_THREE_OPEN = 10  // three own + one empty
	SCORE_TWO_OPEN   = 5   // two own + two empty
	SCORE_OPP_THREE  = -80 // opponent three + one empty
)

const (
	WinScore  = math.MaxInt
	LossScore = math.MinInt
	DrawScore = 0
)

// ScorePosition rates the board from piece's point of view.
func ScorePosition(board *domain.Board, piece domain.Cell) int {
	opponent := domain.Opponent(piece)
	score := 0

	// Center column preference
	center := board.Cols / 2
	for row := 0; row < board.Rows; row++ {
		if board.At(row, center) == piece {
			score += SCORE_CENTER
		}
	}

	board.ScanWindows(WindowLength, func(window []domain.Cell) bool {
		score += evaluateWindow(window, piece, opponent)
		return true
	})

	return score
}

// evaluateWindow scores one window. An obstacle counts as neither side nor
// empty, so any window holding one ends up at zero.
func evaluateWindow(window []domain.Cell, piece, opponent domain.Cell) int {
	own := domain.Count(window, piece)
	empty := domain.Count(window, domain.Empty)
	score := 0

	switch {
	case own == 4:
		score += SCORE_FOUR
	case own == 3 && empty == 1:
		score += SCORE_THREE_OPEN
	case own == 2 && empty == 2:
		score += SCORE_TWO_OPEN
	}

	if domain.Count(window, opponent) == 3 && empty == 1 {
		score += SCORE_OPP_THREE
	}

	return score
}

// EvaluateTerminal scores a finished position for the maximizing side.
func EvaluateTerminal(board *domain.Board, maximizing domain.Cell) int {
	if board.HasWin(maximizing) {
		return WinScore
	}
	if board.HasWin(domain.Opponent(maximizing)) {
		return LossScore
	}
	return DrawScore
}

package bot

import (
	"github.com/iamasit07/connect4-obstacles/internal/domain"
)

// SuggestMove looks a single ply ahead: a column that wins right away for
// friendly, otherwise a column that stops hostile from winning right away.
// Returns NoMove when neither exists.
func SuggestMove(board *domain.Board, friendly, hostile domain.Cell) int {
	validColumns := board.ValidColumns()

	for _, col := range validColumns {
		if completesLine(board, col, friendly) {
			return col
		}
	}

	for _, col := range validColumns {
		if completesLine(board, col, hostile) {
			return col
		}
	}

	return NoMove
}

// WinningColumns lists every column where piece wins with its next drop.
func WinningColumns(board *domain.Board, piece domain.Cell) []int {
	var cols []int
	for _, col := range board.ValidColumns() {
		if completesLine(board, col, piece) {
			cols = append(cols, col)
		}
	}
	return cols
}

func completesLine(board *domain.Board, col int, piece domain.Cell) bool {
	testBoard, _, err := board.SimulateMove(col, piece)
	if err != nil {
		return false
	}
	return testBoard.HasWin(piece)
}

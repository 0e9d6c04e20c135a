package domain

type direction struct {
	dRow, dCol int
}

// horizontal, vertical, diagonal / and diagonal \
var scanDirections = [4]direction{
	{0, 1},
	{1, 0},
	{1, 1},
	{-1, 1},
}

// ScanWindows hands fn every run of length consecutive cells along the four
// scan directions. The slice is reused between calls, fn must not keep it.
// Scanning stops as soon as fn returns false.
func (b *Board) ScanWindows(length int, fn func(window []Cell) bool) {
	if length <= 0 {
		return
	}
	window := make([]Cell, length)
	span := length - 1

	for _, d := range scanDirections {
		for r := 0; r < b.Rows; r++ {
			endRow := r + d.dRow*span
			if endRow < 0 || endRow >= b.Rows {
				continue
			}
			for c := 0; c+d.dCol*span < b.Cols; c++ {
				for i := 0; i < length; i++ {
					window[i] = b.Cells[r+d.dRow*i][c+d.dCol*i]
				}
				if !fn(window) {
					return
				}
			}
		}
	}
}

// HasWin reports whether piece owns WinLength cells in a row anywhere on the
// board. Obstacles and the other side's pieces break a run.
func (b *Board) HasWin(piece Cell) bool {
	if !piece.IsPiece() {
		return false
	}
	won := false
	b.ScanWindows(b.WinLength, func(window []Cell) bool {
		if Count(window, piece) == len(window) {
			won = true
			return false
		}
		return true
	})
	return won
}

// Count returns how many cells of window hold c.
func Count(window []Cell, c Cell) int {
	n := 0
	for _, cell := range window {
		if cell == c {
			n++
		}
	}
	return n
}

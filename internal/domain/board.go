package domain

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// Board is the grid plus its fixed dimensions. Cells[0] is the bottom row,
// pieces fall towards it.
type Board struct {
	Rows      int      `json:"rows"`
	Cols      int      `json:"cols"`
	WinLength int      `json:"win_length"`
	Cells     [][]Cell `json:"cells"`
}

func (cfg BoardConfig) Validate() error {
	if cfg.Rows <= 0 || cfg.Cols <= 0 || cfg.WinLength <= 0 {
		return fmt.Errorf("%w: dimensions must be positive (rows=%d cols=%d win=%d)",
			ErrConfiguration, cfg.Rows, cfg.Cols, cfg.WinLength)
	}
	if cfg.WinLength > min(cfg.Rows, cfg.Cols) {
		return fmt.Errorf("%w: win length %d does not fit a %dx%d board",
			ErrConfiguration, cfg.WinLength, cfg.Rows, cfg.Cols)
	}
	if cfg.ObstacleDensity < 0 || cfg.ObstacleDensity > 1 {
		return fmt.Errorf("%w: obstacle density %.3f out of range", ErrConfiguration, cfg.ObstacleDensity)
	}
	return nil
}

// ObstacleCount is the number of obstacle picks made at creation. Picks may
// land on the same cell, so the realized count can be lower.
func (cfg BoardConfig) ObstacleCount() int {
	return int(math.Floor(float64(cfg.Rows*cfg.Cols) * cfg.ObstacleDensity))
}

// NewBoard allocates an empty grid and scatters obstacles using rng.
func NewBoard(cfg BoardConfig, rng *rand.Rand) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := newEmptyBoard(cfg.Rows, cfg.Cols, cfg.WinLength)
	for i := 0; i < cfg.ObstacleCount(); i++ {
		r, c := rng.Intn(cfg.Rows), rng.Intn(cfg.Cols)
		b.Cells[r][c] = Obstacle
	}
	return b, nil
}

func newEmptyBoard(rows, cols, winLength int) *Board {
	cells := make([][]Cell, rows)
	for i := range cells {
		cells[i] = make([]Cell, cols)
	}
	return &Board{Rows: rows, Cols: cols, WinLength: winLength, Cells: cells}
}

// ParseBoard builds a board from its text form, top row first:
// '.' empty, 'X' Player1, 'O' Player2, '#' obstacle.
func ParseBoard(winLength int, rows ...string) (*Board, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty board", ErrConfiguration)
	}
	b := newEmptyBoard(len(rows), len(rows[0]), winLength)
	for i, line := range rows {
		if len(line) != b.Cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrConfiguration, i, len(line), b.Cols)
		}
		r := b.Rows - 1 - i
		for c := 0; c < b.Cols; c++ {
			switch line[c] {
			case '.':
				b.Cells[r][c] = Empty
			case 'X':
				b.Cells[r][c] = Player1
			case 'O':
				b.Cells[r][c] = Player2
			case '#':
				b.Cells[r][c] = Obstacle
			default:
				return nil, fmt.Errorf("%w: unknown cell %q at row %d", ErrConfiguration, line[c], i)
			}
		}
	}
	return b, nil
}

// String renders the board top row first, same format ParseBoard reads.
func (b *Board) String() string {
	var sb strings.Builder
	for r := b.Rows - 1; r >= 0; r-- {
		for c := 0; c < b.Cols; c++ {
			sb.WriteByte(b.Cells[r][c].Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Board) At(row, col int) Cell {
	return b.Cells[row][col]
}

// IsValidColumn reports whether a piece can still go into col. Obstacles do
// not block the column, they just can't be filled themselves.
func (b *Board) IsValidColumn(col int) bool {
	if col < 0 || col >= b.Cols {
		return false
	}
	for r := b.Rows - 1; r >= 0; r-- {
		if b.Cells[r][col] == Empty {
			return true
		}
	}
	return false
}

// NextOpenRow returns the lowest empty row in col.
func (b *Board) NextOpenRow(col int) (int, error) {
	if col < 0 || col >= b.Cols {
		return -1, fmt.Errorf("%w: column %d out of range", ErrInvalidMove, col)
	}
	for r := 0; r < b.Rows; r++ {
		if b.Cells[r][col] == Empty {
			return r, nil
		}
	}
	return -1, fmt.Errorf("%w: column %d: %w", ErrInvalidMove, col, ErrColumnFull)
}

// Place sets a cell without any legality check.
func (b *Board) Place(row, col int, piece Cell) {
	b.Cells[row][col] = piece
}

// Drop puts piece in the lowest open row of col and returns that row.
func (b *Board) Drop(col int, piece Cell) (int, error) {
	row, err := b.NextOpenRow(col)
	if err != nil {
		return -1, err
	}
	b.Place(row, col, piece)
	return row, nil
}

// ValidColumns lists every playable column in ascending order.
func (b *Board) ValidColumns() []int {
	cols := make([]int, 0, b.Cols)
	for c := 0; c < b.Cols; c++ {
		if b.IsValidColumn(c) {
			cols = append(cols, c)
		}
	}
	return cols
}

func (b *Board) IsFull() bool {
	for c := 0; c < b.Cols; c++ {
		if b.IsValidColumn(c) {
			return false
		}
	}
	return true
}

func (b *Board) IsTerminal() bool {
	return b.HasWin(Player1) || b.HasWin(Player2) || b.IsFull()
}

// this creates a deep copy of the board
func (b *Board) Copy() *Board {
	cells := make([][]Cell, len(b.Cells))
	for i := range b.Cells {
		cells[i] = make([]Cell, len(b.Cells[i]))
		copy(cells[i], b.Cells[i])
	}
	return &Board{Rows: b.Rows, Cols: b.Cols, WinLength: b.WinLength, Cells: cells}
}

// SimulateMove drops piece on a copy and leaves b untouched.
func (b *Board) SimulateMove(col int, piece Cell) (*Board, int, error) {
	next := b.Copy()
	row, err := next.Drop(col, piece)
	if err != nil {
		return nil, -1, err
	}
	return next, row, nil
}

// Ints flattens cell values for storage.
func (b *Board) Ints() [][]int {
	out := make([][]int, len(b.Cells))
	for i := range b.Cells {
		out[i] = make([]int, len(b.Cells[i]))
		for j := range b.Cells[i] {
			out[i][j] = int(b.Cells[i][j])
		}
	}
	return out
}

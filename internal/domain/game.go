package domain

import "math/rand"

type Game struct {
	Board         *Board     `json:"board"`
	CurrentPlayer Cell       `json:"current_player"`
	Status        GameStatus `json:"status"`
	Winner        Cell       `json:"winner"`
	MoveCount     int        `json:"move_count"`
}

// NewGame creates a game on a fresh board. first is the side to move.
func NewGame(cfg BoardConfig, first Cell, rng *rand.Rand) (*Game, error) {
	if !first.IsPiece() {
		return nil, ErrInvalidMove
	}
	board, err := NewBoard(cfg, rng)
	if err != nil {
		return nil, err
	}
	g := &Game{
		Board:         board,
		CurrentPlayer: first,
		Status:        StatusActive,
		Winner:        Empty,
	}
	// obstacles can in theory leave nothing to play
	if board.IsFull() {
		g.Status = StatusDraw
	}
	return g, nil
}

func (g *Game) MakeMove(player Cell, column int) (int, error) {
	if g.Status != StatusActive {
		return -1, ErrGameFinished
	}

	if player != g.CurrentPlayer {
		return -1, ErrNotYourTurn
	}

	if !g.Board.IsValidColumn(column) {
		return -1, ErrInvalidMove
	}

	row, err := g.Board.Drop(column, player)
	if err != nil {
		return -1, err
	}

	g.MoveCount++

	if g.Board.HasWin(player) {
		g.Status = StatusWon
		g.Winner = player
		return row, nil
	}

	if g.Board.IsFull() {
		g.Status = StatusDraw
		return row, nil
	}

	g.CurrentPlayer = Opponent(g.CurrentPlayer)
	return row, nil
}

// PassTurn hands the move to the other side without placing anything, used
// when a side runs out of time.
func (g *Game) PassTurn() {
	if g.Status != StatusActive {
		return
	}
	g.CurrentPlayer = Opponent(g.CurrentPlayer)
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}

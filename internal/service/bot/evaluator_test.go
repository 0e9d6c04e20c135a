package bot

import (
	"testing"

	"github.com/iamasit07/connect4-obstacles/internal/domain"
)

const (
	X    = domain.Player1
	O    = domain.Player2
	E    = domain.Empty
	Wall = domain.Obstacle
)

func parse(t *testing.T, winLength int, rows ...string) *domain.Board {
	t.Helper()
	b, err := domain.ParseBoard(winLength, rows...)
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}
	return b
}

func emptyBoard(t *testing.T) *domain.Board {
	t.Helper()
	return parse(t, 4,
		".......",
		".......",
		".......",
		".......",
		".......",
		".......",
	)
}

func TestEvaluateWindow(t *testing.T) {
	cases := []struct {
		name   string
		window []domain.Cell
		want   int
	}{
		{"four own", []domain.Cell{X, X, X, X}, SCORE_FOUR},
		{"open three", []domain.Cell{X, E, X, X}, SCORE_THREE_OPEN},
		{"open two", []domain.Cell{E, X, X, E}, SCORE_TWO_OPEN},
		{"single", []domain.Cell{E, X, E, E}, 0},
		{"opponent three", []domain.Cell{O, O, E, O}, SCORE_OPP_THREE},
		{"opponent four", []domain.Cell{O, O, O, O}, 0},
		{"mixed", []domain.Cell{X, O, E, E}, 0},
		{"own three with obstacle", []domain.Cell{X, X, X, Wall}, 0},
		{"opponent three with obstacle", []domain.Cell{O, Wall, O, O}, 0},
		{"two with obstacle", []domain.Cell{X, X, E, Wall}, 0},
	}
	for _, tc := range cases {
		if got := evaluateWindow(tc.window, X, O); got != tc.want {
			t.Fatalf("%s: evaluateWindow = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestScorePositionEmptyBoard(t *testing.T) {
	if got := ScorePosition(emptyBoard(t), X); got != 0 {
		t.Fatalf("empty board scores %d, want 0", got)
	}
}

func TestScorePositionCenterBonus(t *testing.T) {
	b := emptyBoard(t)
	b.Place(0, 3, X)
	b.Place(1, 3, X)
	// only the bottom vertical window holds both pieces
	want := 2*SCORE_CENTER + SCORE_TWO_OPEN
	if got := ScorePosition(b, X); got != want {
		t.Fatalf("ScorePosition = %d, want %d\n%s", got, want, b)
	}
	if got := ScorePosition(b, O); got != 0 {
		t.Fatalf("O gets nothing from X's pair, got %d", got)
	}
}

func TestScorePositionSingleRow(t *testing.T) {
	b := parse(t, 4, "..XX...")
	// three windows with two X and two empties, center column is X
	if got := ScorePosition(b, X); got != 3*SCORE_TWO_OPEN+SCORE_CENTER {
		t.Fatalf("ScorePosition(X) = %d", got)
	}

	b = parse(t, 4, "XXX....")
	if got := ScorePosition(b, X); got != SCORE_THREE_OPEN+SCORE_TWO_OPEN {
		t.Fatalf("ScorePosition(X) = %d, want %d", got, SCORE_THREE_OPEN+SCORE_TWO_OPEN)
	}
	if got := ScorePosition(b, O); got != SCORE_OPP_THREE {
		t.Fatalf("ScorePosition(O) = %d, want %d", got, SCORE_OPP_THREE)
	}
}

func TestScorePositionObstacleNeutralizesWindows(t *testing.T) {
	b := parse(t, 4, "XX#X.")
	if got := ScorePosition(b, X); got != 0 {
		t.Fatalf("window with an obstacle must score 0, got %d", got)
	}
}

func TestScorePositionWindowIgnoresWinLength(t *testing.T) {
	b := parse(t, 5, "XXXX......")
	if b.HasWin(X) {
		t.Fatalf("four is not a win when five are needed")
	}
	want := SCORE_FOUR + SCORE_THREE_OPEN + SCORE_TWO_OPEN
	if got := ScorePosition(b, X); got != want {
		t.Fatalf("ScorePosition = %d, want %d", got, want)
	}
}

func TestEvaluateTerminal(t *testing.T) {
	won := parse(t, 4,
		".......",
		".......",
		".......",
		".......",
		"OOO....",
		"XXXX...",
	)
	if got := EvaluateTerminal(won, X); got != WinScore {
		t.Fatalf("winner's view = %d, want WinScore", got)
	}
	if got := EvaluateTerminal(won, O); got != LossScore {
		t.Fatalf("loser's view = %d, want LossScore", got)
	}

	drawn := parse(t, 4,
		"XXOOXXO",
		"OOXXOOX",
		"XXOOXXO",
		"OOXXOOX",
		"XXOOXXO",
		"OOXXOOX",
	)
	if got := EvaluateTerminal(drawn, X); got != DrawScore {
		t.Fatalf("draw = %d, want 0", got)
	}
}

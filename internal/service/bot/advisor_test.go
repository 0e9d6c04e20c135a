package bot

import (
	"reflect"
	"testing"
)

func TestSuggestMoveBlocksBothEndsOpen(t *testing.T) {
	b := parse(t, 4,
		".......",
		".......",
		".......",
		".......",
		".......",
		"..OOO..",
	)
	col := SuggestMove(b, X, O)
	if col != 1 && col != 5 {
		t.Fatalf("expected column 1 or 5, got %d", col)
	}
}

func TestSuggestMoveFindsWin(t *testing.T) {
	b := parse(t, 4,
		".......",
		".......",
		".......",
		".......",
		"OO.O...",
		"XX.X...",
	)
	if col := SuggestMove(b, X, O); col != 2 {
		t.Fatalf("expected winning column 2, got %d", col)
	}
}

func TestSuggestMovePrefersWinOverBlock(t *testing.T) {
	b := parse(t, 4,
		".......",
		".......",
		"O......",
		"O.....X",
		"O.....X",
		"X.....X",
	)
	if col := SuggestMove(b, X, O); col != 6 {
		t.Fatalf("winning column 6 beats blocking column 0, got %d", col)
	}
	if col := SuggestMove(b, O, X); col != 0 {
		t.Fatalf("O wins at column 0, got %d", col)
	}
}

func TestSuggestMoveRespectsObstacles(t *testing.T) {
	b := parse(t, 4,
		".......",
		".......",
		".......",
		".......",
		".......",
		"XX#X...",
	)
	if col := SuggestMove(b, X, O); col != NoMove {
		t.Fatalf("the obstacle lifts column 2 out of the row, got %d", col)
	}
}

func TestSuggestMoveNothingToSay(t *testing.T) {
	if col := SuggestMove(emptyBoard(t), X, O); col != NoMove {
		t.Fatalf("expected NoMove on an empty board, got %d", col)
	}
}

func TestWinningColumns(t *testing.T) {
	b := parse(t, 4,
		".......",
		".......",
		".......",
		".......",
		".......",
		"..XXX..",
	)
	if got := WinningColumns(b, X); !reflect.DeepEqual(got, []int{1, 5}) {
		t.Fatalf("WinningColumns = %v, want [1 5]", got)
	}
	if got := WinningColumns(b, O); len(got) != 0 {
		t.Fatalf("O has no winning columns, got %v", got)
	}
}

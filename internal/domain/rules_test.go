package domain

import "testing"

func TestHasWinAllOrientations(t *testing.T) {
	cases := map[string][]string{
		"horizontal": {
			".......",
			".......",
			".......",
			".......",
			".......",
			"..XXXX.",
		},
		"vertical": {
			".......",
			".......",
			"X......",
			"X......",
			"X......",
			"XO.....",
		},
		"rising diagonal": {
			".......",
			".......",
			"......X",
			".....XO",
			"....XOO",
			"...XOOX",
		},
		"falling diagonal": {
			".......",
			".......",
			"X......",
			"OX.....",
			"OOX....",
			"XOOX...",
		},
	}
	for name, rows := range cases {
		b := mustParse(t, 4, rows...)
		if !b.HasWin(Player1) {
			t.Fatalf("%s: expected a win for X\n%s", name, b)
		}
		if b.HasWin(Player2) {
			t.Fatalf("%s: O must not win\n%s", name, b)
		}
		if !b.IsTerminal() {
			t.Fatalf("%s: a won board is terminal", name)
		}
	}
}

func TestHasWinBrokenRuns(t *testing.T) {
	cases := map[string][]string{
		"obstacle breaks row": {
			"......",
			"XX#XX.",
		},
		"opponent breaks row": {
			"......",
			"XXOXX.",
		},
		"three only": {
			"......",
			".XXX..",
		},
	}
	for name, rows := range cases {
		b := mustParse(t, 4, rows...)
		if b.HasWin(Player1) {
			t.Fatalf("%s: unexpected win\n%s", name, b)
		}
	}
}

func TestHasWinUsesConfiguredLength(t *testing.T) {
	rows := []string{
		"..........",
		".XXXX.....",
	}
	if !mustParse(t, 4, rows...).HasWin(Player1) {
		t.Fatalf("four in a row wins with win length 4")
	}
	if mustParse(t, 5, rows...).HasWin(Player1) {
		t.Fatalf("four in a row must not win with win length 5")
	}
	if !mustParse(t, 5, "..........", ".XXXXX....").HasWin(Player1) {
		t.Fatalf("five in a row wins with win length 5")
	}
}

func TestHasWinIgnoresNonPieces(t *testing.T) {
	b := mustParse(t, 2, "##", "..")
	if b.HasWin(Obstacle) || b.HasWin(Empty) {
		t.Fatalf("only player pieces can win")
	}
}

func TestReadOnlyQueriesAreIdempotent(t *testing.T) {
	b := mustParse(t, 4,
		".......",
		"...#...",
		"..OX...",
		".XOO#..",
		"XOXOX..",
		"OXOXO#.",
	)
	before := b.String()
	for i := 0; i < 3; i++ {
		if b.HasWin(Player1) || b.HasWin(Player2) {
			t.Fatalf("unexpected winner")
		}
		if len(b.ValidColumns()) != 7 {
			t.Fatalf("ValidColumns changed: %v", b.ValidColumns())
		}
	}
	if b.String() != before {
		t.Fatalf("queries mutated the board")
	}
}

func TestScanWindowsCountsEveryStart(t *testing.T) {
	b := mustParse(t, 4,
		".......",
		".......",
		".......",
		".......",
		".......",
		".......",
	)
	n := 0
	b.ScanWindows(4, func(window []Cell) bool {
		if len(window) != 4 {
			t.Fatalf("window length %d", len(window))
		}
		n++
		return true
	})
	// 24 horizontal, 21 vertical, 12 per diagonal direction
	if n != 69 {
		t.Fatalf("visited %d windows, want 69", n)
	}

	stopped := 0
	b.ScanWindows(4, func([]Cell) bool {
		stopped++
		return stopped < 5
	})
	if stopped != 5 {
		t.Fatalf("scan did not stop early, visited %d", stopped)
	}
}

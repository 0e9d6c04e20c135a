package postgres

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/iamasit07/connect4-obstacles/internal/domain"
	"github.com/iamasit07/connect4-obstacles/pkg/uid"
)

func TestSchemaIsEmbedded(t *testing.T) {
	if !strings.Contains(schema, "CREATE TABLE IF NOT EXISTS game_results") {
		t.Fatalf("embedded schema is missing the results table")
	}
}

// Needs a live database; set TEST_DATABASE_URL to run it.
func TestSaveAndListResults(t *testing.T) {
	connStr := os.Getenv("TEST_DATABASE_URL")
	if connStr == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	db, err := Open(ctx, connStr, 2, 2, 1)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	repo := NewGameRepo(db)
	start := time.Now().UTC().Truncate(time.Second)
	result := domain.GameResult{
		GameID:          uid.GenerateGameID(),
		Preset:          "small",
		Rows:            2,
		Cols:            2,
		WinLength:       2,
		Winner:          domain.WinnerBot,
		Reason:          "connect_four",
		BotMoves:        2,
		PlayerMoves:     1,
		BotOptimalMoves: 1,
		DurationSeconds: 3,
		CreatedAt:       start,
		FinishedAt:      start.Add(3 * time.Second),
		Board:           [][]int{{2, 1}, {2, 0}},
	}
	if err := repo.SaveResult(ctx, result); err != nil {
		t.Fatalf("SaveResult: %v", err)
	}
	result.Winner = domain.WinnerTie
	if err := repo.SaveResult(ctx, result); err != nil {
		t.Fatalf("SaveResult upsert: %v", err)
	}
	defer db.Exec(`DELETE FROM game_results WHERE game_id = $1`, result.GameID)

	recent, err := repo.RecentResults(ctx, 50)
	if err != nil {
		t.Fatalf("RecentResults: %v", err)
	}
	for _, r := range recent {
		if r.GameID != result.GameID {
			continue
		}
		if r.Winner != domain.WinnerTie || r.BotOptimalMoves != 1 || len(r.Board) != 2 {
			t.Fatalf("stored result differs: %+v", r)
		}
		return
	}
	t.Fatalf("saved game %s not listed", result.GameID)
}

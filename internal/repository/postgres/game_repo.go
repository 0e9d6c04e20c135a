package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/iamasit07/connect4-obstacles/internal/domain"
)

type GameRepo struct {
	DB *sql.DB
}

func NewGameRepo(db *sql.DB) *GameRepo {
	return &GameRepo{DB: db}
}

// SaveResult stores a finished game. Saving the same game twice overwrites
// the earlier row.
func (r *GameRepo) SaveResult(ctx context.Context, result domain.GameResult) error {
	boardJSON, err := json.Marshal(result.Board)
	if err != nil {
		return fmt.Errorf("failed to marshal board state: %w", err)
	}

	query := `
	INSERT INTO game_results (game_id, preset, rows, cols, win_length, winner, reason, player_moves, bot_moves, bot_optimal_moves, bot_blocks, duration_seconds, created_at, finished_at, board_state)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	ON CONFLICT (game_id) DO UPDATE SET
		winner = EXCLUDED.winner,
		reason = EXCLUDED.reason,
		player_moves = EXCLUDED.player_moves,
		bot_moves = EXCLUDED.bot_moves,
		bot_optimal_moves = EXCLUDED.bot_optimal_moves,
		bot_blocks = EXCLUDED.bot_blocks,
		duration_seconds = EXCLUDED.duration_seconds,
		finished_at = EXCLUDED.finished_at,
		board_state = EXCLUDED.board_state;
	`

	_, err = r.DB.ExecContext(ctx, query,
		result.GameID, result.Preset, result.Rows, result.Cols, result.WinLength,
		result.Winner, result.Reason,
		result.PlayerMoves, result.BotMoves, result.BotOptimalMoves, result.BotBlocks,
		result.DurationSeconds, result.CreatedAt, result.FinishedAt, boardJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert game result: %w", err)
	}
	return nil
}

// RecentResults returns the latest finished games, newest first.
func (r *GameRepo) RecentResults(ctx context.Context, limit int) ([]domain.GameResult, error) {
	query := `
	SELECT game_id, preset, rows, cols, win_length, winner, reason,
	       player_moves, bot_moves, bot_optimal_moves, bot_blocks,
	       duration_seconds, created_at, finished_at, board_state
	FROM game_results
	ORDER BY finished_at DESC
	LIMIT $1;
	`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query game results: %w", err)
	}
	defer rows.Close()

	var results []domain.GameResult
	for rows.Next() {
		var result domain.GameResult
		var boardJSON []byte
		err := rows.Scan(
			&result.GameID,
			&result.Preset,
			&result.Rows,
			&result.Cols,
			&result.WinLength,
			&result.Winner,
			&result.Reason,
			&result.PlayerMoves,
			&result.BotMoves,
			&result.BotOptimalMoves,
			&result.BotBlocks,
			&result.DurationSeconds,
			&result.CreatedAt,
			&result.FinishedAt,
			&boardJSON,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game result: %w", err)
		}
		if boardJSON != nil {
			if err := json.Unmarshal(boardJSON, &result.Board); err != nil {
				return nil, fmt.Errorf("failed to unmarshal board state: %w", err)
			}
		}
		results = append(results, result)
	}
	return results, rows.Err()
}

// WinTally counts finished games per winner label.
func (r *GameRepo) WinTally(ctx context.Context) (map[string]int, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT winner, COUNT(*) FROM game_results GROUP BY winner;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query win tally: %w", err)
	}
	defer rows.Close()

	tally := map[string]int{}
	for rows.Next() {
		var winner string
		var n int
		if err := rows.Scan(&winner, &n); err != nil {
			return nil, fmt.Errorf("failed to scan win tally: %w", err)
		}
		tally[winner] = n
	}
	return tally, rows.Err()
}

// PruneResults deletes games that finished more than days ago and returns how
// many rows went.
func (r *GameRepo) PruneResults(ctx context.Context, days int) (int64, error) {
	query := `DELETE FROM game_results WHERE finished_at < NOW() - make_interval(days => $1);`
	res, err := r.DB.ExecContext(ctx, query, days)
	if err != nil {
		return 0, fmt.Errorf("failed to prune game results: %w", err)
	}
	return res.RowsAffected()
}

package scorefile

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/iamasit07/connect4-obstacles/internal/domain"
)

const separator = "-------------------------------------"

// Recorder appends one block per finished game to a plain text score file.
type Recorder struct {
	path string
	mu   sync.Mutex
}

func NewRecorder(path string) *Recorder {
	return &Recorder{path: path}
}

// StatLines are the post-game statistics in display order.
func StatLines(result domain.GameResult) []string {
	return []string{
		fmt.Sprintf("Winner: %s", result.Winner),
		fmt.Sprintf("Player Moves: %d", result.PlayerMoves),
		fmt.Sprintf("AI Moves: %d", result.BotMoves),
		fmt.Sprintf("AI Optimal Moves: %d", result.BotOptimalMoves),
		fmt.Sprintf("AI Blocking Moves: %d", result.BotBlocks),
		fmt.Sprintf("Game Duration: %d sec", result.DurationSeconds),
	}
}

// Format renders the block written for a single game.
func Format(result domain.GameResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "       Board Size:%dx%d\n", result.Rows, result.Cols)
	for _, line := range StatLines(result) {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	sb.WriteString(separator)
	sb.WriteByte('\n')
	return sb.String()
}

func (r *Recorder) SaveResult(_ context.Context, result domain.GameResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open score file: %w", err)
	}
	if _, err := io.WriteString(f, Format(result)); err != nil {
		f.Close()
		return fmt.Errorf("write score file: %w", err)
	}
	return f.Close()
}

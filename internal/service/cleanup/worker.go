package cleanup

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

type ResultPruner interface {
	PruneResults(ctx context.Context, days int) (int64, error)
}

// Worker periodically drops stored results past the retention window.
type Worker struct {
	Pruner        ResultPruner
	RetentionDays int
	Interval      time.Duration
}

func NewWorker(pruner ResultPruner, retentionDays int, interval time.Duration) *Worker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Worker{Pruner: pruner, RetentionDays: retentionDays, Interval: interval}
}

// Run prunes once right away and then on every tick until ctx is done.
// A non-positive retention disables the worker.
func (w *Worker) Run(ctx context.Context) {
	if w.RetentionDays <= 0 {
		return
	}
	log.Info().Str("component", "cleanup").Int("retention_days", w.RetentionDays).Msg("background worker started")

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		w.runCleanup(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (w *Worker) runCleanup(ctx context.Context) {
	deleted, err := w.Pruner.PruneResults(ctx, w.RetentionDays)
	if err != nil {
		log.Error().Err(err).Str("component", "cleanup").Msg("error pruning game results")
		return
	}
	if deleted > 0 {
		log.Info().Str("component", "cleanup").Int64("deleted", deleted).Msg("removed expired game results")
	}
}

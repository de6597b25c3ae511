package game

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mcoot/scrabblegame-go/internal/dependencies/clock"
	"github.com/mcoot/scrabblegame-go/internal/model"
)

// Runner feeds ticks from a timing source into a scheduler
type Runner struct {
	scheduler *Scheduler
	clock     clock.Clock
	logger    *slog.Logger
}

// NewRunner creates a runner for a started scheduler
func NewRunner(scheduler *Scheduler, clock clock.Clock, logger *slog.Logger) *Runner {
	return &Runner{
		scheduler: scheduler,
		clock:     clock,
		logger:    logger.With(slog.String("component", "runner")),
	}
}

// Run ticks the scheduler once per value received on ticks. It returns nil
// when the game ends, the scheduler is stopped or ticks is closed, and the
// context error on cancellation.
func (r *Runner) Run(ctx context.Context, ticks <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-r.scheduler.Done():
			return nil
		case _, ok := <-ticks:
			if !ok {
				return nil
			}
			if err := r.scheduler.Tick(ctx); err != nil {
				if errors.Is(err, model.ErrGameOver) || errors.Is(err, model.ErrGameStopped) {
					return nil
				}
				r.logger.Error("tick failed", slog.String("error", err.Error()))
				return err
			}
		}
	}
}

// RunEvery runs the scheduler off a ticker firing every interval. The
// ticker is stopped when Run returns.
func (r *Runner) RunEvery(ctx context.Context, interval time.Duration) error {
	ticker := r.clock.NewTicker(interval)
	defer ticker.Stop()
	return r.Run(ctx, ticker.C())
}

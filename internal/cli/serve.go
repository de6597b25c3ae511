package cli

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mcoot/scrabblegame-go/internal/api"
	"github.com/mcoot/scrabblegame-go/internal/services/game"
)

func newServeCmd() *cobra.Command {
	var (
		port     int
		interval time.Duration
		players  []string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a bot-vs-bot game over HTTP",
		Long: `Start a game and serve it under /api/v1. With a positive --interval the game
advances one turn per interval; with --interval 0 turns are only played through
POST /api/v1/game/tick. Stops on SIGINT or SIGTERM.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			level := slog.LevelInfo
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			app, err := cfg.NewApp(ctx, logger)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			g, err := app.GameController.NewGame(ctx, game.GameConfig{
				RulesName:   cfg.Source,
				LexiconName: cfg.Source,
				Players:     players,
			})
			if err != nil {
				return err
			}
			scheduler := app.GameController.Schedule(g)
			if err := scheduler.Start(); err != nil {
				return err
			}
			defer scheduler.Stop()

			if interval > 0 {
				runner := app.NewRunner(scheduler)
				go func() {
					if err := runner.RunEvery(ctx, interval); err != nil && !errors.Is(err, context.Canceled) {
						logger.Error("runner stopped", slog.String("error", err.Error()))
					}
				}()
			}

			serverConfig := api.DefaultServerConfig()
			serverConfig.Port = port
			server := api.NewServer(api.NewRouter(api.RouterConfig{
				Logger:    logger,
				Scheduler: scheduler,
			}), serverConfig, logger)

			return server.Run(ctx)
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "Port to listen on")
	cmd.Flags().DurationVar(&interval, "interval", 2*time.Second, "Time between turns, 0 for manual ticks")
	cmd.Flags().StringSliceVar(&players, "players", []string{"alice", "bob"}, "Comma-separated player names in turn order")
	return cmd
}

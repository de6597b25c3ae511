package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/scrabblegame-go/internal/api/response"
	"github.com/mcoot/scrabblegame-go/internal/services/game"
)

// maxPlayTicks bounds a local game in case the scheduler never finishes
const maxPlayTicks = 10000

func newPlayCmd() *cobra.Command {
	var players []string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a bot-vs-bot game to completion",
		Long: `Play a full game between bot players. Each turn the current player plays its
highest-scoring move, chosen at random among ties, or passes when it has none.

The same --seed and word list always replay the same game.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())

			app, err := cfg.NewApp(ctx, cfg.Logger(cmd.ErrOrStderr()))
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

			seen := 0
			for j := 0; j < maxPlayTicks; j++ {
				if err := scheduler.Tick(ctx); err != nil {
					return err
				}
				if !out.IsJSON() {
					events := response.EventsFromModel(scheduler.Events())
					for _, e := range events[seen:] {
						out.Print(e)
					}
					seen = len(events)
				}
				if g.IsOver() {
					break
				}
			}
			if !g.IsOver() {
				return fmt.Errorf("game did not finish within %d turns", maxPlayTicks)
			}

			if !out.IsJSON() {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			out.Print(PlayResult{
				Seed:  app.Seed,
				Game:  response.GameFromSnapshot(scheduler.Snapshot()),
				Moves: response.MovesFromModel(scheduler.Moves()),
			})
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&players, "players", []string{"alice", "bob"}, "Comma-separated player names in turn order")
	return cmd
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/scrabblegame-go/internal/api/request"
	"github.com/mcoot/scrabblegame-go/internal/api/response"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Inspect and drive a served game",
	}

	cmd.AddCommand(newGameStatusCmd())
	cmd.AddCommand(newGameMovesCmd())
	cmd.AddCommand(newGameEventsCmd())
	cmd.AddCommand(newGameTickCmd())
	cmd.AddCommand(newGameActionCmd("pause", "Pause the game"))
	cmd.AddCommand(newGameActionCmd("resume", "Resume a paused game"))
	cmd.AddCommand(newGameActionCmd("stop", "Stop the game"))

	return cmd
}

func newGameStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Get current game state",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Game
			if err := client.Get("/api/v1/game", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr()).Print(result)
			return nil
		},
	}
}

func newGameMovesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "moves",
		Short: "List the moves played so far",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []response.Move
			if err := client.Get("/api/v1/game/moves", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr()).Print(result)
			return nil
		},
	}
}

func newGameEventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "Show the game's event log",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []response.Event
			if err := client.Get("/api/v1/game/events", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr()).Print(result)
			return nil
		},
	}
}

func newGameTickCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "tick",
		Short: "Play one or more turns",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Tick
			if err := client.Post("/api/v1/game/tick", request.TickRequest{Count: count}, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr()).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of turns to play")
	return cmd
}

func newGameActionCmd(action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Game
			if err := client.Post("/api/v1/game/"+action, nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr()).Print(result)
			return nil
		},
	}
}

package cli

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/scrabblegame-go/internal/api/response"
	"github.com/mcoot/scrabblegame-go/internal/model"
	"github.com/mcoot/scrabblegame-go/internal/services/movefinder"
	"github.com/mcoot/scrabblegame-go/internal/services/rules"
)

func newMovesCmd() *cobra.Command {
	var (
		rack  string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "moves",
		Short: "List the opening moves for a rack",
		Long: `List every legal opening move for a rack on an empty board, highest score
first. Use '?' for a blank tile.`,
		Example: `  scrabble moves --rack STONEQ?
  scrabble moves --rack AEINRST --limit 5 -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := cfg.NewApp(ctx, cfg.Logger(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			r, err := app.RulesService.Get(ctx, cfg.Source)
			if err != nil {
				return err
			}
			letters := strings.ToUpper(rack)
			if n := len([]rune(letters)); n == 0 || n > r.RackSize {
				return fmt.Errorf("rack must hold 1 to %d tiles, got %d", r.RackSize, n)
			}
			lex, err := app.LexiconService.Get(ctx, cfg.Source, rules.LetterTextMap(r))
			if err != nil {
				return err
			}
			b, err := app.BoardService.Build(r)
			if err != nil {
				return err
			}
			tiles, err := app.TileService.Take(app.TileService.Build(r), letters)
			if err != nil {
				return err
			}

			moves := app.MoveFinder.FindMoves(movefinder.Query{
				Player:      "rack",
				IsFirstMove: true,
				Board:       b,
				Lexicon:     lex,
				Rack:        tiles,
				RackSize:    r.RackSize,
			})
			slices.SortStableFunc(moves, func(x, y *model.Move) int {
				return cmp.Compare(y.TotalScore, x.TotalScore)
			})

			total := len(moves)
			if limit > 0 && len(moves) > limit {
				moves = moves[:limit]
			}
			NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr()).Print(MoveList{
				Rack:  letters,
				Total: total,
				Moves: response.MovesFromModel(moves),
			})
			return nil
		},
	}

	cmd.Flags().StringVar(&rack, "rack", "", "Rack letters, '?' for a blank")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum moves to list, 0 for all")
	_ = cmd.MarkFlagRequired("rack")
	return cmd
}

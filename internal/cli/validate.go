package cli

import (
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/mcoot/scrabblegame-go/internal/services/lexicon"
	"github.com/mcoot/scrabblegame-go/internal/services/rules"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [rules-file]",
		Short: "Check a rules file",
		Long: `Parse and validate a rules file, defaulting to --rules. When --lexicon is set
the word list is built with the rules' letter display text as well.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfg.RulesPath
			if len(args) == 1 {
				path = args[0]
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			r, err := rules.Parse(data)
			if err != nil {
				return err
			}

			premium := lo.SumBy(r.SquareMultipliers, func(row []string) int {
				return lo.CountBy(row, func(code string) bool { return code != "" })
			})
			result := ValidateResult{
				Path:           path,
				Rows:           r.NumberOfRows,
				Cols:           r.NumberOfCols,
				StartRow:       r.StartingSquare.Row,
				StartCol:       r.StartingSquare.Col,
				RackSize:       r.RackSize,
				Tiles:          r.TileCount(),
				Letters:        len(r.Letters),
				PremiumSquares: premium,
			}

			if cfg.LexiconPath != "" {
				text, err := os.ReadFile(cfg.LexiconPath)
				if err != nil {
					return err
				}
				result.LexiconWords = lexicon.Build(string(text), rules.LetterTextMap(r)).WordCount()
			}

			NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr()).Print(result)
			return nil
		},
	}
}

package board

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/scrabblegame-go/internal/model"
	"github.com/mcoot/scrabblegame-go/internal/services/rules"
)

// Service provides board operations
type Service struct {
	logger *slog.Logger
}

// New creates a new BoardService
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger.With(slog.String("component", "board-service")),
	}
}

// Build allocates a board from rules: linked squares, multipliers parsed
// from the per-cell codes and the starting square flagged.
func (s *Service) Build(r *model.Rules) (*model.Board, error) {
	if r.NumberOfRows <= 0 || r.NumberOfCols <= 0 {
		return nil, fmt.Errorf("%w: board must have positive dimensions", model.ErrInvalidRules)
	}

	b := model.NewBoard(r.NumberOfRows, r.NumberOfCols)
	for i := range b.Squares {
		sq := &b.Squares[i]
		m, err := rules.ParseMultiplier(r.MultiplierCode(sq.Row, sq.Col))
		if err != nil {
			return nil, fmt.Errorf("square (%d,%d): %w", sq.Row, sq.Col, err)
		}
		sq.Multiplier = m
		sq.IsStartingSquare = sq.Position == r.StartingSquare
	}
	return b, nil
}

// PlaceMove writes the primary word's tiles onto their squares, fixing the
// letter of any blank tile first. The move is assumed to be legal.
func (s *Service) PlaceMove(move *model.Move, lex *model.Lexicon) {
	word := move.PrimaryWord
	for i, tile := range word.Tiles {
		if tile.IsBlank {
			letter := word.Letter(i)
			tile.Assign(letter, lex.TextFor(letter))
		}
		word.Squares[i].Tile = tile
	}

	s.logger.Debug("move placed",
		slog.String("player", move.Player),
		slog.String("word", word.Word.Text),
		slog.Int("score", move.TotalScore),
	)
}

// Interface for dependency injection
type ServiceInterface interface {
	Build(r *model.Rules) (*model.Board, error)
	PlaceMove(move *model.Move, lex *model.Lexicon)
}

var _ ServiceInterface = (*Service)(nil)

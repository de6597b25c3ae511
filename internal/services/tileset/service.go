package tileset

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/mcoot/scrabblegame-go/internal/dependencies/random"
	"github.com/mcoot/scrabblegame-go/internal/model"
)

// Service builds tile bags and draws from them
type Service struct {
	random random.Random
	logger *slog.Logger
}

// New creates a new tileset Service
func New(rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		random: rnd,
		logger: logger.With(slog.String("component", "tileset-service")),
	}
}

// Build creates the full tile multiset described by the rules' inventory.
// The pile starts as a copy of the full set.
func (s *Service) Build(r *model.Rules) *model.TileBag {
	all := make([]*model.Tile, 0, r.TileCount())
	for _, letter := range r.Letters {
		for i := 0; i < letter.Count; i++ {
			tile := &model.Tile{
				ID:      len(all),
				Value:   letter.Value,
				IsBlank: letter.IsBlank(),
			}
			if !tile.IsBlank {
				tile.Key = []rune(letter.Key)[0]
				tile.Text = letter.Key
				if letter.Text != "" {
					tile.Text = letter.Text
				}
			}
			all = append(all, tile)
		}
	}

	return &model.TileBag{
		All:  all,
		Pile: slices.Clone(all),
	}
}

// Draw removes up to count random tiles from the pile. Fewer are returned
// when the pile runs low; an empty pile yields none.
func (s *Service) Draw(bag *model.TileBag, count int) []*model.Tile {
	n := min(count, len(bag.Pile))
	if n <= 0 {
		return nil
	}

	drawn := make([]*model.Tile, 0, n)
	for j := 0; j < n; j++ {
		i := s.random.Intn(len(bag.Pile))
		drawn = append(drawn, bag.Pile[i])
		bag.Pile = slices.Delete(bag.Pile, i, i+1)
	}

	s.logger.Debug("tiles drawn",
		slog.Int("requested", count),
		slog.Int("drawn", n),
		slog.Int("remaining", len(bag.Pile)),
	)
	return drawn
}

// Take removes the named tiles from the pile, for setting up a rack by hand.
// Each rune of letters is a letter key, or '?' for a blank. Nothing is
// removed if any letter is unavailable.
func (s *Service) Take(bag *model.TileBag, letters string) ([]*model.Tile, error) {
	pile := slices.Clone(bag.Pile)
	taken := make([]*model.Tile, 0, len(letters))
	for _, letter := range letters {
		i := slices.IndexFunc(pile, func(t *model.Tile) bool {
			if letter == '?' {
				return t.IsBlank
			}
			return !t.IsBlank && t.Key == letter
		})
		if i < 0 {
			return nil, fmt.Errorf("%w: %q", model.ErrTileNotInBag, letter)
		}
		taken = append(taken, pile[i])
		pile = slices.Delete(pile, i, i+1)
	}
	bag.Pile = pile
	return taken, nil
}

package scoring

import (
	"log/slog"

	"github.com/samber/lo"

	"github.com/mcoot/scrabblegame-go/internal/model"
)

// BingoBonus is awarded when a move uses a full rack
const BingoBonus = 50

// WordScore scores one word. Only squares that are still empty (i.e. filled
// by the move being scored) apply their multipliers: letter multipliers
// scale that tile's value, word multipliers multiply the summed total.
func WordScore(tiles []*model.Tile, squares []*model.Square) int {
	sum := 0
	wordMultiplier := 1
	for i, tile := range tiles {
		sq := squares[i]
		if sq.IsOccupied() {
			sum += tile.Value
			continue
		}
		sum += tile.Value * sq.LetterMultiplier()
		wordMultiplier *= sq.WordMultiplier()
	}
	return sum * wordMultiplier
}

// Bingo returns the bonus for placing tilesPlaced tiles with the given rack size
func Bingo(tilesPlaced, rackSize int) int {
	if tilesPlaced == rackSize {
		return BingoBonus
	}
	return 0
}

// MoveTotal sums the primary and connected word scores
func MoveTotal(m *model.Move) int {
	return m.PrimaryWord.Score + lo.SumBy(m.ConnectedWords, func(w model.MoveWord) int {
		return w.Score
	})
}

// Winners returns every player sharing the highest score, in turn order
func Winners(players []*model.Player) []*model.Player {
	if len(players) == 0 {
		return nil
	}
	best := lo.MaxBy(players, func(a, b *model.Player) bool {
		return a.Score > b.Score
	})
	return lo.Filter(players, func(p *model.Player, _ int) bool {
		return p.Score == best.Score
	})
}

// EndgameResult records the end-of-game adjustment
type EndgameResult struct {
	Provisional []*model.Player // Leaders before rack deductions
	Adjustments map[string]int  // Net score change per player name
	Winners     []*model.Player
}

// Service provides end-of-game scoring
type Service struct {
	logger *slog.Logger
}

// New creates a new ScoringService
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger.With(slog.String("component", "scoring-service")),
	}
}

// FinalizeGame applies end-of-game adjustments in place and resolves the
// winners. Every player loses the value of their unplayed tiles; a single
// player who emptied their rack gains the sum of everyone else's losses.
// When the adjusted scores tie but one player led outright beforehand,
// that player wins.
func (s *Service) FinalizeGame(players []*model.Player) EndgameResult {
	result := EndgameResult{
		Provisional: Winners(players),
		Adjustments: make(map[string]int, len(players)),
	}

	deducted := 0
	for _, p := range players {
		value := p.RackValue()
		p.Score -= value
		deducted += value
		result.Adjustments[p.Name] = -value
	}

	emptied := lo.Filter(players, func(p *model.Player, _ int) bool {
		return len(p.Rack) == 0
	})
	if len(emptied) == 1 {
		emptied[0].Score += deducted
		result.Adjustments[emptied[0].Name] += deducted
	}

	result.Winners = Winners(players)
	if len(result.Winners) > 1 && len(result.Provisional) == 1 {
		result.Winners = result.Provisional
	}

	s.logger.Info("final scores computed",
		slog.Int("deducted", deducted),
		slog.Any("winners", lo.Map(result.Winners, func(p *model.Player, _ int) string {
			return p.Name
		})),
	)
	return result
}

// Interface for dependency injection
type ServiceInterface interface {
	FinalizeGame(players []*model.Player) EndgameResult
}

var _ ServiceInterface = (*Service)(nil)

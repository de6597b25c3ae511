package movefinder

import (
	"log/slog"

	"github.com/samber/lo"

	"github.com/mcoot/scrabblegame-go/internal/dependencies/random"
	"github.com/mcoot/scrabblegame-go/internal/model"
	"github.com/mcoot/scrabblegame-go/internal/services/scoring"
)

// Query is everything a search needs to know about the current turn
type Query struct {
	Player      string
	IsFirstMove bool
	Board       *model.Board
	Lexicon     *model.Lexicon
	Rack        []*model.Tile
	RackSize    int
}

// Service enumerates legal placements for a rack
type Service struct {
	random random.Random
	logger *slog.Logger
}

// New creates a new move finder. The random source is only consumed to
// break ties between equally scored moves.
func New(rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		random: rnd,
		logger: logger.With(slog.String("component", "move-finder")),
	}
}

// branch is the accumulated state of one search path. It is passed by
// value; slices are clipped before appending so sibling branches never
// share backing arrays.
type branch struct {
	dir       model.Direction
	node      *model.WordIndex
	tiles     []*model.Tile
	squares   []*model.Square
	rack      []*model.Tile
	connected []model.MoveWord
	placed    int
	anchored  bool
}

// candidate is one tile to try on a square and the letter it spells there
type candidate struct {
	tile   *model.Tile
	letter rune
}

// FindMoves returns every legal move for the query, in board order,
// horizontal moves first
func (s *Service) FindMoves(q Query) []*model.Move {
	var moves []*model.Move
	for _, d := range model.Directions {
		for i := range q.Board.Squares {
			sq := &q.Board.Squares[i]
			if !s.canOpenWord(&q, sq, d) {
				continue
			}
			s.grow(&q, sq, branch{dir: d, node: q.Lexicon.Index, rack: q.Rack}, &moves)
		}
	}

	s.logger.Debug("moves found",
		slog.String("player", q.Player),
		slog.Bool("first_move", q.IsFirstMove),
		slog.Int("count", len(moves)),
	)
	return moves
}

// FindBestMove returns one of the highest scoring moves, chosen uniformly
// at random among ties, or nil when the player has to pass
func (s *Service) FindBestMove(q Query) *model.Move {
	moves := s.FindMoves(q)
	if len(moves) == 0 {
		return nil
	}

	best := lo.MaxBy(moves, func(a, b *model.Move) bool {
		return a.TotalScore > b.TotalScore
	})
	ties := lo.Filter(moves, func(m *model.Move, _ int) bool {
		return m.TotalScore == best.TotalScore
	})
	return ties[s.random.Intn(len(ties))]
}

// canOpenWord applies the anchor rules to the first square of a word
func (s *Service) canOpenWord(q *Query, sq *model.Square, d model.Direction) bool {
	if q.IsFirstMove {
		if sq.IsStartingSquare {
			return true
		}
		return lo.ContainsBy(leading(sq.NextRun(d), q.RackSize-1), func(i int) bool {
			return q.Board.Square(i).IsStartingSquare
		})
	}

	if prev := q.Board.Prev(sq, d); prev != nil && prev.IsOccupied() {
		return false
	}
	if sq.IsOccupied() {
		return lo.ContainsBy(sq.NextRun(d), func(i int) bool {
			return !q.Board.Square(i).IsOccupied()
		})
	}
	return lo.ContainsBy(leading(sq.NextRun(d), q.RackSize), func(i int) bool {
		return q.Board.Square(i).IsOccupied()
	})
}

func leading(run []int, n int) []int {
	return run[:max(0, min(n, len(run)))]
}

// grow tries every candidate tile on sq and recurses along the axis
func (s *Service) grow(q *Query, sq *model.Square, b branch, moves *[]*model.Move) {
	for _, c := range candidates(sq, b) {
		s.place(q, sq, b, c, moves)
	}
}

// candidates lists the tiles to try on sq: the board tile if there is one,
// otherwise each distinct rack tile, with blanks expanded to every letter
// the trie can continue with
func candidates(sq *model.Square, b branch) []candidate {
	if sq.IsOccupied() {
		return []candidate{{tile: sq.Tile, letter: sq.Tile.Key}}
	}

	var result []candidate
	seenLetters := make(map[rune]bool)
	seenBlank := false
	for _, tile := range b.rack {
		if tile.IsBlank {
			if seenBlank {
				continue
			}
			seenBlank = true
			for _, letter := range b.node.Letters() {
				result = append(result, candidate{tile: tile, letter: letter})
			}
			continue
		}
		if seenLetters[tile.Key] {
			continue
		}
		seenLetters[tile.Key] = true
		result = append(result, candidate{tile: tile, letter: tile.Key})
	}
	return result
}

func (s *Service) place(q *Query, sq *model.Square, b branch, c candidate, moves *[]*model.Move) {
	node := b.node.Child(c.letter)
	if node == nil {
		return
	}

	next := b
	next.node = node
	next.tiles = append(b.tiles[:len(b.tiles):len(b.tiles)], c.tile)
	next.squares = append(b.squares[:len(b.squares):len(b.squares)], sq)

	if sq.IsOccupied() {
		next.anchored = true
	} else {
		next.placed++
		next.rack = lo.Without(b.rack, c.tile)
		if q.IsFirstMove && sq.IsStartingSquare {
			next.anchored = true
		}

		word, ok := s.connectedWord(q, sq, c, b.dir.Other())
		if !ok {
			return
		}
		if word != nil {
			next.connected = append(b.connected[:len(b.connected):len(b.connected)], *word)
			next.anchored = true
		}
	}

	following := q.Board.Next(sq, b.dir)
	if node.IsTerminal() && next.placed > 0 && next.anchored && (following == nil || !following.IsOccupied()) {
		*moves = append(*moves, s.buildMove(q, next, node.Word))
	}

	if following != nil {
		s.grow(q, following, next, moves)
	}
}

// connectedWord collects the occupied run through sq along d. It returns
// nil, true when sq has no neighbours along d, and false when the run does
// not spell a dictionary word.
func (s *Service) connectedWord(q *Query, sq *model.Square, c candidate, d model.Direction) (*model.MoveWord, bool) {
	before := occupiedRun(q.Board, sq.PrevRun(d))
	after := occupiedRun(q.Board, sq.NextRun(d))
	if len(before) == 0 && len(after) == 0 {
		return nil, true
	}

	length := len(before) + 1 + len(after)
	squares := make([]*model.Square, 0, length)
	for i := len(before) - 1; i >= 0; i-- {
		squares = append(squares, before[i])
	}
	squares = append(squares, sq)
	squares = append(squares, after...)

	tiles := make([]*model.Tile, length)
	keys := make([]rune, length)
	for i, square := range squares {
		if square == sq {
			tiles[i], keys[i] = c.tile, c.letter
			continue
		}
		tiles[i], keys[i] = square.Tile, square.Tile.Key
	}

	word := q.Lexicon.Lookup(keys)
	if word == nil {
		return nil, false
	}
	return &model.MoveWord{
		Word:    word,
		Tiles:   tiles,
		Squares: squares,
		Score:   scoring.WordScore(tiles, squares),
	}, true
}

// occupiedRun returns the squares of run up to the first empty one
func occupiedRun(board *model.Board, run []int) []*model.Square {
	var squares []*model.Square
	for _, i := range run {
		sq := board.Square(i)
		if !sq.IsOccupied() {
			break
		}
		squares = append(squares, sq)
	}
	return squares
}

func (s *Service) buildMove(q *Query, b branch, word *model.LexiconWord) *model.Move {
	move := &model.Move{
		Player:    q.Player,
		Direction: b.dir,
		PrimaryWord: model.MoveWord{
			Word:    word,
			Tiles:   b.tiles,
			Squares: b.squares,
			Score:   scoring.WordScore(b.tiles, b.squares) + scoring.Bingo(b.placed, q.RackSize),
		},
		ConnectedWords: b.connected,
		TilesPlaced:    b.placed,
	}
	move.TotalScore = scoring.MoveTotal(move)
	return move
}

// Interface for dependency injection
type ServiceInterface interface {
	FindMoves(q Query) []*model.Move
	FindBestMove(q Query) *model.Move
}

var _ ServiceInterface = (*Service)(nil)

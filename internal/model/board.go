package model

import (
	"strings"
)

// Position identifies a cell on the board
type Position struct {
	Row int `json:"row" yaml:"row"` // 0-indexed from top
	Col int `json:"col" yaml:"col"` // 0-indexed from left
}

// Direction is one of the two board axes
type Direction int

const (
	Horizontal Direction = iota // left-to-right
	Vertical                    // top-to-bottom
)

// Directions lists both axes in search order
var Directions = [...]Direction{Horizontal, Vertical}

// Other returns the perpendicular axis
func (d Direction) Other() Direction {
	if d == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (d Direction) String() string {
	if d == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// MarshalText renders the direction by name
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// MultiplierKind distinguishes letter and word multipliers
type MultiplierKind int

const (
	LetterMultiplier MultiplierKind = iota
	WordMultiplier
)

func (k MultiplierKind) String() string {
	if k == WordMultiplier {
		return "word"
	}
	return "letter"
}

// MarshalText renders the kind by name
func (k MultiplierKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Multiplier is a premium square bonus
type Multiplier struct {
	Kind  MultiplierKind `json:"kind"`
	Value int            `json:"value"`
}

// noSquare marks an absent neighbour
const noSquare = -1

// Square is a single board cell. Neighbour links are indices into the
// owning Board's Squares slice.
type Square struct {
	Position
	Index            int         `json:"index"`
	IsStartingSquare bool        `json:"is_starting_square"`
	Multiplier       *Multiplier `json:"multiplier,omitempty"`
	Tile             *Tile       `json:"tile,omitempty"`

	next  [2]int
	prev  [2]int
	nexts [2][]int
	prevs [2][]int
}

// IsOccupied returns true if a tile has been placed on the square
func (s *Square) IsOccupied() bool {
	return s.Tile != nil
}

// NextIndex returns the index of the following square along d, or -1 at the edge
func (s *Square) NextIndex(d Direction) int {
	return s.next[d]
}

// PrevIndex returns the index of the preceding square along d, or -1 at the edge
func (s *Square) PrevIndex(d Direction) int {
	return s.prev[d]
}

// NextRun returns the indices of all squares after s along d, nearest first
func (s *Square) NextRun(d Direction) []int {
	return s.nexts[d]
}

// PrevRun returns the indices of all squares before s along d, nearest first
func (s *Square) PrevRun(d Direction) []int {
	return s.prevs[d]
}

// LetterMultiplier returns the letter multiplier value, 1 if none
func (s *Square) LetterMultiplier() int {
	if s.Multiplier != nil && s.Multiplier.Kind == LetterMultiplier {
		return s.Multiplier.Value
	}
	return 1
}

// WordMultiplier returns the word multiplier value, 1 if none
func (s *Square) WordMultiplier() int {
	if s.Multiplier != nil && s.Multiplier.Kind == WordMultiplier {
		return s.Multiplier.Value
	}
	return 1
}

// Board is a rectangular grid of squares stored row-major
type Board struct {
	Rows    int      `json:"rows"`
	Cols    int      `json:"cols"`
	Squares []Square `json:"squares"`
}

// NewBoard allocates an empty rows x cols board and links every square to
// its neighbours along both axes.
func NewBoard(rows, cols int) *Board {
	b := &Board{
		Rows:    rows,
		Cols:    cols,
		Squares: make([]Square, rows*cols),
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			i := b.index(row, col)
			b.Squares[i] = Square{
				Position: Position{Row: row, Col: col},
				Index:    i,
			}
		}
	}
	b.link()
	return b
}

func (b *Board) index(row, col int) int {
	return row*b.Cols + col
}

func (b *Board) indexOrNone(row, col int) int {
	if !b.IsValidPosition(Position{Row: row, Col: col}) {
		return noSquare
	}
	return b.index(row, col)
}

// link precomputes single neighbours and full runs to the edge for every square
func (b *Board) link() {
	for i := range b.Squares {
		sq := &b.Squares[i]
		row, col := sq.Row, sq.Col

		sq.next[Horizontal] = b.indexOrNone(row, col+1)
		sq.next[Vertical] = b.indexOrNone(row+1, col)
		sq.prev[Horizontal] = b.indexOrNone(row, col-1)
		sq.prev[Vertical] = b.indexOrNone(row-1, col)

		sq.nexts[Horizontal] = make([]int, 0, b.Cols-col-1)
		for c := col + 1; c < b.Cols; c++ {
			sq.nexts[Horizontal] = append(sq.nexts[Horizontal], b.index(row, c))
		}
		sq.nexts[Vertical] = make([]int, 0, b.Rows-row-1)
		for r := row + 1; r < b.Rows; r++ {
			sq.nexts[Vertical] = append(sq.nexts[Vertical], b.index(r, col))
		}
		sq.prevs[Horizontal] = make([]int, 0, col)
		for c := col - 1; c >= 0; c-- {
			sq.prevs[Horizontal] = append(sq.prevs[Horizontal], b.index(row, c))
		}
		sq.prevs[Vertical] = make([]int, 0, row)
		for r := row - 1; r >= 0; r-- {
			sq.prevs[Vertical] = append(sq.prevs[Vertical], b.index(r, col))
		}
	}
}

// IsValidPosition returns true if the position is within bounds
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.Rows && pos.Col >= 0 && pos.Col < b.Cols
}

// At returns the square at the given position, or nil if out of bounds
func (b *Board) At(pos Position) *Square {
	if !b.IsValidPosition(pos) {
		return nil
	}
	return &b.Squares[b.index(pos.Row, pos.Col)]
}

// Square returns the square with the given index, or nil for -1
func (b *Board) Square(i int) *Square {
	if i == noSquare {
		return nil
	}
	return &b.Squares[i]
}

// Next returns the square following sq along d, or nil at the edge
func (b *Board) Next(sq *Square, d Direction) *Square {
	return b.Square(sq.next[d])
}

// Prev returns the square preceding sq along d, or nil at the edge
func (b *Board) Prev(sq *Square, d Direction) *Square {
	return b.Square(sq.prev[d])
}

// IsEmpty returns true if no tile has been placed yet
func (b *Board) IsEmpty() bool {
	return b.TileCount() == 0
}

// TileCount returns the number of occupied squares
func (b *Board) TileCount() int {
	count := 0
	for i := range b.Squares {
		if b.Squares[i].Tile != nil {
			count++
		}
	}
	return count
}

// String renders the board one row per line, "." for empty squares
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			sq := &b.Squares[b.index(row, col)]
			switch {
			case sq.Tile == nil:
				sb.WriteByte('.')
			case sq.Tile.Text != "":
				sb.WriteString(sq.Tile.Text)
			default:
				sb.WriteString(sq.Tile.Letter())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

package testutil

import (
	"github.com/mcoot/scrabblegame-go/internal/model"
)

// EnglishLetters returns the standard English tile inventory
func EnglishLetters() []model.LetterSpec {
	return []model.LetterSpec{
		{Key: "A", Count: 9, Value: 1}, {Key: "B", Count: 2, Value: 3},
		{Key: "C", Count: 2, Value: 3}, {Key: "D", Count: 4, Value: 2},
		{Key: "E", Count: 12, Value: 1}, {Key: "F", Count: 2, Value: 4},
		{Key: "G", Count: 3, Value: 2}, {Key: "H", Count: 2, Value: 4},
		{Key: "I", Count: 9, Value: 1}, {Key: "J", Count: 1, Value: 8},
		{Key: "K", Count: 1, Value: 5}, {Key: "L", Count: 4, Value: 1},
		{Key: "M", Count: 2, Value: 3}, {Key: "N", Count: 6, Value: 1},
		{Key: "O", Count: 8, Value: 1}, {Key: "P", Count: 2, Value: 3},
		{Key: "Q", Count: 1, Value: 10}, {Key: "R", Count: 6, Value: 1},
		{Key: "S", Count: 4, Value: 1}, {Key: "T", Count: 6, Value: 1},
		{Key: "U", Count: 4, Value: 1}, {Key: "V", Count: 2, Value: 4},
		{Key: "W", Count: 2, Value: 4}, {Key: "X", Count: 1, Value: 8},
		{Key: "Y", Count: 2, Value: 4}, {Key: "Z", Count: 1, Value: 10},
		{Key: "", Count: 2, Value: 0},
	}
}

// Rules returns plain rules (no multipliers) with the English inventory
func Rules(rows, cols, rackSize int, start model.Position) *model.Rules {
	multipliers := make([][]string, rows)
	for i := range multipliers {
		multipliers[i] = make([]string, cols)
	}
	return &model.Rules{
		Letters:           EnglishLetters(),
		SquareMultipliers: multipliers,
		StartingSquare:    start,
		NumberOfRows:      rows,
		NumberOfCols:      cols,
		RackSize:          rackSize,
	}
}

// LetterValue returns the English face value of a letter
func LetterValue(letter rune) int {
	for _, l := range EnglishLetters() {
		if l.Key == string(letter) {
			return l.Value
		}
	}
	return 0
}

// Rack builds tiles for the given letters with English values; '?' is a blank
func Rack(letters string) []*model.Tile {
	tiles := make([]*model.Tile, 0, len(letters))
	for i, r := range []rune(letters) {
		if r == '?' {
			tiles = append(tiles, &model.Tile{ID: 1000 + i, IsBlank: true})
			continue
		}
		tiles = append(tiles, &model.Tile{ID: 1000 + i, Key: r, Text: string(r), Value: LetterValue(r)})
	}
	return tiles
}

// PlaceWord writes tiles spelling word onto the board from start along d
func PlaceWord(b *model.Board, start model.Position, d model.Direction, word string) {
	sq := b.At(start)
	for i, r := range []rune(word) {
		if sq == nil {
			return
		}
		sq.Tile = &model.Tile{ID: 2000 + sq.Index*10 + i, Key: r, Text: string(r), Value: LetterValue(r)}
		sq = b.Next(sq, d)
	}
}

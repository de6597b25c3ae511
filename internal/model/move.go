package model

import (
	"fmt"
	"strings"
)

// MoveWord is one word formed by a move: the dictionary entry, the tiles
// spelling it and the squares they occupy, in order.
type MoveWord struct {
	Word    *LexiconWord `json:"word"`
	Tiles   []*Tile      `json:"tiles"`
	Squares []*Square    `json:"-"`
	Score   int          `json:"score"`
}

// Letter returns the letter spelled at position i
func (w MoveWord) Letter(i int) rune {
	return w.Word.Letters()[i]
}

// Start returns the position of the first square
func (w MoveWord) Start() Position {
	if len(w.Squares) == 0 {
		return Position{}
	}
	return w.Squares[0].Position
}

// Move is a complete candidate play
type Move struct {
	Player         string     `json:"player"`
	Direction      Direction  `json:"direction"`
	PrimaryWord    MoveWord   `json:"primary_word"`
	ConnectedWords []MoveWord `json:"connected_words"`
	TilesPlaced    int        `json:"tiles_placed"`
	TotalScore     int        `json:"total_score"`
	IsSelected     bool       `json:"is_selected"`
}

// Words returns the primary word followed by the connected words
func (m *Move) Words() []MoveWord {
	words := make([]MoveWord, 0, 1+len(m.ConnectedWords))
	words = append(words, m.PrimaryWord)
	return append(words, m.ConnectedWords...)
}

func (m *Move) String() string {
	start := m.PrimaryWord.Start()
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s at (%d,%d) %s for %d", m.PrimaryWord.Word.Text, start.Row, start.Col, m.Direction, m.TotalScore)
	if len(m.ConnectedWords) > 0 {
		texts := make([]string, len(m.ConnectedWords))
		for i, w := range m.ConnectedWords {
			texts[i] = w.Word.Text
		}
		fmt.Fprintf(&sb, " (+%s)", strings.Join(texts, ", "))
	}
	return sb.String()
}

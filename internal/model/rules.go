package model

// LetterSpec describes one letter of the tile inventory.
// An empty Key denotes the blank tile.
type LetterSpec struct {
	Key   string `json:"key" yaml:"key"`
	Count int    `json:"count" yaml:"count"`
	Value int    `json:"value" yaml:"value"`
	Text  string `json:"text,omitempty" yaml:"text,omitempty"`
}

// IsBlank reports whether the entry describes blank tiles
func (l LetterSpec) IsBlank() bool {
	return l.Key == ""
}

// Rules is the parsed rule configuration for a game
type Rules struct {
	Letters           []LetterSpec `json:"letters" yaml:"letters"`
	SquareMultipliers [][]string   `json:"squareMultipliers" yaml:"squareMultipliers"`
	StartingSquare    Position     `json:"startingSquare" yaml:"startingSquare"`
	NumberOfRows      int          `json:"numberOfRows" yaml:"numberOfRows"`
	NumberOfCols      int          `json:"numberOfCols" yaml:"numberOfCols"`
	RackSize          int          `json:"rackSize" yaml:"rackSize"`
}

// MultiplierCode returns the raw multiplier code for a cell, or "" if none is configured
func (r *Rules) MultiplierCode(row, col int) string {
	if row < 0 || row >= len(r.SquareMultipliers) {
		return ""
	}
	cells := r.SquareMultipliers[row]
	if col < 0 || col >= len(cells) {
		return ""
	}
	return cells[col]
}

// TileCount returns the total number of tiles described by the inventory
func (r *Rules) TileCount() int {
	total := 0
	for _, l := range r.Letters {
		total += l.Count
	}
	return total
}

package model

// Tile is a single letter tile. Blank tiles have a zero Key until they are
// played, at which point the letter they stand for is fixed permanently.
type Tile struct {
	ID      int    `json:"id"`
	Key     rune   `json:"key"`
	Text    string `json:"text"`
	Value   int    `json:"value"`
	IsBlank bool   `json:"is_blank"`
}

// IsAssigned reports whether the tile carries a letter
func (t *Tile) IsAssigned() bool {
	return t.Key != 0
}

// Assign fixes the letter of a blank tile. It returns false when the tile
// is not blank or already has a letter.
func (t *Tile) Assign(letter rune, text string) bool {
	if !t.IsBlank || t.IsAssigned() {
		return false
	}
	t.Key = letter
	t.Text = text
	return true
}

// Letter returns the tile's key as a string, or "?" for an unassigned blank
func (t *Tile) Letter() string {
	if !t.IsAssigned() {
		return "?"
	}
	return string(t.Key)
}

// TileBag holds the full tile inventory and the undrawn pile
type TileBag struct {
	All  []*Tile
	Pile []*Tile
}

// Remaining returns the number of tiles left in the pile
func (b *TileBag) Remaining() int {
	return len(b.Pile)
}

// IsEmpty returns true when no tiles are left to draw
func (b *TileBag) IsEmpty() bool {
	return len(b.Pile) == 0
}

package model

import "slices"

// Player is a game participant with a tile rack and a running score.
// Score may go negative under end-of-game deductions.
type Player struct {
	Name  string  `json:"name"`
	Rack  []*Tile `json:"rack"`
	Score int     `json:"score"`
}

// NewPlayer creates a player with an empty rack
func NewPlayer(name string) *Player {
	return &Player{Name: name}
}

// TakeTiles adds drawn tiles to the rack
func (p *Player) TakeTiles(tiles ...*Tile) {
	p.Rack = append(p.Rack, tiles...)
}

// RemoveTiles removes the given tiles (by identity) from the rack
func (p *Player) RemoveTiles(tiles []*Tile) {
	p.Rack = slices.DeleteFunc(p.Rack, func(t *Tile) bool {
		return slices.Contains(tiles, t)
	})
}

// RackValue sums the face values of the tiles left on the rack
func (p *Player) RackValue() int {
	total := 0
	for _, t := range p.Rack {
		total += t.Value
	}
	return total
}

// RackString renders the rack letters, "?" for blanks
func (p *Player) RackString() string {
	letters := make([]byte, 0, len(p.Rack))
	for _, t := range p.Rack {
		letters = append(letters, t.Letter()...)
	}
	return string(letters)
}

package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GameState represents the current phase of a turn
type GameState string

const (
	GameStateNew          GameState = "new"           // Created, racks not yet dealt
	GameStateAwaitingTurn GameState = "awaiting_turn" // Waiting for the current player's tick
	GameStateMoveProposed GameState = "move_proposed" // A move was found but not yet applied
	GameStateMoveApplied  GameState = "move_applied"  // Move applied, turn about to pass on
	GameStateOver         GameState = "game_over"     // Final scores computed
)

// Game aggregates everything needed to play one game
type Game struct {
	ID      GameID
	Rules   *Rules
	Board   *Board
	Lexicon *Lexicon
	Bag     *TileBag

	// Turn order is list order
	Players []*Player

	State      GameState
	PlayerIdx  int // Index into Players for the player on turn
	TurnNumber int // Number of ticks processed

	Moves   []*Move // Applied moves, oldest first
	Events  []Event
	Winners []*Player // Resolved at game end

	CreatedAt time.Time
	UpdatedAt time.Time
	EndedAt   time.Time
}

// CurrentPlayer returns the player on turn
func (g *Game) CurrentPlayer() *Player {
	if len(g.Players) == 0 {
		return nil
	}
	return g.Players[g.PlayerIdx]
}

// IsFirstMove returns true while no tile has been placed on the board
func (g *Game) IsFirstMove() bool {
	return g.Board.IsEmpty()
}

// IsOver returns true once the game has ended
func (g *Game) IsOver() bool {
	return g.State == GameStateOver
}

// Player returns the player with the given name, or nil
func (g *Game) Player(name string) *Player {
	for _, p := range g.Players {
		if p.Name == name {
			return p
		}
	}
	return nil
}

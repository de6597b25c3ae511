package game

import (
	"slices"
	"time"

	"github.com/mcoot/scrabblegame-go/internal/model"
)

// PlayerStatus is a copy of one player's standing
type PlayerStatus struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Rack  string `json:"rack"`
}

// Snapshot is a consistent copy of a scheduler's game state
type Snapshot struct {
	GameID        model.GameID    `json:"game_id"`
	State         model.GameState `json:"state"`
	Paused        bool            `json:"paused"`
	Stopped       bool            `json:"stopped"`
	TurnNumber    int             `json:"turn_number"`
	CurrentPlayer string          `json:"current_player,omitempty"`
	Players       []PlayerStatus  `json:"players"`
	BagRemaining  int             `json:"bag_remaining"`
	MoveCount     int             `json:"move_count"`
	Board         string          `json:"board"`
	Winners       []string        `json:"winners,omitempty"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Snapshot copies the current game state under the scheduler lock
func (s *Scheduler) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.game
	snap := Snapshot{
		GameID:       g.ID,
		State:        g.State,
		Paused:       s.paused,
		Stopped:      s.stopped,
		TurnNumber:   g.TurnNumber,
		Players:      make([]PlayerStatus, len(g.Players)),
		BagRemaining: g.Bag.Remaining(),
		MoveCount:    len(g.Moves),
		Board:        g.Board.String(),
		Winners:      playerNames(g.Winners),
		UpdatedAt:    g.UpdatedAt,
	}
	if !g.IsOver() && g.State != model.GameStateNew {
		snap.CurrentPlayer = g.CurrentPlayer().Name
	}
	for i, p := range g.Players {
		snap.Players[i] = PlayerStatus{Name: p.Name, Score: p.Score, Rack: p.RackString()}
	}
	return snap
}

// Moves returns a copy of the applied move history
func (s *Scheduler) Moves() []*model.Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.game.Moves)
}

// Events returns a copy of the event log
func (s *Scheduler) Events() []model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.game.Events)
}

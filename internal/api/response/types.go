package response

import (
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/mcoot/scrabblegame-go/internal/model"
	"github.com/mcoot/scrabblegame-go/internal/services/game"
)

// Health is the health check response
type Health struct {
	Status string `json:"status"`
}

// Player represents a player's standing
type Player struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Rack  string `json:"rack"`
}

// Game represents the current game state
type Game struct {
	ID            string    `json:"id"`
	State         string    `json:"state"`
	Paused        bool      `json:"paused"`
	Stopped       bool      `json:"stopped"`
	TurnNumber    int       `json:"turn_number"`
	CurrentPlayer string    `json:"current_player,omitempty"`
	Players       []Player  `json:"players"`
	BagRemaining  int       `json:"bag_remaining"`
	MoveCount     int       `json:"move_count"`
	Board         []string  `json:"board"`
	Winners       []string  `json:"winners,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// GameFromSnapshot converts a scheduler snapshot. The board is returned one
// row per string.
func GameFromSnapshot(s game.Snapshot) Game {
	rows := strings.Split(strings.TrimSuffix(s.Board, "\n"), "\n")
	return Game{
		ID:            string(s.GameID),
		State:         string(s.State),
		Paused:        s.Paused,
		Stopped:       s.Stopped,
		TurnNumber:    s.TurnNumber,
		CurrentPlayer: s.CurrentPlayer,
		Players: lo.Map(s.Players, func(p game.PlayerStatus, _ int) Player {
			return Player{Name: p.Name, Score: p.Score, Rack: p.Rack}
		}),
		BagRemaining: s.BagRemaining,
		MoveCount:    s.MoveCount,
		Board:        rows,
		Winners:      s.Winners,
		UpdatedAt:    s.UpdatedAt,
	}
}

// Word represents one word formed by a move
type Word struct {
	Text  string `json:"text"`
	Keys  string `json:"keys"`
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Score int    `json:"score"`
}

// WordFromModel converts model.MoveWord
func WordFromModel(w model.MoveWord) Word {
	start := w.Start()
	return Word{
		Text:  w.Word.Text,
		Keys:  w.Word.Keys,
		Row:   start.Row,
		Col:   start.Col,
		Score: w.Score,
	}
}

// Move represents an applied move
type Move struct {
	Player      string `json:"player"`
	Direction   string `json:"direction"`
	Word        Word   `json:"word"`
	Connected   []Word `json:"connected,omitempty"`
	TilesPlaced int    `json:"tiles_placed"`
	TotalScore  int    `json:"total_score"`
}

// MoveFromModel converts model.Move
func MoveFromModel(m *model.Move) Move {
	return Move{
		Player:      m.Player,
		Direction:   m.Direction.String(),
		Word:        WordFromModel(m.PrimaryWord),
		Connected:   lo.Map(m.ConnectedWords, func(w model.MoveWord, _ int) Word { return WordFromModel(w) }),
		TilesPlaced: m.TilesPlaced,
		TotalScore:  m.TotalScore,
	}
}

// MovesFromModel converts a move history
func MovesFromModel(moves []*model.Move) []Move {
	return lo.Map(moves, func(m *model.Move, _ int) Move { return MoveFromModel(m) })
}

// Event represents an entry in the game's event log
type Event struct {
	Type       string    `json:"type"`
	Timestamp  time.Time `json:"timestamp"`
	TurnNumber int       `json:"turn_number"`
	Player     string    `json:"player,omitempty"`
	Payload    any       `json:"payload,omitempty"`
}

// EventsFromModel converts the event log
func EventsFromModel(events []model.Event) []Event {
	return lo.Map(events, func(e model.Event, _ int) Event {
		return Event{
			Type:       string(e.Type),
			Timestamp:  e.Timestamp,
			TurnNumber: e.TurnNumber,
			Player:     e.Player,
			Payload:    e.Payload,
		}
	})
}

// Tick is the response after advancing the game. Ticks counts the ticks
// delivered, which a paused game ignores.
type Tick struct {
	Ticks int  `json:"ticks"`
	Game   Game `json:"game"`
}

package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventGameStarted  EventType = "game_started"
	EventMovePlayed   EventType = "move_played"
	EventPlayerPassed EventType = "player_passed"
	EventGamePaused   EventType = "game_paused"
	EventGameResumed  EventType = "game_resumed"
	EventGameStopped  EventType = "game_stopped"
	EventGameOver     EventType = "game_over"
)

// Event is an entry in a game's in-memory event log
type Event struct {
	Type       EventType `json:"type"`
	Timestamp  time.Time `json:"timestamp"`
	TurnNumber int       `json:"turn_number"`
	Player     string    `json:"player,omitempty"` // The player who triggered the event
	Payload    any       `json:"payload,omitempty"`
}

// MovePlayedPayload contains data for move played events
type MovePlayedPayload struct {
	Word        string   `json:"word"`
	Connected   []string `json:"connected,omitempty"`
	Score       int      `json:"score"`
	TilesPlaced int      `json:"tiles_placed"`
	TilesDrawn  int      `json:"tiles_drawn"`
}

// GameOverPayload contains data for game over events
type GameOverPayload struct {
	FinalScores map[string]int `json:"final_scores"`
	Adjustments map[string]int `json:"adjustments"`
	Winners     []string       `json:"winners"`
}

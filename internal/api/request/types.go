package request

// MaxTickCount bounds the number of turns one tick request may play
const MaxTickCount = 100

// TickRequest is the optional request body for advancing the game.
// A zero count plays a single turn.
type TickRequest struct {
	Count int `json:"count,omitempty"`
}

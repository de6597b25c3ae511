package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/scrabblegame-go/internal/api/response"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
	errW   io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w, errW io.Writer) *Output {
	return &Output{format: format, w: w, errW: errW}
}

// IsJSON reports whether output is machine-readable
func (o *Output) IsJSON() bool {
	return o.format == "json"
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.IsJSON() {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.IsJSON() {
		data, _ := json.Marshal(map[string]any{
			"error": map[string]string{"message": err.Error()},
		})
		fmt.Fprintln(o.errW, string(data))
	} else {
		fmt.Fprintf(o.errW, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.IsJSON() {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Game:
		o.printGame(v)
	case response.Tick:
		fmt.Fprintf(o.w, "Ticks: %d\n", v.Ticks)
		o.printGame(v.Game)
	case []response.Move:
		o.printMoves(v)
	case []response.Event:
		for _, e := range v {
			o.printEvent(e)
		}
	case response.Event:
		o.printEvent(v)
	case response.Health:
		fmt.Fprintf(o.w, "Status: %s\n", v.Status)
	case MoveList:
		o.printMoveList(v)
	case PlayResult:
		o.printPlayResult(v)
	case ValidateResult:
		o.printValidateResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// MoveList is the candidate set for a rack
type MoveList struct {
	Rack  string          `json:"rack"`
	Total int             `json:"total"`
	Moves []response.Move `json:"moves"`
}

// PlayResult is the outcome of a local game
type PlayResult struct {
	Seed  int64           `json:"seed"`
	Game  response.Game   `json:"game"`
	Moves []response.Move `json:"moves"`
}

// ValidateResult summarises a valid rules file
type ValidateResult struct {
	Path           string `json:"path"`
	Rows           int    `json:"rows"`
	Cols           int    `json:"cols"`
	StartRow       int    `json:"start_row"`
	StartCol       int    `json:"start_col"`
	RackSize       int    `json:"rack_size"`
	Tiles          int    `json:"tiles"`
	Letters        int    `json:"letters"`
	PremiumSquares int    `json:"premium_squares"`
	LexiconWords   int    `json:"lexicon_words,omitempty"`
}

func (o *Output) printGame(g response.Game) {
	fmt.Fprintf(o.w, "Game: %s\n", g.ID)
	state := g.State
	switch {
	case g.Stopped:
		state += " (stopped)"
	case g.Paused:
		state += " (paused)"
	}
	fmt.Fprintf(o.w, "State: %s\n", state)
	fmt.Fprintf(o.w, "Turn: %d\n", g.TurnNumber)
	if g.CurrentPlayer != "" {
		fmt.Fprintf(o.w, "Current Player: %s\n", g.CurrentPlayer)
	}
	fmt.Fprintf(o.w, "Bag: %d tiles\n", g.BagRemaining)

	fmt.Fprintln(o.w, "\nPlayers:")
	for _, p := range g.Players {
		fmt.Fprintf(o.w, "  %-12s %4d  [%s]\n", p.Name, p.Score, p.Rack)
	}

	fmt.Fprintln(o.w)
	o.printBoard(g.Board)

	if len(g.Winners) > 0 {
		fmt.Fprintf(o.w, "\nWinner: %s\n", strings.Join(g.Winners, ", "))
	}
}

func (o *Output) printBoard(rows []string) {
	if len(rows) == 0 {
		return
	}
	size := len([]rune(rows[0]))

	// Column headers
	fmt.Fprint(o.w, "    ")
	for col := 0; col < size; col++ {
		fmt.Fprintf(o.w, "%2d ", col)
	}
	fmt.Fprintln(o.w)

	border := "   +" + strings.Repeat("---", size) + "+"
	fmt.Fprintln(o.w, border)
	for i, row := range rows {
		fmt.Fprintf(o.w, "%2d |", i)
		for _, cell := range row {
			fmt.Fprintf(o.w, " %c ", cell)
		}
		fmt.Fprintln(o.w, "|")
	}
	fmt.Fprintln(o.w, border)
}

func (o *Output) printMove(m response.Move) {
	fmt.Fprintf(o.w, "%-10s %-8s (%d,%d) %-10s %4d", m.Player, m.Word.Text, m.Word.Row, m.Word.Col, m.Direction, m.TotalScore)
	if len(m.Connected) > 0 {
		texts := make([]string, len(m.Connected))
		for i, w := range m.Connected {
			texts[i] = w.Text
		}
		fmt.Fprintf(o.w, "  +%s", strings.Join(texts, ","))
	}
	fmt.Fprintln(o.w)
}

func (o *Output) printMoves(moves []response.Move) {
	if len(moves) == 0 {
		fmt.Fprintln(o.w, "No moves")
		return
	}
	for _, m := range moves {
		o.printMove(m)
	}
}

func (o *Output) printMoveList(l MoveList) {
	fmt.Fprintf(o.w, "Rack: %s (%d moves)\n", l.Rack, l.Total)
	o.printMoves(l.Moves)
}

func (o *Output) printEvent(e response.Event) {
	prefix := fmt.Sprintf("[%3d] %-13s", e.TurnNumber, e.Type)
	if e.Player != "" {
		prefix += " " + e.Player
	}
	if e.Payload == nil {
		fmt.Fprintln(o.w, prefix)
		return
	}
	data, _ := json.Marshal(e.Payload)
	fmt.Fprintf(o.w, "%s %s\n", prefix, data)
}

func (o *Output) printPlayResult(r PlayResult) {
	fmt.Fprintf(o.w, "Seed: %d\n", r.Seed)
	fmt.Fprintf(o.w, "Moves: %d\n\n", len(r.Moves))
	o.printGame(r.Game)
}

func (o *Output) printValidateResult(r ValidateResult) {
	fmt.Fprintf(o.w, "%s: ok\n", r.Path)
	fmt.Fprintf(o.w, "Board: %dx%d, start (%d,%d)\n", r.Rows, r.Cols, r.StartRow, r.StartCol)
	fmt.Fprintf(o.w, "Tiles: %d across %d letters, rack size %d\n", r.Tiles, r.Letters, r.RackSize)
	fmt.Fprintf(o.w, "Premium squares: %d\n", r.PremiumSquares)
	if r.LexiconWords > 0 {
		fmt.Fprintf(o.w, "Lexicon: %d words\n", r.LexiconWords)
	}
}

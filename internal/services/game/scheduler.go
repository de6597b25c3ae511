package game

import (
	"context"
	"log/slog"
	"sync"

	"github.com/samber/lo"

	"github.com/mcoot/scrabblegame-go/internal/dependencies/clock"
	"github.com/mcoot/scrabblegame-go/internal/model"
	"github.com/mcoot/scrabblegame-go/internal/services/board"
	"github.com/mcoot/scrabblegame-go/internal/services/movefinder"
	"github.com/mcoot/scrabblegame-go/internal/services/scoring"
	"github.com/mcoot/scrabblegame-go/internal/services/tileset"
)

// passed is the fingerprint of a tick on which the player had no move
var passed = &model.Move{}

// Scheduler advances one game a turn at a time. It owns no timer: callers
// deliver ticks, and all methods are safe for concurrent use.
type Scheduler struct {
	game           *model.Game
	moveFinder     movefinder.ServiceInterface
	boardService   board.ServiceInterface
	tileService    *tileset.Service
	scoringService scoring.ServiceInterface
	clock          clock.Clock
	logger         *slog.Logger

	mu      sync.Mutex
	paused  bool
	stopped bool
	done    chan struct{}

	// Consecutive identical fingerprints. Moves are distinct values, so
	// in practice only passes repeat.
	lastFingerprint *model.Move
	repeats         int
}

// NewScheduler creates a scheduler for a game that has not been started
func NewScheduler(
	game *model.Game,
	moveFinder movefinder.ServiceInterface,
	boardService board.ServiceInterface,
	tileService *tileset.Service,
	scoringService scoring.ServiceInterface,
	clock clock.Clock,
	logger *slog.Logger,
) *Scheduler {
	return &Scheduler{
		game:           game,
		moveFinder:     moveFinder,
		boardService:   boardService,
		tileService:    tileService,
		scoringService: scoringService,
		clock:          clock,
		logger: logger.With(
			slog.String("component", "scheduler"),
			slog.String("game_id", string(game.ID)),
		),
		done: make(chan struct{}),
	}
}

// Start deals a full rack to each player in turn order
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.game
	if g.State != model.GameStateNew {
		return model.ErrGameAlreadyStarted
	}
	for _, p := range g.Players {
		p.TakeTiles(s.tileService.Draw(g.Bag, g.Rules.RackSize)...)
	}
	g.State = model.GameStateAwaitingTurn
	s.record(model.EventGameStarted, "", nil)

	s.logger.Info("game started",
		slog.Int("player_count", len(g.Players)),
		slog.Int("bag_remaining", g.Bag.Remaining()),
	)
	return nil
}

// Tick plays one turn for the current player. A paused scheduler ignores
// ticks.
func (s *Scheduler) Tick(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	g := s.game
	switch {
	case g.State == model.GameStateNew:
		return model.ErrGameNotStarted
	case g.IsOver():
		return model.ErrGameOver
	case s.stopped:
		return model.ErrGameStopped
	case s.paused:
		return nil
	}

	player := g.CurrentPlayer()
	g.TurnNumber++

	move := s.moveFinder.FindBestMove(movefinder.Query{
		Player:      player.Name,
		IsFirstMove: g.IsFirstMove(),
		Board:       g.Board,
		Lexicon:     g.Lexicon,
		Rack:        player.Rack,
		RackSize:    g.Rules.RackSize,
	})

	fingerprint := passed
	if move != nil {
		fingerprint = move
		g.State = model.GameStateMoveProposed
		s.apply(player, move)
	} else {
		s.record(model.EventPlayerPassed, player.Name, nil)
		s.logger.Info("player passed",
			slog.Int("turn", g.TurnNumber),
			slog.String("player", player.Name),
		)
	}

	if fingerprint == s.lastFingerprint {
		s.repeats++
	} else {
		s.lastFingerprint, s.repeats = fingerprint, 1
	}

	stalled := fingerprint == passed && s.repeats >= len(g.Players)
	emptied := move != nil && len(player.Rack) == 0 && g.Bag.IsEmpty()
	if stalled || emptied {
		s.finish()
		return nil
	}

	g.PlayerIdx = (g.PlayerIdx + 1) % len(g.Players)
	g.State = model.GameStateAwaitingTurn
	g.UpdatedAt = s.clock.Now()
	return nil
}

// apply places the move, updates the mover's rack and score and refills
// the rack from the bag
func (s *Scheduler) apply(player *model.Player, move *model.Move) {
	g := s.game

	s.boardService.PlaceMove(move, g.Lexicon)
	player.RemoveTiles(move.PrimaryWord.Tiles)
	player.Score += move.TotalScore
	drawn := s.tileService.Draw(g.Bag, g.Rules.RackSize-len(player.Rack))
	player.TakeTiles(drawn...)

	move.Player = player.Name
	g.Moves = append(g.Moves, move)
	g.State = model.GameStateMoveApplied

	s.record(model.EventMovePlayed, player.Name, model.MovePlayedPayload{
		Word: move.PrimaryWord.Word.Text,
		Connected: lo.Map(move.ConnectedWords, func(w model.MoveWord, _ int) string {
			return w.Word.Text
		}),
		Score:       move.TotalScore,
		TilesPlaced: move.TilesPlaced,
		TilesDrawn:  len(drawn),
	})

	s.logger.Info("move played",
		slog.Int("turn", g.TurnNumber),
		slog.String("player", player.Name),
		slog.String("word", move.PrimaryWord.Word.Text),
		slog.Int("score", move.TotalScore),
		slog.Int("total", player.Score),
		slog.Int("bag_remaining", g.Bag.Remaining()),
	)
}

// finish applies the endgame adjustment and resolves the winners
func (s *Scheduler) finish() {
	g := s.game
	result := s.scoringService.FinalizeGame(g.Players)

	now := s.clock.Now()
	g.Winners = result.Winners
	g.State = model.GameStateOver
	g.EndedAt = now
	g.UpdatedAt = now

	payload := model.GameOverPayload{
		FinalScores: make(map[string]int, len(g.Players)),
		Adjustments: result.Adjustments,
		Winners:     playerNames(result.Winners),
	}
	for _, p := range g.Players {
		payload.FinalScores[p.Name] = p.Score
	}
	s.record(model.EventGameOver, "", payload)
	s.closeDone()

	s.logger.Info("game over",
		slog.Int("turns", g.TurnNumber),
		slog.Any("winners", payload.Winners),
		slog.Any("final_scores", payload.FinalScores),
	)
}

// Pause suspends tick processing. Pausing twice is a no-op.
func (s *Scheduler) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkRunning(); err != nil {
		return err
	}
	if s.paused {
		return nil
	}
	s.paused = true
	s.record(model.EventGamePaused, "", nil)
	s.logger.Info("game paused", slog.Int("turn", s.game.TurnNumber))
	return nil
}

// Resume continues tick processing. Resuming a running game is a no-op.
func (s *Scheduler) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkRunning(); err != nil {
		return err
	}
	if !s.paused {
		return nil
	}
	s.paused = false
	s.record(model.EventGameResumed, "", nil)
	s.logger.Info("game resumed", slog.Int("turn", s.game.TurnNumber))
	return nil
}

// Stop cancels the game. The board and players stay readable; later ticks
// fail with ErrGameStopped.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped || s.game.IsOver() {
		return
	}
	s.stopped = true
	s.record(model.EventGameStopped, "", nil)
	s.closeDone()
	s.logger.Info("game stopped", slog.Int("turn", s.game.TurnNumber))
}

// Done is closed once the game is over or stopped
func (s *Scheduler) Done() <-chan struct{} {
	return s.done
}

// Game returns the underlying game. Callers must not read it while ticks
// are being delivered; use Snapshot instead.
func (s *Scheduler) Game() *model.Game {
	return s.game
}

func (s *Scheduler) checkRunning() error {
	switch {
	case s.game.State == model.GameStateNew:
		return model.ErrGameNotStarted
	case s.game.IsOver():
		return model.ErrGameOver
	case s.stopped:
		return model.ErrGameStopped
	}
	return nil
}

func (s *Scheduler) closeDone() {
	select {
	case <-s.done:
	default:
		close(s.done)
	}
}

func (s *Scheduler) record(eventType model.EventType, player string, payload any) {
	s.game.Events = append(s.game.Events, model.Event{
		Type:       eventType,
		Timestamp:  s.clock.Now(),
		TurnNumber: s.game.TurnNumber,
		Player:     player,
		Payload:    payload,
	})
}

func playerNames(players []*model.Player) []string {
	return lo.Map(players, func(p *model.Player, _ int) string {
		return p.Name
	})
}

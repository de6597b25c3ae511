package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/mcoot/scrabblegame-go/internal/api/request"
	"github.com/mcoot/scrabblegame-go/internal/api/response"
	"github.com/mcoot/scrabblegame-go/internal/model"
	"github.com/mcoot/scrabblegame-go/internal/services/game"
)

// Scheduler is the part of the turn scheduler the game endpoints drive
type Scheduler interface {
	Tick(ctx context.Context) error
	Pause() error
	Resume() error
	Stop()
	Snapshot() game.Snapshot
	Moves() []*model.Move
	Events() []model.Event
}

var _ Scheduler = (*game.Scheduler)(nil)

// GameHandler handles game inspection and control endpoints
type GameHandler struct {
	scheduler Scheduler
}

// NewGameHandler creates a new game handler
func NewGameHandler(scheduler Scheduler) *GameHandler {
	return &GameHandler{scheduler: scheduler}
}

// Get handles GET /api/v1/game
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.GameFromSnapshot(h.scheduler.Snapshot()))
}

// Moves handles GET /api/v1/game/moves
func (h *GameHandler) Moves(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.MovesFromModel(h.scheduler.Moves()))
}

// Events handles GET /api/v1/game/events
func (h *GameHandler) Events(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.EventsFromModel(h.scheduler.Events()))
}

// Tick handles POST /api/v1/game/tick
func (h *GameHandler) Tick(w http.ResponseWriter, r *http.Request) {
	var req request.TickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}
	if req.Count < 0 || req.Count > request.MaxTickCount {
		WriteError(w, NewInvalidRequestError("count must be between 0 and 100"))
		return
	}
	count := max(req.Count, 1)

	ticks := 0
	for j := 0; j < count; j++ {
		if err := h.scheduler.Tick(r.Context()); err != nil {
			// Running into the end of the game partway through a batch is not an error
			if ticks > 0 && errors.Is(err, model.ErrGameOver) {
				break
			}
			WriteError(w, err)
			return
		}
		ticks++
	}

	response.JSON(w, http.StatusOK, response.Tick{
		Ticks: ticks,
		Game:  response.GameFromSnapshot(h.scheduler.Snapshot()),
	})
}

// Pause handles POST /api/v1/game/pause
func (h *GameHandler) Pause(w http.ResponseWriter, r *http.Request) {
	if err := h.scheduler.Pause(); err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameFromSnapshot(h.scheduler.Snapshot()))
}

// Resume handles POST /api/v1/game/resume
func (h *GameHandler) Resume(w http.ResponseWriter, r *http.Request) {
	if err := h.scheduler.Resume(); err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameFromSnapshot(h.scheduler.Snapshot()))
}

// Stop handles POST /api/v1/game/stop
func (h *GameHandler) Stop(w http.ResponseWriter, r *http.Request) {
	h.scheduler.Stop()
	response.JSON(w, http.StatusOK, response.GameFromSnapshot(h.scheduler.Snapshot()))
}

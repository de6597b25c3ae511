package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/scrabblegame-go/internal/api/handler"
	"github.com/mcoot/scrabblegame-go/internal/api/middleware"
	"github.com/mcoot/scrabblegame-go/internal/api/response"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger    *slog.Logger
	Scheduler handler.Scheduler
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	gameHandler := handler.NewGameHandler(cfg.Scheduler)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	api.HandleFunc("/game", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/game/moves", gameHandler.Moves).Methods(http.MethodGet)
	api.HandleFunc("/game/events", gameHandler.Events).Methods(http.MethodGet)
	api.HandleFunc("/game/tick", gameHandler.Tick).Methods(http.MethodPost)
	api.HandleFunc("/game/pause", gameHandler.Pause).Methods(http.MethodPost)
	api.HandleFunc("/game/resume", gameHandler.Resume).Methods(http.MethodPost)
	api.HandleFunc("/game/stop", gameHandler.Stop).Methods(http.MethodPost)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}

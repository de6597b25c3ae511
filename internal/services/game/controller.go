package game

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mcoot/scrabblegame-go/internal/dependencies/clock"
	"github.com/mcoot/scrabblegame-go/internal/model"
	"github.com/mcoot/scrabblegame-go/internal/services/board"
	"github.com/mcoot/scrabblegame-go/internal/services/lexicon"
	"github.com/mcoot/scrabblegame-go/internal/services/movefinder"
	"github.com/mcoot/scrabblegame-go/internal/services/rules"
	"github.com/mcoot/scrabblegame-go/internal/services/scoring"
	"github.com/mcoot/scrabblegame-go/internal/services/tileset"
)

// GameConfig selects the named rules and lexicon sources and the players
type GameConfig struct {
	RulesName   string
	LexiconName string
	Players     []string // Turn order
}

// Controller assembles games from stored sources and hands out schedulers
type Controller struct {
	rulesService   *rules.Service
	lexiconService *lexicon.Service
	boardService   *board.Service
	tileService    *tileset.Service
	scoringService *scoring.Service
	moveFinder     movefinder.ServiceInterface
	clock          clock.Clock
	logger         *slog.Logger
}

// NewController creates a new GameController
func NewController(
	rulesService *rules.Service,
	lexiconService *lexicon.Service,
	boardService *board.Service,
	tileService *tileset.Service,
	scoringService *scoring.Service,
	moveFinder movefinder.ServiceInterface,
	clock clock.Clock,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		rulesService:   rulesService,
		lexiconService: lexiconService,
		boardService:   boardService,
		tileService:    tileService,
		scoringService: scoringService,
		moveFinder:     moveFinder,
		clock:          clock,
		logger:         logger.With(slog.String("component", "game-controller")),
	}
}

// NewGame builds the board, lexicon, tile bag and players for a new game.
// Racks are dealt when the game's scheduler is started.
func (c *Controller) NewGame(ctx context.Context, cfg GameConfig) (*model.Game, error) {
	if len(cfg.Players) == 0 {
		return nil, model.ErrInsufficientPlayers
	}

	r, err := c.rulesService.Get(ctx, cfg.RulesName)
	if err != nil {
		return nil, err
	}
	lex, err := c.lexiconService.Get(ctx, cfg.LexiconName, rules.LetterTextMap(r))
	if err != nil {
		return nil, err
	}
	b, err := c.boardService.Build(r)
	if err != nil {
		return nil, err
	}

	players := make([]*model.Player, len(cfg.Players))
	for i, name := range cfg.Players {
		players[i] = model.NewPlayer(name)
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:        model.GameID(uuid.NewString()),
		Rules:     r,
		Board:     b,
		Lexicon:   lex,
		Bag:       c.tileService.Build(r),
		Players:   players,
		State:     model.GameStateNew,
		CreatedAt: now,
		UpdatedAt: now,
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.String("rules", cfg.RulesName),
		slog.String("lexicon", cfg.LexiconName),
		slog.Int("player_count", len(players)),
		slog.Int("tile_count", len(game.Bag.All)),
	)
	return game, nil
}

// Schedule returns a scheduler driving game with the controller's services
func (c *Controller) Schedule(game *model.Game) *Scheduler {
	return NewScheduler(game, c.moveFinder, c.boardService, c.tileService, c.scoringService, c.clock, c.logger)
}

// Interface for dependency injection
type ControllerInterface interface {
	NewGame(ctx context.Context, cfg GameConfig) (*model.Game, error)
	Schedule(game *model.Game) *Scheduler
}

var _ ControllerInterface = (*Controller)(nil)

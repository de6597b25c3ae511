package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/scrabblegame-go/internal/dependencies/clock"
	"github.com/mcoot/scrabblegame-go/internal/dependencies/random"
	"github.com/mcoot/scrabblegame-go/internal/services/board"
	"github.com/mcoot/scrabblegame-go/internal/services/game"
	"github.com/mcoot/scrabblegame-go/internal/services/lexicon"
	"github.com/mcoot/scrabblegame-go/internal/services/movefinder"
	"github.com/mcoot/scrabblegame-go/internal/services/rules"
	"github.com/mcoot/scrabblegame-go/internal/services/scoring"
	"github.com/mcoot/scrabblegame-go/internal/services/tileset"
	"github.com/mcoot/scrabblegame-go/internal/storage"
	"github.com/mcoot/scrabblegame-go/internal/storage/memory"
	redisstorage "github.com/mcoot/scrabblegame-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// DefaultSourceName is the name rules and lexicons are stored under when
// none is given
const DefaultSourceName = "en"

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	Seed   int64

	// Services
	RulesService   *rules.Service
	LexiconService *lexicon.Service
	BoardService   *board.Service
	TileService    *tileset.Service
	ScoringService *scoring.Service
	MoveFinder     *movefinder.Service
	GameController *game.Controller

	Logger *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// Seed for the shared random generator (optional)
	// If zero, a fresh seed is generated and recorded on App.Seed
	Seed int64
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = random.NewSeed()
	}

	app := newWithDependencies(store, clock.New(), random.New(seed), logger)
	app.Seed = seed
	logger.Info("application created",
		slog.String("storage", storageType),
		slog.Int64("seed", seed),
	)
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	rulesService := rules.New(store, logger)
	lexiconService := lexicon.New(store, logger)
	boardService := board.New(logger)
	tileService := tileset.New(rnd, logger)
	scoringService := scoring.New(logger)
	moveFinder := movefinder.New(rnd, logger)
	gameController := game.NewController(
		rulesService, lexiconService, boardService, tileService,
		scoringService, moveFinder, clk, logger,
	)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		RulesService:   rulesService,
		LexiconService: lexiconService,
		BoardService:   boardService,
		TileService:    tileService,
		ScoringService: scoringService,
		MoveFinder:     moveFinder,
		GameController: gameController,
		Logger:         logger,
	}
}

// LoadSources reads a rules file and a lexicon file into storage under name
func (a *App) LoadSources(ctx context.Context, name, rulesPath, lexiconPath string) error {
	if _, err := a.RulesService.LoadFromFile(ctx, name, rulesPath); err != nil {
		return err
	}
	return a.LexiconService.LoadFromFile(ctx, name, lexiconPath)
}

// NewRunner wraps a scheduler in a runner using the app clock
func (a *App) NewRunner(scheduler *game.Scheduler) *game.Runner {
	return game.NewRunner(scheduler, a.Clock, a.Logger)
}

// Close releases the storage backend if it holds connections
func (a *App) Close() error {
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

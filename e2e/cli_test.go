package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/scrabblegame-go/internal/api"
	"github.com/mcoot/scrabblegame-go/internal/api/response"
	"github.com/mcoot/scrabblegame-go/internal/cli"
	"github.com/mcoot/scrabblegame-go/internal/factory"
	"github.com/mcoot/scrabblegame-go/internal/services/game"
	"github.com/mcoot/scrabblegame-go/internal/testutil"
)

// cliRunner executes the CLI in-process against the project's data files
type cliRunner struct {
	serverURL   string
	rulesPath   string
	lexiconPath string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	projectRoot := findProjectRoot(t)
	return &cliRunner{
		serverURL:   serverURL,
		rulesPath:   filepath.Join(projectRoot, "data", "rules.en.json"),
		lexiconPath: filepath.Join(projectRoot, "data", "lexicon.en.txt"),
	}
}

// run executes a command and returns stdout; stderr is folded into the error
func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--rules", r.rulesPath,
		"--lexicon", r.lexiconPath,
		"--output", "json",
	}, args...)

	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd()
	cmd.SetArgs(fullArgs)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		return stdout.String(), &cliError{err: err, stderr: stderr.String()}
	}
	return stdout.String(), nil
}

type cliError struct {
	err    error
	stderr string
}

func (e *cliError) Error() string {
	return e.err.Error() + ": " + e.stderr
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// startTestServer serves a started two-player game over the real API router
func startTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	projectRoot := findProjectRoot(t)
	app, err := factory.New(factory.Config{Seed: 7})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, app.LoadSources(ctx, factory.DefaultSourceName,
		filepath.Join(projectRoot, "data", "rules.en.json"),
		filepath.Join(projectRoot, "data", "lexicon.en.txt"),
	))

	g, err := app.GameController.NewGame(ctx, game.GameConfig{
		RulesName:   factory.DefaultSourceName,
		LexiconName: factory.DefaultSourceName,
		Players:     []string{"alice", "bob"},
	})
	require.NoError(t, err)
	scheduler := app.GameController.Schedule(g)
	require.NoError(t, scheduler.Start())
	// Racks that are sure to play, so the first turns never stall
	g.Players[0].Rack = testutil.Rack("STONEQZ")
	g.Players[1].Rack = testutil.Rack("AEINRST")

	server := httptest.NewServer(api.NewRouter(api.RouterConfig{
		Logger:    testutil.NopLogger(),
		Scheduler: scheduler,
	}))
	t.Cleanup(server.Close)
	return server
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// Response types for JSON parsing
type moveListResponse struct {
	Rack  string          `json:"rack"`
	Total int             `json:"total"`
	Moves []response.Move `json:"moves"`
}

type playResponse struct {
	Seed  int64           `json:"seed"`
	Game  response.Game   `json:"game"`
	Moves []response.Move `json:"moves"`
}

type validateResponse struct {
	Rows           int `json:"rows"`
	Cols           int `json:"cols"`
	RackSize       int `json:"rack_size"`
	Tiles          int `json:"tiles"`
	PremiumSquares int `json:"premium_squares"`
	LexiconWords   int `json:"lexicon_words"`
}

func TestValidateRules(t *testing.T) {
	r := newCLIRunner(t, "")

	out, err := r.run("validate")
	require.NoError(t, err)

	var result validateResponse
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 15, result.Rows)
	assert.Equal(t, 15, result.Cols)
	assert.Equal(t, 7, result.RackSize)
	assert.Equal(t, 100, result.Tiles)
	assert.Equal(t, 61, result.PremiumSquares)
	assert.Positive(t, result.LexiconWords)
}

func TestValidateRejectsBadMultiplier(t *testing.T) {
	r := newCLIRunner(t, "")
	path := writeFile(t, "rules.yaml", `
letters: [{key: A, count: 1, value: 1}]
squareMultipliers: [["2X"]]
startingSquare: {row: 0, col: 0}
numberOfRows: 1
numberOfCols: 1
rackSize: 1
`)

	_, err := r.run("validate", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rules")
}

func TestMovesForRack(t *testing.T) {
	r := newCLIRunner(t, "")
	r.lexiconPath = writeFile(t, "words.txt", "CAT\nACT\nAT\n")

	out, err := r.run("moves", "--rack", "cat", "--limit", "0")
	require.NoError(t, err)

	var result moveListResponse
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "CAT", result.Rack)
	// CAT and ACT in three positions each way, AT in two
	assert.Equal(t, 16, result.Total)
	require.Len(t, result.Moves, 16)
	// The centre square doubles every opening word
	assert.Equal(t, 10, result.Moves[0].TotalScore)
	assert.Equal(t, 4, result.Moves[15].TotalScore)
}

func TestMovesRejectsUnknownTiles(t *testing.T) {
	r := newCLIRunner(t, "")

	_, err := r.run("moves", "--rack", "QQ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tile not in bag")

	_, err = r.run("moves", "--rack", "ABCDEFGH")
	require.Error(t, err)
}

func TestPlayIsReproducible(t *testing.T) {
	r := newCLIRunner(t, "")

	out, err := r.run("play", "--seed", "42", "--players", "alice,bob,carol")
	require.NoError(t, err)

	var first playResponse
	require.NoError(t, json.Unmarshal([]byte(out), &first))
	assert.Equal(t, int64(42), first.Seed)
	assert.Equal(t, "game_over", first.Game.State)
	assert.Len(t, first.Game.Players, 3)
	assert.NotEmpty(t, first.Game.Winners)
	assert.NotEmpty(t, first.Moves)

	out, err = r.run("play", "--seed", "42", "--players", "alice,bob,carol")
	require.NoError(t, err)

	var second playResponse
	require.NoError(t, json.Unmarshal([]byte(out), &second))
	assert.Equal(t, first.Game.Board, second.Game.Board)
	assert.Equal(t, first.Game.Players, second.Game.Players)
	assert.Equal(t, first.Moves, second.Moves)
}

func TestPlayTextOutput(t *testing.T) {
	r := newCLIRunner(t, "")

	var stdout bytes.Buffer
	cmd := cli.NewRootCmd()
	cmd.SetArgs([]string{"--rules", r.rulesPath, "--lexicon", r.lexiconPath, "--seed", "3", "play"})
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	require.NoError(t, cmd.Execute())

	out := stdout.String()
	assert.Contains(t, out, "game_started")
	assert.Contains(t, out, "game_over")
	assert.Contains(t, out, "Seed: 3")
	assert.Contains(t, out, "Winner:")
}

func TestSeedFromEnvironment(t *testing.T) {
	r := newCLIRunner(t, "")
	t.Setenv("SCRABBLE_SEED", "99")

	out, err := r.run("play")
	require.NoError(t, err)

	var result playResponse
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, int64(99), result.Seed)
}

func TestInvalidOutputFormat(t *testing.T) {
	r := newCLIRunner(t, "")

	_, err := r.run("--output", "xml", "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestRedisStorageRequiresURL(t *testing.T) {
	r := newCLIRunner(t, "")

	_, err := r.run("--storage", "redis", "play")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SCRABBLE_REDIS_URL")
}

func TestRemoteGameFlow(t *testing.T) {
	server := startTestServer(t)
	r := newCLIRunner(t, server.URL)

	// Health
	out, err := r.run("health")
	require.NoError(t, err)
	var health response.Health
	require.NoError(t, json.Unmarshal([]byte(out), &health))
	assert.Equal(t, "ok", health.Status)

	// Status
	out, err = r.run("game", "status")
	require.NoError(t, err)
	var status response.Game
	require.NoError(t, json.Unmarshal([]byte(out), &status))
	assert.Equal(t, "awaiting_turn", status.State)
	assert.Equal(t, "alice", status.CurrentPlayer)
	assert.Equal(t, 86, status.BagRemaining)

	// Tick two turns
	out, err = r.run("game", "tick", "-n", "2")
	require.NoError(t, err)
	var tick response.Tick
	require.NoError(t, json.Unmarshal([]byte(out), &tick))
	assert.Equal(t, 2, tick.Ticks)
	assert.Equal(t, 2, tick.Game.TurnNumber)
	assert.Equal(t, 2, tick.Game.MoveCount)

	// Events include the start and one entry per turn
	out, err = r.run("game", "events")
	require.NoError(t, err)
	var events []response.Event
	require.NoError(t, json.Unmarshal([]byte(out), &events))
	require.Len(t, events, 3)
	assert.Equal(t, "game_started", events[0].Type)
	assert.Equal(t, "move_played", events[1].Type)
	assert.Equal(t, "alice", events[1].Player)

	// Moves
	out, err = r.run("game", "moves")
	require.NoError(t, err)
	var moves []response.Move
	require.NoError(t, json.Unmarshal([]byte(out), &moves))
	require.Len(t, moves, 2)
	assert.Equal(t, "alice", moves[0].Player)
	assert.Equal(t, "bob", moves[1].Player)

	// Pause and resume
	out, err = r.run("game", "pause")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &status))
	assert.True(t, status.Paused)

	out, err = r.run("game", "resume")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &status))
	assert.False(t, status.Paused)

	// Stop, after which ticks are refused
	_, err = r.run("game", "stop")
	require.NoError(t, err)

	_, err = r.run("game", "tick")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "GAME_STOPPED"), err.Error())
}

func TestRemoteServerUnavailable(t *testing.T) {
	r := newCLIRunner(t, "http://127.0.0.1:1")

	_, err := r.run("health")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
}

package factory

import (
	"context"
	"time"

	"github.com/mcoot/scrabblegame-go/internal/dependencies/mocks"
	"github.com/mcoot/scrabblegame-go/internal/model"
	"github.com/mcoot/scrabblegame-go/internal/storage/memory"
	"github.com/mcoot/scrabblegame-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// TestWords is a small word list covering common short words
var TestWords = []string{
	"AT", "BE", "DO", "GO", "HE", "IF", "IN", "IS", "IT", "ME",
	"MY", "NO", "OF", "ON", "OR", "SO", "TO", "UP", "US", "WE",
	"ACE", "ACT", "AGE", "AIR", "AND", "ANT", "ARE", "ART", "ATE", "BAD",
	"BAG", "BAT", "BED", "BET", "CAB", "CAN", "CAR", "CAT", "DOG", "DOT",
	"EAR", "EAT", "ERA", "GET", "HAT", "HEN", "ICE", "INK", "ION", "JAM",
	"LOT", "MAP", "MAT", "NET", "NOT", "OAK", "ONE", "ORE", "OUT", "PAN",
	"PEN", "PET", "PIN", "POT", "RAN", "RAT", "RED", "SAT", "SEA", "SET",
	"SIT", "SUN", "TAN", "TAR", "TEA", "TEN", "TIE", "TIN", "TOE", "TON",
	"RATE", "SEAT", "STAR", "TEAR", "NOTE", "TONE", "RAIN", "REST", "SENT", "SOIL",
	"STONE", "ROAST", "TRAIN", "STARE", "NOTES", "TEARS", "RATES", "SNORE",
}

// LoadTestSources stores plain 15x15 English rules and the test word list
// under DefaultSourceName
func (t *TestApp) LoadTestSources(ctx context.Context) error {
	r := testutil.Rules(15, 15, 7, model.Position{Row: 7, Col: 7})
	r.SquareMultipliers[7][7] = "2W"
	if err := t.RulesService.Save(ctx, DefaultSourceName, r); err != nil {
		return err
	}

	text := ""
	for _, w := range TestWords {
		text += w + "\n"
	}
	return t.LexiconService.LoadText(ctx, DefaultSourceName, text)
}

package rules

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strconv"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/mcoot/scrabblegame-go/internal/model"
	"github.com/mcoot/scrabblegame-go/internal/storage"
)

// multiplierPattern matches "<digits><kind>" codes such as "2L" or "3W"
var multiplierPattern = regexp.MustCompile(`^(\d+)([A-Za-z]+)$`)

// Service loads, validates and stores rule configurations
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new rules Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger.With(slog.String("component", "rules-service")),
	}
}

// document mirrors the on-disk layout, accepting the legacy key spellings
type document struct {
	Letters                 []letterEntry `yaml:"letters"`
	SquareMultipliers       [][]string    `yaml:"squareMultipliers"`
	LegacySquareMultipliers [][]string    `yaml:"squareMupltipliers"`
	StartingSquare          struct {
		Row      *int `yaml:"row"`
		Col      *int `yaml:"col"`
		RowIndex *int `yaml:"rowIndex"`
		ColIndex *int `yaml:"colIndex"`
	} `yaml:"startingSquare"`
	NumberOfRows int `yaml:"numberOfRows"`
	NumberOfCols int `yaml:"numberOfCols"`
	RackSize     int `yaml:"rackSize"`
}

// letterEntry accepts either "key" or the legacy "letter" for the inventory key
type letterEntry struct {
	Key    *string `yaml:"key"`
	Letter *string `yaml:"letter"`
	Count  int     `yaml:"count"`
	Value  int     `yaml:"value"`
	Text   string  `yaml:"text"`
}

func (e letterEntry) toLetter() model.LetterSpec {
	l := model.LetterSpec{Count: e.Count, Value: e.Value, Text: e.Text}
	switch {
	case e.Key != nil:
		l.Key = *e.Key
	case e.Letter != nil:
		l.Key = *e.Letter
	}
	return l
}

// Parse decodes a YAML or JSON rules document and validates it
func Parse(data []byte) (*model.Rules, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidRules, err)
	}

	r := &model.Rules{
		Letters:           lo.Map(doc.Letters, func(e letterEntry, _ int) model.LetterSpec { return e.toLetter() }),
		SquareMultipliers: doc.SquareMultipliers,
		NumberOfRows:      doc.NumberOfRows,
		NumberOfCols:      doc.NumberOfCols,
		RackSize:          doc.RackSize,
	}
	if r.SquareMultipliers == nil {
		r.SquareMultipliers = doc.LegacySquareMultipliers
	}
	r.StartingSquare = model.Position{
		Row: firstSet(doc.StartingSquare.Row, doc.StartingSquare.RowIndex),
		Col: firstSet(doc.StartingSquare.Col, doc.StartingSquare.ColIndex),
	}

	if err := Validate(r); err != nil {
		return nil, err
	}
	return r, nil
}

func firstSet(values ...*int) int {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return 0
}

// Validate checks dimensions, rack size, the starting square, the letter
// inventory and every multiplier code
func Validate(r *model.Rules) error {
	if r.NumberOfRows <= 0 || r.NumberOfCols <= 0 {
		return fmt.Errorf("%w: board must have positive dimensions, got %dx%d",
			model.ErrInvalidRules, r.NumberOfRows, r.NumberOfCols)
	}
	if r.RackSize <= 0 {
		return fmt.Errorf("%w: rack size must be positive, got %d", model.ErrInvalidRules, r.RackSize)
	}
	start := r.StartingSquare
	if start.Row < 0 || start.Row >= r.NumberOfRows || start.Col < 0 || start.Col >= r.NumberOfCols {
		return fmt.Errorf("%w: starting square (%d,%d) is off the board",
			model.ErrInvalidRules, start.Row, start.Col)
	}
	if len(r.Letters) == 0 {
		return fmt.Errorf("%w: no letters configured", model.ErrInvalidRules)
	}
	for _, l := range r.Letters {
		if len([]rune(l.Key)) > 1 {
			return fmt.Errorf("%w: letter key %q must be a single character", model.ErrInvalidRules, l.Key)
		}
		if l.Count < 0 || l.Value < 0 {
			return fmt.Errorf("%w: letter %q has negative count or value", model.ErrInvalidRules, l.Key)
		}
	}
	for row := 0; row < r.NumberOfRows; row++ {
		for col := 0; col < r.NumberOfCols; col++ {
			if _, err := ParseMultiplier(r.MultiplierCode(row, col)); err != nil {
				return fmt.Errorf("square (%d,%d): %w", row, col, err)
			}
		}
	}
	return nil
}

// ParseMultiplier parses a "<int>L" / "<int>W" code. An empty code means
// no multiplier and yields nil.
func ParseMultiplier(code string) (*model.Multiplier, error) {
	if code == "" {
		return nil, nil
	}
	matches := multiplierPattern.FindStringSubmatch(code)
	if matches == nil {
		return nil, fmt.Errorf("%w: malformed multiplier %q", model.ErrInvalidRules, code)
	}
	value, err := strconv.Atoi(matches[1])
	if err != nil || value < 1 {
		return nil, fmt.Errorf("%w: multiplier value in %q must be at least 1", model.ErrInvalidRules, code)
	}

	var kind model.MultiplierKind
	switch matches[2] {
	case "L":
		kind = model.LetterMultiplier
	case "W":
		kind = model.WordMultiplier
	default:
		return nil, fmt.Errorf("%w: invalid multiplier kind %q", model.ErrInvalidRules, matches[2])
	}
	return &model.Multiplier{Kind: kind, Value: value}, nil
}

// LetterTextMap maps each letter key with a display text to that text
func LetterTextMap(r *model.Rules) map[rune]string {
	m := make(map[rune]string)
	for _, l := range r.Letters {
		if l.Text == "" || l.IsBlank() {
			continue
		}
		m[[]rune(l.Key)[0]] = l.Text
	}
	return m
}

// LoadFromFile parses a rules file and saves it to storage under name
func (s *Service) LoadFromFile(ctx context.Context, name, path string) (*model.Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := s.storage.SaveRules(ctx, name, r); err != nil {
		return nil, err
	}

	s.logger.Info("rules loaded",
		slog.String("name", name),
		slog.String("path", path),
		slog.Int("rows", r.NumberOfRows),
		slog.Int("cols", r.NumberOfCols),
		slog.Int("tiles", r.TileCount()),
	)
	return r, nil
}

// Save validates and stores rules under name
func (s *Service) Save(ctx context.Context, name string, r *model.Rules) error {
	if err := Validate(r); err != nil {
		return err
	}
	return s.storage.SaveRules(ctx, name, r)
}

// Get retrieves stored rules by name
func (s *Service) Get(ctx context.Context, name string) (*model.Rules, error) {
	return s.storage.GetRules(ctx, name)
}

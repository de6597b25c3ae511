package rules

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/scrabblegame-go/internal/model"
	"github.com/mcoot/scrabblegame-go/internal/storage/memory"
	"github.com/mcoot/scrabblegame-go/internal/testutil"
)

const legacyRules = `{
  "letters": [
    {"key": "A", "count": 2, "value": 1},
    {"key": "B", "count": 1, "value": 3, "text": "Bee"},
    {"key": "", "count": 1, "value": 0}
  ],
  "squareMupltipliers": [
    ["3W", "", "2L"],
    ["", "2W", ""],
    ["2L", "", "3W"]
  ],
  "startingSquare": {"rowIndex": 1, "colIndex": 1},
  "numberOfRows": 3,
  "numberOfCols": 3,
  "rackSize": 2
}`

const yamlRules = `
letters:
  - {key: A, count: 3, value: 1}
squareMultipliers:
  - ["", ""]
  - ["", "2W"]
startingSquare: {row: 0, col: 1}
numberOfRows: 2
numberOfCols: 2
rackSize: 1
`

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()
}

// Parse tests

func (s *ServiceSuite) TestParseLegacyJSON() {
	r, err := Parse([]byte(legacyRules))
	s.Require().NoError(err)

	s.Equal(3, r.NumberOfRows)
	s.Equal(3, r.NumberOfCols)
	s.Equal(2, r.RackSize)
	s.Equal(model.Position{Row: 1, Col: 1}, r.StartingSquare)
	s.Equal("2W", r.MultiplierCode(1, 1))
	s.Equal(4, r.TileCount())
	s.True(r.Letters[2].IsBlank())
}

func (s *ServiceSuite) TestParseLegacyLetterField() {
	r, err := Parse([]byte(`{
  "letters": [
    {"letter": "A", "count": 2, "value": 1},
    {"letter": "", "count": 1, "value": 0}
  ],
  "squareMupltipliers": [["", ""], ["", ""]],
  "startingSquare": {"rowIndex": 0, "colIndex": 0},
  "numberOfRows": 2,
  "numberOfCols": 2,
  "rackSize": 2
}`))
	s.Require().NoError(err)

	s.Require().Len(r.Letters, 2)
	s.Equal("A", r.Letters[0].Key)
	s.Equal(2, r.Letters[0].Count)
	s.True(r.Letters[1].IsBlank())
	s.Equal(3, r.TileCount())
}

func (s *ServiceSuite) TestParseYAML() {
	r, err := Parse([]byte(yamlRules))
	s.Require().NoError(err)

	s.Equal(model.Position{Row: 0, Col: 1}, r.StartingSquare)
	s.Equal("2W", r.MultiplierCode(1, 1))
	s.Equal("", r.MultiplierCode(5, 5))
}

func (s *ServiceSuite) TestParseMalformed() {
	_, err := Parse([]byte("{not valid"))
	s.ErrorIs(err, model.ErrInvalidRules)
}

// Validate tests

func (s *ServiceSuite) TestValidateRejects() {
	cases := map[string]func(r *model.Rules){
		"zero rows":         func(r *model.Rules) { r.NumberOfRows = 0 },
		"zero rack":         func(r *model.Rules) { r.RackSize = 0 },
		"start off board":   func(r *model.Rules) { r.StartingSquare = model.Position{Row: 5, Col: 0} },
		"no letters":        func(r *model.Rules) { r.Letters = nil },
		"long key":          func(r *model.Rules) { r.Letters[0].Key = "AB" },
		"negative count":    func(r *model.Rules) { r.Letters[0].Count = -1 },
		"bad multiplier":    func(r *model.Rules) { r.SquareMultipliers[0][0] = "W2" },
		"zero multiplier":   func(r *model.Rules) { r.SquareMultipliers[0][0] = "0W" },
		"unknown kind code": func(r *model.Rules) { r.SquareMultipliers[0][0] = "2Q" },
	}
	for name, mutate := range cases {
		s.Run(name, func() {
			r := testutil.Rules(3, 3, 7, model.Position{Row: 1, Col: 1})
			mutate(r)
			s.ErrorIs(Validate(r), model.ErrInvalidRules)
		})
	}
}

func (s *ServiceSuite) TestValidateAcceptsFixture() {
	s.NoError(Validate(testutil.Rules(15, 15, 7, model.Position{Row: 7, Col: 7})))
}

// ParseMultiplier tests

func (s *ServiceSuite) TestParseMultiplier() {
	m, err := ParseMultiplier("3L")
	s.Require().NoError(err)
	s.Equal(&model.Multiplier{Kind: model.LetterMultiplier, Value: 3}, m)

	m, err = ParseMultiplier("12W")
	s.Require().NoError(err)
	s.Equal(&model.Multiplier{Kind: model.WordMultiplier, Value: 12}, m)

	m, err = ParseMultiplier("")
	s.NoError(err)
	s.Nil(m)
}

func (s *ServiceSuite) TestLetterTextMap() {
	r, err := Parse([]byte(legacyRules))
	s.Require().NoError(err)

	s.Equal(map[rune]string{'B': "Bee"}, LetterTextMap(r))
}

// Service tests

func (s *ServiceSuite) TestLoadFromFileStoresRules() {
	path := filepath.Join(s.T().TempDir(), "rules.json")
	s.Require().NoError(os.WriteFile(path, []byte(legacyRules), 0o600))

	_, err := s.service.LoadFromFile(s.ctx, "en", path)
	s.Require().NoError(err)

	r, err := s.service.Get(s.ctx, "en")
	s.Require().NoError(err)
	s.Equal(2, r.RackSize)
}

func (s *ServiceSuite) TestLoadFromFileMissing() {
	_, err := s.service.LoadFromFile(s.ctx, "en", filepath.Join(s.T().TempDir(), "nope.json"))
	s.Error(err)
}

func (s *ServiceSuite) TestSaveRejectsInvalid() {
	r := testutil.Rules(3, 3, 0, model.Position{})
	s.ErrorIs(s.service.Save(s.ctx, "bad", r), model.ErrInvalidRules)

	_, err := s.service.Get(s.ctx, "bad")
	s.ErrorIs(err, model.ErrRulesNotFound)
}

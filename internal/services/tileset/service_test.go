package tileset

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/scrabblegame-go/internal/dependencies/mocks"
	"github.com/mcoot/scrabblegame-go/internal/model"
	"github.com/mcoot/scrabblegame-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	mockRandom *mocks.MockRandom
	service    *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.mockRandom = mocks.NewMockRandom()
	s.service = New(s.mockRandom, testutil.NopLogger())
}

func (s *ServiceSuite) smallRules() *model.Rules {
	r := testutil.Rules(5, 5, 3, model.Position{Row: 2, Col: 2})
	r.Letters = []model.LetterSpec{
		{Key: "A", Count: 2, Value: 1},
		{Key: "E", Count: 1, Value: 1, Text: "É"},
		{Key: "", Count: 1, Value: 0},
	}
	return r
}

func (s *ServiceSuite) TestBuildCreatesFullInventory() {
	bag := s.service.Build(s.smallRules())

	s.Len(bag.All, 4)
	s.Len(bag.Pile, 4)
	s.Equal('A', bag.All[0].Key)
	s.Equal('A', bag.All[1].Key)
	s.Equal("É", bag.All[2].Text)
	s.True(bag.All[3].IsBlank)
	s.False(bag.All[3].IsAssigned())
}

func (s *ServiceSuite) TestBuildStandardInventory() {
	bag := s.service.Build(testutil.Rules(15, 15, 7, model.Position{Row: 7, Col: 7}))
	s.Len(bag.All, 100)
}

func (s *ServiceSuite) TestBuildAssignsUniqueIDs() {
	bag := s.service.Build(s.smallRules())
	seen := map[int]bool{}
	for _, t := range bag.All {
		s.False(seen[t.ID])
		seen[t.ID] = true
	}
}

func (s *ServiceSuite) TestPileIsIndependentOfAll() {
	bag := s.service.Build(s.smallRules())
	s.service.Draw(bag, 2)

	s.Len(bag.All, 4)
	s.Len(bag.Pile, 2)
}

func (s *ServiceSuite) TestDrawUsesRandomIndex() {
	bag := s.service.Build(s.smallRules())
	s.mockRandom.QueueIntn(3, 0)

	drawn := s.service.Draw(bag, 2)

	s.Require().Len(drawn, 2)
	s.True(drawn[0].IsBlank)
	s.Equal('A', drawn[1].Key)
	s.Equal(2, bag.Remaining())
}

func (s *ServiceSuite) TestDrawCapsAtPileSize() {
	bag := s.service.Build(s.smallRules())

	drawn := s.service.Draw(bag, 10)

	s.Len(drawn, 4)
	s.True(bag.IsEmpty())
}

func (s *ServiceSuite) TestDrawFromEmptyPile() {
	bag := s.service.Build(s.smallRules())
	s.service.Draw(bag, 4)

	s.Empty(s.service.Draw(bag, 3))
	s.Empty(s.service.Draw(bag, -1))
}

func (s *ServiceSuite) TestDrawNeverDuplicates() {
	bag := s.service.Build(testutil.Rules(15, 15, 7, model.Position{Row: 7, Col: 7}))
	seen := map[*model.Tile]bool{}
	for !bag.IsEmpty() {
		for _, t := range s.service.Draw(bag, 7) {
			s.False(seen[t])
			seen[t] = true
		}
	}
	s.Len(seen, 100)
}

func (s *ServiceSuite) TestTakeNamedTiles() {
	bag := s.service.Build(s.smallRules())

	tiles, err := s.service.Take(bag, "A?E")
	s.Require().NoError(err)
	s.Require().Len(tiles, 3)
	s.Equal('A', tiles[0].Key)
	s.True(tiles[1].IsBlank)
	s.Equal("É", tiles[2].Text)
	s.Equal(1, bag.Remaining())
}

func (s *ServiceSuite) TestTakeUnavailableLeavesPileAlone() {
	bag := s.service.Build(s.smallRules())

	_, err := s.service.Take(bag, "AAA")
	s.ErrorIs(err, model.ErrTileNotInBag)
	s.Equal(4, bag.Remaining())

	_, err = s.service.Take(bag, "Z")
	s.ErrorIs(err, model.ErrTileNotInBag)
}

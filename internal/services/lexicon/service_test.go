package lexicon

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/scrabblegame-go/internal/model"
	"github.com/mcoot/scrabblegame-go/internal/storage/memory"
	"github.com/mcoot/scrabblegame-go/internal/testutil"
)

const sampleWords = "# sample list\r\nCAT\tsmall feline\r\nCATS\nCAR\n\nAT\n"

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

// Build tests

func (s *ServiceSuite) TestBuildSkipsCommentsAndBlankLines() {
	lex := Build(sampleWords, nil)

	s.Equal(4, lex.WordCount())
	s.True(lex.Contains("CAT"))
	s.True(lex.Contains("AT"))
	s.False(lex.Contains("# sample list"))
}

func (s *ServiceSuite) TestBuildParsesDefinitions() {
	lex := Build(sampleWords, nil)

	s.Equal("small feline", lex.Lookup([]rune("CAT")).Definition)
	s.Equal("", lex.Lookup([]rune("CATS")).Definition)
}

func (s *ServiceSuite) TestPrefixIsNotWord() {
	lex := Build(sampleWords, nil)

	node := lex.Index.Find([]rune("CA"))
	s.Require().NotNil(node)
	s.False(node.IsTerminal())
	s.Equal([]rune{'R', 'T'}, node.Letters())
	s.False(lex.Contains("CA"))
}

func (s *ServiceSuite) TestTerminalWithChildren() {
	lex := Build(sampleWords, nil)

	node := lex.Index.Find([]rune("CAT"))
	s.Require().NotNil(node)
	s.True(node.IsTerminal())
	s.NotNil(node.Child('S'))
}

func (s *ServiceSuite) TestMissingPath() {
	lex := Build(sampleWords, nil)

	s.Nil(lex.Index.Find([]rune("DOG")))
	s.Nil(lex.Lookup([]rune("CATZ")))
}

func (s *ServiceSuite) TestDisplayTextUsesLetterText() {
	lex := Build("ae\n", map[rune]string{'a': "Á"})

	s.Equal("Áe", lex.Lookup([]rune("ae")).Text)
	s.Equal("Á", lex.TextFor('a'))
	s.Equal("e", lex.TextFor('e'))

	plain := Build("ae\n", nil)
	s.Equal("ae", plain.Lookup([]rune("ae")).Text)
}

// Service tests

func (s *ServiceSuite) TestGetNotFound() {
	_, err := s.service.Get(s.ctx, "xx", nil)
	s.ErrorIs(err, model.ErrLexiconNotFound)
	s.False(s.service.IsLoaded(s.ctx, "xx"))
}

func (s *ServiceSuite) TestGetCachesBuild() {
	s.Require().NoError(s.service.LoadText(s.ctx, "en", sampleWords))

	first, err := s.service.Get(s.ctx, "en", nil)
	s.Require().NoError(err)
	second, err := s.service.Get(s.ctx, "en", nil)
	s.Require().NoError(err)

	s.Same(first, second)
	s.True(s.service.IsLoaded(s.ctx, "en"))
}

func (s *ServiceSuite) TestLoadTextInvalidatesCache() {
	s.Require().NoError(s.service.LoadText(s.ctx, "en", sampleWords))
	first, err := s.service.Get(s.ctx, "en", nil)
	s.Require().NoError(err)

	s.Require().NoError(s.service.LoadText(s.ctx, "en", "DOG\n"))
	second, err := s.service.Get(s.ctx, "en", nil)
	s.Require().NoError(err)

	s.NotSame(first, second)
	s.True(second.Contains("DOG"))
	s.False(second.Contains("CAT"))
}

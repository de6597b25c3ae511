package lexicon

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mcoot/scrabblegame-go/internal/model"
	"github.com/mcoot/scrabblegame-go/internal/storage"
)

// Build parses a newline-delimited word list into a Lexicon. Lines starting
// with '#' are comments; data lines are "<keys>\t<definition>" where the
// definition is optional. Display text is derived by mapping each key
// through letterText, falling back to the key itself.
func Build(raw string, letterText map[rune]string) *model.Lexicon {
	lex := &model.Lexicon{
		Index:      model.NewWordIndex(),
		LetterText: letterText,
	}
	if lex.LetterText == nil {
		lex.LetterText = map[rune]string{}
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		keys, definition, _ := strings.Cut(line, "\t")
		if keys == "" {
			continue
		}
		word := &model.LexiconWord{
			Keys:       keys,
			Text:       displayText(lex, keys),
			Definition: definition,
		}
		lex.Words = append(lex.Words, word)
		lex.Index.Insert(word)
	}
	return lex
}

func displayText(lex *model.Lexicon, keys string) string {
	var sb strings.Builder
	for _, r := range keys {
		sb.WriteString(lex.TextFor(r))
	}
	return sb.String()
}

// Service loads lexicon sources into storage and builds them on demand
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu    sync.RWMutex
	built map[string]*model.Lexicon
}

// New creates a new lexicon Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger.With(slog.String("component", "lexicon-service")),
		built:   make(map[string]*model.Lexicon),
	}
}

// LoadFromFile reads a word list file and saves it to storage under name
func (s *Service) LoadFromFile(ctx context.Context, name, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return s.LoadText(ctx, name, string(data))
}

// LoadText saves raw word list text under name, discarding any cached build
func (s *Service) LoadText(ctx context.Context, name, text string) error {
	if err := s.storage.SaveLexiconText(ctx, name, text); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.built, name)
	s.mu.Unlock()

	s.logger.Info("lexicon source saved",
		slog.String("name", name),
		slog.Int("bytes", len(text)),
	)
	return nil
}

// Get returns the built lexicon for name, building it from storage on first use
func (s *Service) Get(ctx context.Context, name string, letterText map[rune]string) (*model.Lexicon, error) {
	s.mu.RLock()
	lex, ok := s.built[name]
	s.mu.RUnlock()
	if ok {
		return lex, nil
	}

	text, err := s.storage.GetLexiconText(ctx, name)
	if err != nil {
		return nil, err
	}
	lex = Build(text, letterText)

	s.mu.Lock()
	s.built[name] = lex
	s.mu.Unlock()

	s.logger.Info("lexicon built",
		slog.String("name", name),
		slog.Int("word_count", lex.WordCount()),
	)
	return lex, nil
}

// IsLoaded returns whether a source exists for name
func (s *Service) IsLoaded(ctx context.Context, name string) bool {
	_, err := s.storage.GetLexiconText(ctx, name)
	return err == nil
}

// Interface check
type ServiceInterface interface {
	LoadFromFile(ctx context.Context, name, path string) error
	LoadText(ctx context.Context, name, text string) error
	Get(ctx context.Context, name string, letterText map[rune]string) (*model.Lexicon, error)
	IsLoaded(ctx context.Context, name string) bool
}

var _ ServiceInterface = (*Service)(nil)

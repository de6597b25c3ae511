package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/samber/lo"

	"github.com/mcoot/scrabblegame-go/internal/model"
	"github.com/mcoot/scrabblegame-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	rules    map[string]*model.Rules
	lexicons map[string]string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		rules:    make(map[string]*model.Rules),
		lexicons: make(map[string]string),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Rules operations

func (s *Storage) SaveRules(ctx context.Context, name string, rules *model.Rules) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules[name] = rules
	return nil
}

func (s *Storage) GetRules(ctx context.Context, name string) (*model.Rules, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rules, ok := s.rules[name]
	if !ok {
		return nil, model.ErrRulesNotFound
	}
	return rules, nil
}

func (s *Storage) ListRules(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := lo.Keys(s.rules)
	slices.Sort(names)
	return names, nil
}

// Lexicon source operations

func (s *Storage) SaveLexiconText(ctx context.Context, name string, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lexicons[name] = text
	return nil
}

func (s *Storage) GetLexiconText(ctx context.Context, name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.lexicons[name]
	if !ok {
		return "", model.ErrLexiconNotFound
	}
	return text, nil
}

func (s *Storage) ListLexicons(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := lo.Keys(s.lexicons)
	slices.Sort(names)
	return names, nil
}

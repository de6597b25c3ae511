package storage

import (
	"context"

	"github.com/mcoot/scrabblegame-go/internal/model"
)

// Storage defines the interface for rule and lexicon sources.
// Sources are keyed by name, typically a language code such as "en".
type Storage interface {
	// Rules operations
	SaveRules(ctx context.Context, name string, rules *model.Rules) error
	GetRules(ctx context.Context, name string) (*model.Rules, error)
	ListRules(ctx context.Context) ([]string, error)

	// Lexicon source operations
	SaveLexiconText(ctx context.Context, name string, text string) error
	GetLexiconText(ctx context.Context, name string) (string, error)
	ListLexicons(ctx context.Context) ([]string, error)
}

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/scrabblegame-go/internal/model"
	"github.com/mcoot/scrabblegame-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Rules operations

func (s *Storage) SaveRules(ctx context.Context, name string, rules *model.Rules) error {
	data, err := json.Marshal(rules)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, rulesKey(name), data, s.cfg.SourceTTL)
	pipe.SAdd(ctx, rulesIndexKey(), name)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetRules(ctx context.Context, name string) (*model.Rules, error) {
	data, err := s.client.Get(ctx, rulesKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrRulesNotFound
		}
		return nil, err
	}

	var rules model.Rules
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, err
	}
	return &rules, nil
}

func (s *Storage) ListRules(ctx context.Context) ([]string, error) {
	return s.listIndex(ctx, rulesIndexKey(), rulesKey)
}

// Lexicon source operations

func (s *Storage) SaveLexiconText(ctx context.Context, name string, text string) error {
	pipe := s.client.Pipeline()
	pipe.Set(ctx, lexiconKey(name), text, s.cfg.SourceTTL)
	pipe.SAdd(ctx, lexiconIndexKey(), name)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) GetLexiconText(ctx context.Context, name string) (string, error) {
	text, err := s.client.Get(ctx, lexiconKey(name)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", model.ErrLexiconNotFound
		}
		return "", err
	}
	return text, nil
}

func (s *Storage) ListLexicons(ctx context.Context) ([]string, error) {
	return s.listIndex(ctx, lexiconIndexKey(), lexiconKey)
}

// listIndex returns the sorted members of an index set, dropping names
// whose value key has expired
func (s *Storage) listIndex(ctx context.Context, indexKey string, valueKey func(string) string) ([]string, error) {
	names, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, err
	}

	live := make([]string, 0, len(names))
	for _, name := range names {
		exists, err := s.client.Exists(ctx, valueKey(name)).Result()
		if err != nil {
			return nil, err
		}
		if exists > 0 {
			live = append(live, name)
		} else {
			s.client.SRem(ctx, indexKey, name)
		}
	}
	slices.Sort(live)
	return live, nil
}

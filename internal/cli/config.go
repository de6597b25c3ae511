package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mcoot/scrabblegame-go/internal/factory"
	redisstorage "github.com/mcoot/scrabblegame-go/internal/storage/redis"
)

// EnvPrefix is prepended to every environment variable the CLI reads
const EnvPrefix = "SCRABBLE"

// Config holds CLI configuration
type Config struct {
	ServerURL   string
	Source      string
	RulesPath   string
	LexiconPath string
	Seed        int64
	Storage     string
	RedisURL    string
	Output      string
	Verbose     bool
}

// newViper creates a viper instance reading SCRABBLE_* environment
// variables, with dashes in flag names mapped to underscores
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("server", "http://localhost:8080")
	v.SetDefault("source", factory.DefaultSourceName)
	v.SetDefault("rules", "data/rules.en.json")
	v.SetDefault("lexicon", "data/lexicon.en.txt")
	v.SetDefault("seed", 0)
	v.SetDefault("storage", factory.StorageTypeMemory)
	v.SetDefault("redis-url", "")
	v.SetDefault("output", "text")
	v.SetDefault("verbose", false)
	return v
}

// loadConfig resolves flags over environment over defaults
func loadConfig(v *viper.Viper, flags *pflag.FlagSet) (*Config, error) {
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}

	c := &Config{
		ServerURL:   v.GetString("server"),
		Source:      v.GetString("source"),
		RulesPath:   v.GetString("rules"),
		LexiconPath: v.GetString("lexicon"),
		Seed:        v.GetInt64("seed"),
		Storage:     v.GetString("storage"),
		RedisURL:    v.GetString("redis-url"),
		Output:      v.GetString("output"),
		Verbose:     v.GetBool("verbose"),
	}
	if c.Output != "text" && c.Output != "json" {
		return nil, fmt.Errorf("invalid output format %q: must be text or json", c.Output)
	}
	return c, nil
}

// Logger returns the CLI logger. Logs go to stderr and are quiet unless
// verbose is set.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// FactoryConfig maps CLI settings onto the application factory
func (c *Config) FactoryConfig(logger *slog.Logger) (factory.Config, error) {
	fc := factory.Config{
		Seed:        c.Seed,
		Logger:      logger,
		StorageType: c.Storage,
	}
	if c.Storage == factory.StorageTypeRedis {
		if c.RedisURL == "" {
			return fc, fmt.Errorf("%s_REDIS_URL or --redis-url required when storage is redis", EnvPrefix)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		fc.RedisConfig = &redisCfg
	}
	return fc, nil
}

// NewApp builds the application and loads the configured rules and lexicon
// files into storage. Empty paths skip loading, for sources already held
// by a persistent store.
func (c *Config) NewApp(ctx context.Context, logger *slog.Logger) (*factory.App, error) {
	fc, err := c.FactoryConfig(logger)
	if err != nil {
		return nil, err
	}
	app, err := factory.New(fc)
	if err != nil {
		return nil, err
	}

	if c.RulesPath != "" {
		if _, err := app.RulesService.LoadFromFile(ctx, c.Source, c.RulesPath); err != nil {
			_ = app.Close()
			return nil, err
		}
	}
	if c.LexiconPath != "" {
		if err := app.LexiconService.LoadFromFile(ctx, c.Source, c.LexiconPath); err != nil {
			_ = app.Close()
			return nil, err
		}
	}
	return app, nil
}

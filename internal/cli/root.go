package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	v := newViper()

	rootCmd := &cobra.Command{
		Use:   "scrabble",
		Short: "Scrabble-style word game engine",
		Long: `scrabble plays bot-vs-bot word games on a configurable board.

Run a game locally with "play", list candidate moves for a rack with "moves",
check a rules file with "validate", or serve a game over HTTP with "serve"
and drive it with the "game" commands.

Every flag can also be set through a SCRABBLE_ environment variable,
e.g. SCRABBLE_SEED=42 or SCRABBLE_REDIS_URL=redis://localhost:6379.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = loadConfig(v, cmd.Flags())
			if err != nil {
				return err
			}
			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.String("server", "http://localhost:8080", "Server URL for game commands (env: SCRABBLE_SERVER)")
	flags.String("source", "en", "Name the rules and lexicon are stored under (env: SCRABBLE_SOURCE)")
	flags.String("rules", "data/rules.en.json", "Rules file to load, empty to use stored rules (env: SCRABBLE_RULES)")
	flags.String("lexicon", "data/lexicon.en.txt", "Word list to load, empty to use the stored lexicon (env: SCRABBLE_LEXICON)")
	flags.Int64("seed", 0, "Random seed, 0 for a fresh one (env: SCRABBLE_SEED)")
	flags.String("storage", "memory", "Storage backend: memory, redis (env: SCRABBLE_STORAGE)")
	flags.String("redis-url", "", "Redis URL when storage is redis (env: SCRABBLE_REDIS_URL)")
	flags.StringP("output", "o", "text", "Output format: text, json (env: SCRABBLE_OUTPUT)")
	flags.BoolP("verbose", "v", false, "Verbose logging to stderr")

	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newMovesCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newGameCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

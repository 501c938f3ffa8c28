package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/samdwyer/wordscramble/internal/config"
)

// v holds defaults, env bindings and the persistent flags below.
var v = config.New()

var rootCmd = &cobra.Command{
	Use:   "wordscramble",
	Short: "Make as many words as you can from a root word",
	Long: `WordScramble shows you a root word. Type words made from its letters:
each must be a real word, at least three letters long, not the root word
itself and not one you've already found. Every accepted word scores a point.

With no subcommand, starts the terminal game.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd.Context())
	},
}

// Execute runs the root command.
func Execute() {
	// .env is for local development; env vars might be set directly
	if err := config.LoadDotEnv(); err != nil {
		log.Warn().Err(err).Msg(".env file not loaded")
	}

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (TOML)")
	flags.String("words", "", "Root word list, one word per line (default: embedded list)")
	flags.String("dictionary", "", "Dictionary word list, one word per line (default: embedded English)")
	flags.Int64("seed", 0, "Random seed for root word selection (0 = random)")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")

	bindFlag("config", flags.Lookup("config"))
	bindFlag("words.path", flags.Lookup("words"))
	bindFlag("dictionary.path", flags.Lookup("dictionary"))
	bindFlag("game.seed", flags.Lookup("seed"))
	bindFlag("log.level", flags.Lookup("log-level"))

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(checkCmd)
}

// bindFlag lets a flag override the config key when set on the command line.
func bindFlag(key string, f *pflag.Flag) {
	if err := v.BindPFlag(key, f); err != nil {
		panic(err)
	}
}

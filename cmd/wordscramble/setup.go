package main

import (
	"context"
	"os"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/samdwyer/wordscramble/internal/config"
	"github.com/samdwyer/wordscramble/internal/dictionary"
	"github.com/samdwyer/wordscramble/internal/game"
	"github.com/samdwyer/wordscramble/internal/gamedata"
	"github.com/samdwyer/wordscramble/internal/logging"
	"github.com/samdwyer/wordscramble/internal/telemetry"
)

// loadConfig reads configuration and points the logger at stderr.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return config.Config{}, err
	}
	logging.Setup(cfg.Log.Level, os.Stderr)
	return cfg, nil
}

// setupTelemetry starts span export when enabled. The game still works
// without it, so failures only warn.
func setupTelemetry(ctx context.Context, cfg config.TelemetryConfig) func() {
	shutdown, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:  cfg.Enabled,
		Endpoint: cfg.Endpoint,
		APIKey:   cfg.APIKey,
		Dataset:  cfg.Dataset,
	})
	if err != nil {
		log.Warn().Err(err).Msg("telemetry setup failed, running without observability")
		return func() {}
	}
	return func() {
		if err := shutdown(ctx); err != nil {
			log.Warn().Err(err).Msg("telemetry shutdown")
		}
	}
}

// mustLoadResources loads the root word list and dictionary. The game cannot
// run without them, so any failure exits the process.
func mustLoadResources(cfg config.Config) (*gamedata.RootWords, *dictionary.WordSet) {
	var (
		words *gamedata.RootWords
		err   error
	)
	if cfg.Words.Path != "" {
		words, err = gamedata.LoadRootWordsFile(cfg.Words.Path)
	} else {
		words, err = gamedata.LoadRootWords()
	}
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Words.Path).Msg("couldn't load root word list")
	}

	dict, err := dictionary.Load(cfg.Game.Language, cfg.Dictionary.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Dictionary.Path).Msg("couldn't load dictionary")
	}

	log.Debug().
		Int("root_words", words.Count()).
		Int("dictionary_words", dict.Count()).
		Str("language", dict.Language()).
		Msg("resources loaded")
	return words, dict
}

// gameConfig maps configuration onto game options.
func gameConfig(cfg config.GameConfig) game.Config {
	return game.Config{
		Seed:     cfg.Seed,
		Language: cfg.Language,
	}
}

// newGameFactory builds games that share resources. A fixed seed is offset per
// game so that sessions don't all get the same root word sequence. Offsets
// that land on 0 are skipped, since a zero seed means time-seeded.
func newGameFactory(words *gamedata.RootWords, checker dictionary.RealnessChecker, cfg game.Config) func() *game.Game {
	var n atomic.Int64
	return func() *game.Game {
		c := cfg
		if c.Seed != 0 {
			c.Seed = cfg.Seed + n.Add(1) - 1
			if c.Seed == 0 {
				c.Seed = cfg.Seed + n.Add(1) - 1
			}
		}
		return game.New(words, checker, c)
	}
}

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/samdwyer/wordscramble/internal/game"
	"github.com/samdwyer/wordscramble/internal/logging"
	"github.com/samdwyer/wordscramble/internal/ui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd.Context())
	},
}

func runPlay(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	words, dict := mustLoadResources(cfg)

	theme, err := ui.ParseTheme(cfg.UI.TitleColor, cfg.UI.AlertColor)
	if err != nil {
		return err
	}

	// The screen owns the terminal from here on
	closer, err := logging.SetupFile(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer closer.Close()

	shutdown := setupTelemetry(ctx, cfg.Telemetry)
	defer shutdown()

	g := game.New(words, dict, gameConfig(cfg.Game))
	log.Info().Str("root_word", g.RootWord()).Msg("game started")

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}

	if err := ui.NewShell(screen, g, theme).Run(ctx); err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	log.Info().Int("score", g.Score()).Msg("game over")
	return nil
}

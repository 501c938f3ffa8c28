package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/samdwyer/wordscramble/internal/httpserver"
	"github.com/samdwyer/wordscramble/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the game over a JSON HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Listen address")
	bindFlag("http.addr", serveCmd.Flags().Lookup("addr"))
}

func runServe(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	words, dict := mustLoadResources(cfg)

	shutdown := setupTelemetry(ctx, cfg.Telemetry)
	defer shutdown()

	srv := httpserver.New(store.NewMemoryStore(), newGameFactory(words, dict, gameConfig(cfg.Game)))
	hs := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", hs.Addr).Msg("starting server")
		errCh <- hs.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return hs.Shutdown(shutdownCtx)
}

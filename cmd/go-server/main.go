package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/rusty-dusty/internal/config"
	"github.com/robalobadob/rusty-dusty/internal/demos"
	"github.com/robalobadob/rusty-dusty/internal/httpserver"
	"github.com/robalobadob/rusty-dusty/internal/store"
)

func main() {
	cfg := config.Load("info")
	config.SetupLogging(cfg.LogLevel, os.Stderr, false)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mem := store.NewMemoryStore()
	srv := httpserver.New(mem, cfg, demos.Catalog())
	log.Info().Str("port", cfg.Port).Str("origin", cfg.ClientOrigin).Msg("starting go-server")
	if err := srv.Start(ctx, ":"+cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("server stopped")
}

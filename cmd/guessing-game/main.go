// cmd/guessing-game/main.go
//
// Interactive number guessing game on the terminal.
// GUESS_MODE=daily plays today's shared number instead of a random one.

package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/rusty-dusty/internal/config"
	"github.com/robalobadob/rusty-dusty/internal/console"
	"github.com/robalobadob/rusty-dusty/internal/daily"
	"github.com/robalobadob/rusty-dusty/internal/game"
)

func main() {
	cfg := config.Load("warn")
	config.SetupLogging(cfg.LogLevel, os.Stderr, true)

	var src game.NumberSource
	if cfg.GuessMode == "daily" {
		src = daily.Source{Salt: cfg.DailySalt}
	}
	g := game.New(src)
	log.Debug().Str("gameId", g.ID).Str("mode", cfg.GuessMode).Msg("game started")

	if err := console.Play(os.Stdin, os.Stdout, g); err != nil {
		log.Fatal().Err(err).Msg("failed to read line")
	}
}

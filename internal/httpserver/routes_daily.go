// internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily" mode.
// Exposes two endpoints under /daily:
//   - POST /daily/new   → start a game whose secret is today's shared number
//   - GET  /daily/stats → win/loss counts for today (or ?date=YYYY-MM-DD)
//
// Daily games are ordinary games in the store; guesses go through
// POST /game/guess. This file only remembers which games are daily so their
// outcome can be counted once they finish.

package httpserver

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/rusty-dusty/internal/daily"
	"github.com/robalobadob/rusty-dusty/internal/game"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv   *Server
	salt  string
	now   func() time.Time
	stats *daily.Stats
	mu    sync.Mutex        // guards games
	games map[string]string // live daily game ID → date key
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	d := &dailyServer{
		srv:   s,
		salt:  s.cfg.DailySalt,
		now:   time.Now,
		stats: daily.NewStats(),
		games: make(map[string]string),
	}
	s.daily = d
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", d.handleNew)
		r.Get("/stats", d.handleStats)
	})
}

// handleNew creates a game seeded with today's number.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	now := d.now()
	g := game.New(daily.Source{Salt: d.salt, Now: func() time.Time { return now }})
	res, ok := d.srv.startGame(w, r, g)
	if !ok {
		return
	}
	res.Date = daily.DateKey(now)

	d.mu.Lock()
	d.games[g.ID] = res.Date
	d.mu.Unlock()

	log.Debug().Str("gameId", g.ID).Str("date", res.Date).Msg("new daily game")
	_ = json.NewEncoder(w).Encode(res)
}

// finished counts the outcome of a daily game. Non-daily IDs are ignored.
func (d *dailyServer) finished(gameID string, won bool) {
	d.mu.Lock()
	date, ok := d.games[gameID]
	delete(d.games, gameID)
	d.mu.Unlock()
	if ok {
		d.stats.Record(date, won)
	}
}

// forget drops pruned games that never finished. They count as neither a
// win nor a loss.
func (d *dailyServer) forget(ids []string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, id := range ids {
		delete(d.games, id)
	}
}

// handleStats returns the tally for the given date (default today).
func (d *dailyServer) handleStats(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = daily.DateKey(d.now())
	}
	_ = json.NewEncoder(w).Encode(d.stats.Get(date))
}

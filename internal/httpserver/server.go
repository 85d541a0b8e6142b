// internal/httpserver/server.go
//
// HTTP server wiring for the guessing game API.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health".
//   - Game endpoints: POST /game/new, POST /game/guess, GET /game/{id}.
//   - Daily endpoints: mounted under /daily (routes_daily.go).
//   - Demo endpoints: GET /demos, POST /demos/{name} (routes_demos.go).
//
// Notes:
//   - Games live in a store.Store; every mutation goes through Store.Update.
//   - /game/new hands out a session token; guesses and reads require it and
//     the token must name the game being touched (session.go).
//   - The secret is only included in responses once the game is finished.
//   - While serving, games older than the session TTL are swept out of the
//     store since no valid token can name them any more.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/rusty-dusty/internal/config"
	"github.com/robalobadob/rusty-dusty/internal/dispatch"
	"github.com/robalobadob/rusty-dusty/internal/game"
	"github.com/robalobadob/rusty-dusty/internal/store"
)

// Server bundles router, game store, demo registry and settings.
type Server struct {
	r     *chi.Mux
	store store.Store
	cfg   config.Config
	demos *dispatch.Registry
	daily *dailyServer
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, cfg config.Config, demos *dispatch.Registry) *Server {
	s := &Server{r: chi.NewRouter(), store: st, cfg: cfg, demos: demos}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)                   // zerolog access log
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(cfg.ClientOrigin))          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"rusty-dusty","endpoints":["/health","POST /game/new","POST /game/guess","GET /game/{id}","POST /daily/new","GET /daily/stats","GET /demos","POST /demos/{name}"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// Game endpoints
	s.r.Post("/game/new", s.handleNewGame)
	s.r.With(s.requireSession()).Post("/game/guess", s.handleGuess)
	s.r.With(s.requireSession()).Get("/game/{id}", s.handleGetGame)

	s.mountDaily(s.r)
	s.mountDemos(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start serves HTTP on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	hs := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}
	go s.janitor(ctx, sweepEvery)
	errc := make(chan error, 1)
	go func() { errc <- hs.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := hs.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

const sweepEvery = time.Minute

// janitor sweeps expired games every interval until ctx is cancelled.
func (s *Server) janitor(ctx context.Context, every time.Duration) {
	if s.cfg.SessionTTL <= 0 {
		return
	}
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			s.sweep(ctx, now)
		}
	}
}

// sweep drops games saved more than one session TTL before now.
func (s *Server) sweep(ctx context.Context, now time.Time) {
	gone := s.store.Prune(ctx, now.Add(-s.cfg.SessionTTL))
	if len(gone) == 0 {
		return
	}
	s.daily.forget(gone)
	log.Debug().Int("games", len(gone)).Msg("pruned expired games")
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requestLogger writes one zerolog line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Info().
			Str("reqId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// writeError writes {"error": msg} with the given status.
func writeError(w http.ResponseWriter, code int, msg string) {
	b, _ := json.Marshal(map[string]string{"error": msg})
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(b)
}

// ------------------------------ GAME ---------------------------------------

// newGameRes is returned by POST /game/new and POST /daily/new.
type newGameRes struct {
	GameID   string `json:"gameId"`
	Token    string `json:"token"`
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Attempts int    `json:"attempts"`
	Date     string `json:"date,omitempty"`
}

// startGame stores g and issues its session token.
func (s *Server) startGame(w http.ResponseWriter, r *http.Request, g *game.Game) (newGameRes, bool) {
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return newGameRes{}, false
	}
	tok, _, err := s.signSession(g.ID)
	if err != nil {
		log.Error().Err(err).Str("gameId", g.ID).Msg("sign session")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return newGameRes{}, false
	}
	return newGameRes{
		GameID:   g.ID,
		Token:    tok,
		Min:      game.MinNumber,
		Max:      game.MaxNumber,
		Attempts: g.AttemptsLeft(),
	}, true
}

// handleNewGame creates a game with a random secret.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	res, ok := s.startGame(w, r, game.New(nil))
	if !ok {
		return
	}
	log.Debug().Str("gameId", res.GameID).Msg("new game")
	_ = json.NewEncoder(w).Encode(res)
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}

// gameView is the public projection of a game.
type gameView struct {
	GameID       string     `json:"gameId"`
	AttemptsLeft int        `json:"attemptsLeft"`
	State        game.State `json:"state"`
	Secret       *int       `json:"secret,omitempty"` // only once finished
}

func viewOf(g *game.Game) gameView {
	v := gameView{GameID: g.ID, AttemptsLeft: g.AttemptsLeft(), State: g.State()}
	if g.Finished() {
		n := g.SecretNumber()
		v.Secret = &n
	}
	return v
}

type guessRes struct {
	game.Outcome
	gameView
}

// handleGuess applies a guess to a stored game.
// Invalid input is a normal 200 response with result "invalid".
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if req.GameID != sessionGameID(r) {
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	var (
		res      guessRes
		finished bool
	)
	err := s.store.Update(r.Context(), req.GameID, func(g *game.Game) error {
		wasPlaying := !g.Finished()
		res.Outcome = g.ProcessGuess(req.Guess)
		res.gameView = viewOf(g)
		finished = wasPlaying && g.Finished()
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("gameId", req.GameID).Msg("update game")
		writeError(w, http.StatusInternalServerError, "update_failed")
		return
	}

	if finished {
		log.Info().Str("gameId", req.GameID).Str("state", string(res.State)).Msg("game finished")
		s.daily.finished(req.GameID, res.State == game.StateWon)
	}
	_ = json.NewEncoder(w).Encode(res)
}

// handleGetGame returns the current view of a game.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id != sessionGameID(r) {
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return
	}
	g, err := s.store.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	_ = json.NewEncoder(w).Encode(viewOf(g))
}

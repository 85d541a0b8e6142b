package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/rusty-dusty/internal/config"
	"github.com/robalobadob/rusty-dusty/internal/daily"
	"github.com/robalobadob/rusty-dusty/internal/dispatch"
	"github.com/robalobadob/rusty-dusty/internal/game"
	"github.com/robalobadob/rusty-dusty/internal/store"
)

func testConfig() config.Config {
	return config.Config{
		ClientOrigin:  "http://localhost:5173",
		SessionSecret: "test_secret",
		SessionTTL:    time.Hour,
		DailySalt:     "test_salt",
	}
}

type harness struct {
	t     *testing.T
	srv   *Server
	store store.Store
}

func newHarness(t *testing.T) *harness {
	st := store.NewMemoryStore()
	demos := dispatch.NewRegistry(dispatch.Entry{Name: "hello", Action: func(w io.Writer) {
		_, _ = io.WriteString(w, "hi there\n")
	}})
	return &harness{t: t, srv: New(st, testConfig(), demos), store: st}
}

func (h *harness) do(method, path, token string, body any) *httptest.ResponseRecorder {
	h.t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(h.t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.srv.Router().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

// newFixedGame stores a game with a known secret and returns its token.
func (h *harness) newFixedGame(secret int) (string, string) {
	h.t.Helper()
	g := game.New(game.FixedSource(secret))
	require.NoError(h.t, h.store.Save(context.Background(), g))
	tok, _, err := h.srv.signSession(g.ID)
	require.NoError(h.t, err)
	return g.ID, tok
}

type guessBody struct {
	Result       game.Result `json:"result"`
	Message      string      `json:"message"`
	AttemptsLeft int         `json:"attemptsLeft"`
	State        game.State  `json:"state"`
	Secret       *int        `json:"secret"`
}

func TestHealth(t *testing.T) {
	h := newHarness(t)
	rec := h.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNotFound(t *testing.T) {
	h := newHarness(t)
	rec := h.do(http.MethodGet, "/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not_found"}`, rec.Body.String())
}

func TestNewGame(t *testing.T) {
	h := newHarness(t)
	rec := h.do(http.MethodPost, "/game/new", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	res := decode[newGameRes](t, rec)
	assert.NotEmpty(t, res.GameID)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, 1, res.Min)
	assert.Equal(t, 100, res.Max)
	assert.Equal(t, 10, res.Attempts)

	gid, ok := h.srv.parseSession(res.Token)
	require.True(t, ok)
	assert.Equal(t, res.GameID, gid)

	g, err := h.store.Get(context.Background(), res.GameID)
	require.NoError(t, err)
	assert.Equal(t, game.StatePlaying, g.State())
}

func TestGuess_Flow(t *testing.T) {
	h := newHarness(t)
	id, tok := h.newFixedGame(64)

	rec := h.do(http.MethodPost, "/game/guess", tok, guessReq{GameID: id, Guess: "50"})
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[guessBody](t, rec)
	assert.Equal(t, game.TooLow, res.Result)
	assert.Equal(t, 9, res.AttemptsLeft)
	assert.Equal(t, game.StatePlaying, res.State)
	assert.Nil(t, res.Secret, "secret hidden while playing")

	res = decode[guessBody](t, h.do(http.MethodPost, "/game/guess", tok, guessReq{GameID: id, Guess: "abc"}))
	assert.Equal(t, game.Invalid, res.Result)
	assert.Equal(t, "Please enter a valid number", res.Message)
	assert.Equal(t, 9, res.AttemptsLeft)

	res = decode[guessBody](t, h.do(http.MethodPost, "/game/guess", tok, guessReq{GameID: id, Guess: "80"}))
	assert.Equal(t, game.TooHigh, res.Result)

	res = decode[guessBody](t, h.do(http.MethodPost, "/game/guess", tok, guessReq{GameID: id, Guess: "64"}))
	assert.Equal(t, game.Correct, res.Result)
	assert.Equal(t, game.StateWon, res.State)
	assert.Equal(t, 7, res.AttemptsLeft)
	require.NotNil(t, res.Secret)
	assert.Equal(t, 64, *res.Secret)
}

func TestGuess_LossRevealsSecret(t *testing.T) {
	h := newHarness(t)
	id, tok := h.newFixedGame(2)

	var res guessBody
	for i := 0; i < game.MaxAttempts; i++ {
		res = decode[guessBody](t, h.do(http.MethodPost, "/game/guess", tok, guessReq{GameID: id, Guess: "99"}))
	}
	assert.Equal(t, game.StateLost, res.State)
	require.NotNil(t, res.Secret)
	assert.Equal(t, 2, *res.Secret)

	view := decode[gameView](t, h.do(http.MethodGet, "/game/"+id, tok, nil))
	assert.Equal(t, 0, view.AttemptsLeft)
	assert.Equal(t, game.StateLost, view.State)
}

func TestGuess_Auth(t *testing.T) {
	h := newHarness(t)
	id, tok := h.newFixedGame(10)
	otherID, _ := h.newFixedGame(20)

	tests := []struct {
		name  string
		token string
		body  guessReq
	}{
		{"missing token", "", guessReq{GameID: id, Guess: "5"}},
		{"garbage token", "not.a.jwt", guessReq{GameID: id, Guess: "5"}},
		{"token for another game", tok, guessReq{GameID: otherID, Guess: "5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := h.do(http.MethodPost, "/game/guess", tt.token, tt.body)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}

	g, _ := h.store.Get(context.Background(), otherID)
	assert.Equal(t, game.MaxAttempts, g.AttemptsLeft())
}

func TestGuess_WrongSecretOrAlgRejected(t *testing.T) {
	h := newHarness(t)
	id, _ := h.newFixedGame(10)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"gid": id, "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("wrong"))
	require.NoError(t, err)
	rec := h.do(http.MethodPost, "/game/guess", forged, guessReq{GameID: id, Guess: "5"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"gid": id, "exp": time.Now().Add(-time.Minute).Unix(),
	}).SignedString([]byte("test_secret"))
	require.NoError(t, err)
	rec = h.do(http.MethodPost, "/game/guess", expired, guessReq{GameID: id, Guess: "5"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGuess_UnknownGameAndBadJSON(t *testing.T) {
	h := newHarness(t)
	tok, _, err := h.srv.signSession("ghost")
	require.NoError(t, err)

	rec := h.do(http.MethodPost, "/game/guess", tok, guessReq{GameID: "ghost", Guess: "5"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/game/guess", bytes.NewBufferString("{"))
	req.Header.Set("Authorization", "Bearer "+tok)
	bad := httptest.NewRecorder()
	h.srv.Router().ServeHTTP(bad, req)
	assert.Equal(t, http.StatusBadRequest, bad.Code)
}

func TestDaily_NewAndStats(t *testing.T) {
	h := newHarness(t)
	day := time.Date(2025, 7, 4, 15, 0, 0, 0, time.UTC)
	h.srv.daily.now = func() time.Time { return day }
	secret := daily.Number(day, "test_salt", game.MinNumber, game.MaxNumber)

	start := func() newGameRes {
		rec := h.do(http.MethodPost, "/daily/new", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		return decode[newGameRes](t, rec)
	}

	won := start()
	assert.Equal(t, "2025-07-04", won.Date)
	res := decode[guessBody](t, h.do(http.MethodPost, "/game/guess", won.Token,
		guessReq{GameID: won.GameID, Guess: strconv.Itoa(secret)}))
	assert.Equal(t, game.Correct, res.Result)
	// a repeated guess after the win must not be counted twice
	h.do(http.MethodPost, "/game/guess", won.Token, guessReq{GameID: won.GameID, Guess: strconv.Itoa(secret)})

	lost := start()
	wrong := strconv.Itoa(secret%game.MaxNumber + 1)
	for i := 0; i < game.MaxAttempts; i++ {
		h.do(http.MethodPost, "/game/guess", lost.Token, guessReq{GameID: lost.GameID, Guess: wrong})
	}

	tally := decode[daily.Tally](t, h.do(http.MethodGet, "/daily/stats", "", nil))
	assert.Equal(t, daily.Tally{Date: "2025-07-04", Wins: 1, Losses: 1}, tally)

	other := decode[daily.Tally](t, h.do(http.MethodGet, "/daily/stats?date=2025-07-03", "", nil))
	assert.Equal(t, daily.Tally{Date: "2025-07-03"}, other)
}

func TestRegularGamesDoNotAffectDailyStats(t *testing.T) {
	h := newHarness(t)
	id, tok := h.newFixedGame(1)
	h.do(http.MethodPost, "/game/guess", tok, guessReq{GameID: id, Guess: "1"})

	tally := decode[daily.Tally](t, h.do(http.MethodGet, "/daily/stats", "", nil))
	assert.Zero(t, tally.Wins)
	assert.Zero(t, tally.Losses)
}

func TestDemos(t *testing.T) {
	h := newHarness(t)

	list := h.do(http.MethodGet, "/demos", "", nil)
	assert.JSONEq(t, `{"demos":["hello"]}`, list.Body.String())

	run := h.do(http.MethodPost, "/demos/hello", "", nil)
	require.Equal(t, http.StatusOK, run.Code)
	assert.Equal(t, demoRes{Name: "hello", Output: "hi there\n"}, decode[demoRes](t, run))

	missing := h.do(http.MethodPost, "/demos/bogus", "", nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.JSONEq(t, `{"error":"Unknown demo: bogus"}`, missing.Body.String())
}

func TestSweepDropsExpiredGames(t *testing.T) {
	h := newHarness(t)
	id, tok := h.newFixedGame(40)
	dg := decode[newGameRes](t, h.do(http.MethodPost, "/daily/new", "", nil))
	require.Len(t, h.srv.daily.games, 1)

	// within the TTL nothing is removed
	h.srv.sweep(context.Background(), time.Now())
	assert.Equal(t, http.StatusOK, h.do(http.MethodGet, "/game/"+id, tok, nil).Code)

	h.srv.sweep(context.Background(), time.Now().Add(2*time.Hour))
	assert.Equal(t, http.StatusNotFound, h.do(http.MethodGet, "/game/"+id, tok, nil).Code)
	assert.Equal(t, http.StatusNotFound, h.do(http.MethodGet, "/game/"+dg.GameID, dg.Token, nil).Code)
	assert.Empty(t, h.srv.daily.games)

	tally := decode[daily.Tally](t, h.do(http.MethodGet, "/daily/stats", "", nil))
	assert.Zero(t, tally.Wins+tally.Losses)
}

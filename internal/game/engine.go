// internal/game/engine.go
//
// Core game engine for a single number guessing session.
// Responsibilities:
//   - Create new games with a secret drawn from an injected NumberSource.
//   - Validate and classify guesses (numeric, in range).
//   - Track the attempt budget and state transitions: playing → won/lost.
//
// Notes:
//   - Invalid input is an Outcome, never an error, and costs no attempt.
//   - randomID() is a compact hex identifier for correlating server state.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

var (
	msgNotNumber = "Please enter a valid number"
	msgOutRange  = fmt.Sprintf("Please enter a number between %d and %d", MinNumber, MaxNumber)
	msgGameOver  = "The game is over"
)

// New constructs a new game instance.
// If src is nil, the secret is drawn from CryptoSource.
func New(src NumberSource) *Game {
	if src == nil {
		src = CryptoSource{}
	}
	return &Game{
		ID:           randomID(),
		secret:       clamp(src.Number(MinNumber, MaxNumber), MinNumber, MaxNumber),
		attemptsLeft: MaxAttempts,
	}
}

// ProcessGuess validates and classifies a raw line of input, mutating the
// game state for valid guesses only.
//
// Validation rules:
//   - Surrounding whitespace is ignored.
//   - The input must parse as a base-10 unsigned integer, optionally
//     prefixed by a single '+'.
//   - The value must lie in [MinNumber, MaxNumber].
//
// State transitions:
//   - A valid guess consumes one attempt.
//   - Equal to the secret → won.
//   - Otherwise, no attempts left → lost.
func (g *Game) ProcessGuess(raw string) Outcome {
	if g.Finished() {
		return invalid(msgGameOver)
	}
	// one leading '+' is allowed, a sign of any other kind is not
	n, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(raw), "+"), 10, 32)
	if err != nil {
		return invalid(msgNotNumber)
	}
	if n < MinNumber || n > MaxNumber {
		return invalid(msgOutRange)
	}

	g.attemptsLeft--
	guess := int(n)
	switch {
	case guess < g.secret:
		return Outcome{Result: TooLow}
	case guess > g.secret:
		return Outcome{Result: TooHigh}
	default:
		g.won = true
		return Outcome{Result: Correct}
	}
}

// IsGameOver reports whether the attempt budget is exhausted.
func (g *Game) IsGameOver() bool { return g.attemptsLeft == 0 }

// AttemptsLeft returns the number of valid guesses still allowed.
func (g *Game) AttemptsLeft() int { return g.attemptsLeft }

// SecretNumber returns the secret. Only show it to a player once the game
// has finished.
func (g *Game) SecretNumber() int { return g.secret }

// State reports the coarse game state. A correct guess on the last attempt
// is a win.
func (g *Game) State() State {
	switch {
	case g.won:
		return StateWon
	case g.attemptsLeft == 0:
		return StateLost
	default:
		return StatePlaying
	}
}

// Finished reports whether the game reached a terminal state.
func (g *Game) Finished() bool { return g.State() != StatePlaying }

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

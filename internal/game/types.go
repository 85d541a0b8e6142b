// internal/game/types.go
//
// Core type definitions for the number guessing engine.
// Defines:
//   - Result/Outcome: classification of a single guess.
//   - State: coarse game state (playing/won/lost).
//   - Game: state for a single in-progress or finished game.

package game

const (
	MinNumber   = 1   // smallest possible secret
	MaxNumber   = 100 // largest possible secret
	MaxAttempts = 10  // valid guesses allowed per game
)

// Result is the kind of a guess outcome.
// Possible values:
//   - "too_high": the guess is greater than the secret.
//   - "too_low":  the guess is less than the secret.
//   - "correct":  the guess equals the secret.
//   - "invalid":  the input was rejected; no attempt was consumed.
type Result string

const (
	TooHigh Result = "too_high"
	TooLow  Result = "too_low"
	Correct Result = "correct"
	Invalid Result = "invalid"
)

// Outcome is the result of processing one guess.
// Message is only set when Result is Invalid.
type Outcome struct {
	Result  Result `json:"result"`
	Message string `json:"message,omitempty"`
}

func invalid(msg string) Outcome { return Outcome{Result: Invalid, Message: msg} }

// State is the coarse lifecycle state of a game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Game holds the state of a single guessing session.
// The secret and the attempt counter are only reachable through methods so
// the range and budget invariants cannot be broken from outside.
type Game struct {
	ID string // Unique game identifier (random hex string).

	secret       int  // drawn once at construction
	attemptsLeft int  // MaxAttempts down to 0
	won          bool // set by a correct guess
}

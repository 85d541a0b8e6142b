// internal/game/source.go
//
// Pluggable origins for the secret number.
//   - CryptoSource: uniform draw from crypto/rand (the default).
//   - FixedSource: a known value for tests and replays.
// The engine clamps whatever a source returns into [MinNumber, MaxNumber].

package game

import (
	"crypto/rand"
	"math/big"
)

// NumberSource supplies the secret number for a new game.
// Number must return a value in the closed range [min, max].
type NumberSource interface {
	Number(min, max int) int
}

// CryptoSource draws uniformly from crypto/rand.
type CryptoSource struct{}

// Number returns a uniformly random int in [min, max].
// If the system entropy source fails, min is returned.
func (CryptoSource) Number(min, max int) int {
	span := int64(max - min + 1)
	if span <= 0 {
		return min
	}
	n, err := rand.Int(rand.Reader, big.NewInt(span))
	if err != nil {
		return min
	}
	return min + int(n.Int64())
}

// FixedSource always yields the same number. Useful in tests and for
// replaying a known game.
type FixedSource int

func (f FixedSource) Number(min, max int) int { return int(f) }

// clamp pins n into [min, max].
func clamp(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// Package daily derives a deterministic secret number per calendar day so
// every player shares the same puzzle until UTC midnight.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Number returns a deterministic value in [min, max] for a date using
// HMAC(salt, YYYY-MM-DD) mod span.
func Number(date time.Time, salt string, min, max int) int {
	span := max - min + 1
	if span <= 0 {
		return min
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return min + int(n%uint64(span))
}

// Source is a game.NumberSource yielding today's number.
type Source struct {
	Salt string
	Now  func() time.Time // defaults to time.Now
}

func (s Source) Number(min, max int) int {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return Number(now(), s.Salt, min, max)
}

package game

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	g := New(FixedSource(42))
	assert.Equal(t, MaxAttempts, g.AttemptsLeft())
	assert.Equal(t, 42, g.SecretNumber())
	assert.Equal(t, StatePlaying, g.State())
	assert.False(t, g.IsGameOver())
	assert.Len(t, g.ID, 16)
}

func TestNew_DefaultSourceInRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		g := New(nil)
		require.GreaterOrEqual(t, g.SecretNumber(), MinNumber)
		require.LessOrEqual(t, g.SecretNumber(), MaxNumber)
	}
}

func TestNew_ClampsSource(t *testing.T) {
	assert.Equal(t, MinNumber, New(FixedSource(-7)).SecretNumber())
	assert.Equal(t, MaxNumber, New(FixedSource(1000)).SecretNumber())
}

func TestProcessGuess_EveryValueMatchesComparison(t *testing.T) {
	const secret = 37
	for n := MinNumber; n <= MaxNumber; n++ {
		g := New(FixedSource(secret))
		out := g.ProcessGuess(strconv.Itoa(n))

		want := Correct
		if n < secret {
			want = TooLow
		} else if n > secret {
			want = TooHigh
		}
		require.Equal(t, want, out.Result, "guess %d", n)
		require.Empty(t, out.Message)
		require.Equal(t, MaxAttempts-1, g.AttemptsLeft(), "guess %d", n)
	}
}

func TestProcessGuess_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		msg   string
	}{
		{"letters", "abc", msgNotNumber},
		{"empty", "", msgNotNumber},
		{"whitespace", "   \n", msgNotNumber},
		{"negative", "-5", msgNotNumber},
		{"bare plus", "+", msgNotNumber},
		{"double plus", "++5", msgNotNumber},
		{"plus then minus", "+-5", msgNotNumber},
		{"plus zero", "+0", msgOutRange},
		{"decimal", "4.5", msgNotNumber},
		{"overflow", "99999999999999999999", msgNotNumber},
		{"zero", "0", msgOutRange},
		{"above range", "101", msgOutRange},
		{"large in uint32", "4000000000", msgOutRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(FixedSource(50))
			out := g.ProcessGuess(tt.input)
			assert.Equal(t, Invalid, out.Result)
			assert.Equal(t, tt.msg, out.Message)
			assert.Equal(t, MaxAttempts, g.AttemptsLeft())
			assert.Equal(t, StatePlaying, g.State())
		})
	}
}

func TestProcessGuess_LeadingPlus(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Result
	}{
		{"plus sign", "+5", TooLow},
		{"plus sign high", "+99", TooHigh},
		{"plus with spaces", "  +50\n", Correct},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(FixedSource(50))
			out := g.ProcessGuess(tt.input)
			assert.Equal(t, tt.want, out.Result)
			assert.Equal(t, MaxAttempts-1, g.AttemptsLeft())
		})
	}
}

func TestProcessGuess_TrimsInput(t *testing.T) {
	g := New(FixedSource(12))
	assert.Equal(t, Correct, g.ProcessGuess("  12 \r\n").Result)
}

func TestProcessGuess_FirstGuessCorrect(t *testing.T) {
	g := New(FixedSource(73))
	out := g.ProcessGuess("73")
	assert.Equal(t, Outcome{Result: Correct}, out)
	assert.Equal(t, MaxAttempts-1, g.AttemptsLeft())
	assert.Equal(t, StateWon, g.State())
	assert.True(t, g.Finished())
}

func TestProcessGuess_BudgetExhausted(t *testing.T) {
	g := New(FixedSource(100))
	for i := 0; i < MaxAttempts; i++ {
		require.False(t, g.IsGameOver())
		require.Equal(t, TooLow, g.ProcessGuess("1").Result)
	}
	assert.True(t, g.IsGameOver())
	assert.Equal(t, 0, g.AttemptsLeft())
	assert.Equal(t, StateLost, g.State())
}

func TestProcessGuess_InvalidNeverCounts(t *testing.T) {
	g := New(FixedSource(60))
	valid := 0
	inputs := []string{"x", "10", "", "0", "20", "101", "-1", "30", "abc"}
	for _, in := range inputs {
		out := g.ProcessGuess(in)
		if out.Result != Invalid {
			valid++
		}
		require.Equal(t, MaxAttempts-valid, g.AttemptsLeft(), "after %q", in)
	}
	assert.Equal(t, 3, valid)
}

func TestProcessGuess_CorrectOnLastAttemptWins(t *testing.T) {
	g := New(FixedSource(5))
	for i := 0; i < MaxAttempts-1; i++ {
		g.ProcessGuess("6")
	}
	require.Equal(t, 1, g.AttemptsLeft())
	assert.Equal(t, Correct, g.ProcessGuess("5").Result)
	assert.True(t, g.IsGameOver())
	assert.Equal(t, StateWon, g.State())
}

func TestProcessGuess_AfterFinishDoesNotMutate(t *testing.T) {
	g := New(FixedSource(9))
	g.ProcessGuess("9")
	left := g.AttemptsLeft()

	out := g.ProcessGuess("9")
	assert.Equal(t, Invalid, out.Result)
	assert.Equal(t, msgGameOver, out.Message)
	assert.Equal(t, left, g.AttemptsLeft())
	assert.Equal(t, StateWon, g.State())
}

func TestCryptoSource_Span(t *testing.T) {
	assert.Equal(t, 7, CryptoSource{}.Number(7, 7))
	assert.Equal(t, 3, CryptoSource{}.Number(3, 1))
}

// internal/console/play.go
//
// Interactive driver for a guessing game over a line-oriented stream.
// All game rules live in package game; this file only maps outcomes to
// console text and decides when to stop prompting.

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/rusty-dusty/internal/game"
)

// Play runs g to completion, reading one guess per line from in and writing
// the transcript to out. It returns nil once the game is won or lost.
//
// A read failure, including running out of input, is returned as an error
// and the closing line is not printed.
func Play(in io.Reader, out io.Writer, g *game.Game) error {
	fmt.Fprintln(out, "Welcome to the Number Guessing Game!")
	fmt.Fprintf(out, "I'm thinking of a number between %d and %d\n", game.MinNumber, game.MaxNumber)
	fmt.Fprintf(out, "You have %d attempts to guess it.\n", game.MaxAttempts)

	// Lines have no length limit; an oversized line is just an invalid guess.
	rd := bufio.NewReader(in)
	for {
		fmt.Fprint(out, "\nEnter your guess: ")
		line, err := rd.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return fmt.Errorf("read guess: %w", err)
		}

		o := g.ProcessGuess(line)
		log.Debug().
			Str("game", g.ID).
			Str("result", string(o.Result)).
			Int("attemptsLeft", g.AttemptsLeft()).
			Msg("guess")

		switch o.Result {
		case game.TooHigh:
			fmt.Fprintf(out, "Too high! You have %d attempts left.\n", g.AttemptsLeft())
		case game.TooLow:
			fmt.Fprintf(out, "Too low! You have %d attempts left.\n", g.AttemptsLeft())
		case game.Correct:
			fmt.Fprintln(out, "\nCongratulations! You've guessed the number!")
			fmt.Fprintf(out, "You won with %d attempts remaining!\n", g.AttemptsLeft())
			return goodbye(out)
		case game.Invalid:
			fmt.Fprintf(out, "Error: %s\n", o.Message)
			continue
		}

		if g.IsGameOver() {
			fmt.Fprintln(out, "\nGame Over! You've run out of attempts.")
			fmt.Fprintf(out, "The number was: %d\n", g.SecretNumber())
			return goodbye(out)
		}
	}
}

func goodbye(out io.Writer) error {
	fmt.Fprintln(out, "\nThanks for playing!")
	return nil
}

package demos

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"

	"github.com/robalobadob/rusty-dusty/assets"
)

var (
	errDivideByZero = errors.New("cannot divide by zero")
	errEmptyFile    = errors.New("no number in file")
)

func divide(a, b int) (int, error) {
	if b == 0 {
		return 0, errDivideByZero
	}
	return a / b, nil
}

// readError tags which stage of readNumber failed.
type readError struct {
	Stage string // "io" or "parse"
	Err   error
}

func (e *readError) Error() string { return e.Stage + " error: " + e.Err.Error() }
func (e *readError) Unwrap() error { return e.Err }

func readNumber(name string) (int, error) {
	lines, err := assets.Lines(name)
	if err != nil {
		return 0, &readError{Stage: "io", Err: err}
	}
	if len(lines) == 0 {
		return 0, &readError{Stage: "parse", Err: errEmptyFile}
	}
	n, err := strconv.Atoi(lines[0])
	if err != nil {
		return 0, &readError{Stage: "parse", Err: err}
	}
	return n, nil
}

func errorsDemo(w io.Writer) {
	fmt.Fprintln(w, "Errors")

	if _, err := assets.ReadText("hello.txt"); errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(w, "hello.txt is missing, which is a normal, checkable condition")
	}

	if s, err := assets.ReadText("text.txt"); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
	} else {
		fmt.Fprintf(w, "File contents: %s", s)
	}

	if q, err := divide(10, 2); err == nil {
		fmt.Fprintf(w, "Result: %d\n", q)
	}
	if _, err := divide(1, 0); errors.Is(err, errDivideByZero) {
		fmt.Fprintf(w, "Error: %v\n", err)
	}

	for _, name := range []string{"numbers.txt", "bad_number.txt", "nothing.txt"} {
		n, err := readNumber(name)
		if err != nil {
			wrapped := fmt.Errorf("load %s: %w", name, err)
			var re *readError
			if errors.As(wrapped, &re) {
				fmt.Fprintf(w, "An error occurred (%s stage): %v\n", re.Stage, wrapped)
			}
			continue
		}
		fmt.Fprintf(w, "The number is: %d\n", n)
	}

	func() {
		defer func() {
			if r := recover(); r != nil {
				fmt.Fprintf(w, "Recovered from panic: %v\n", r)
			}
		}()
		var idx []int
		_ = idx[3]
	}()
	fmt.Fprintln(w)
}

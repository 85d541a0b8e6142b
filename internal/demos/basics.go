package demos

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

func variables(w io.Writer) {
	fmt.Fprintln(w, "\nVariables")
	x := 5
	y := 10
	const rating = 1889
	fmt.Fprintf(w, "x = %d, y = %d\n", x, y)
	y++
	fmt.Fprintf(w, "y = %d, Rating = %d\n\n", y, rating)

	// shadowing
	v := 10
	v = v + 1
	{
		v := v * 2
		fmt.Fprintf(w, "The value of v in the inner scope is: %d\n", v)
	}
	fmt.Fprintf(w, "The value of v is: %d\n\n", v)

	three, thirty, threeHundred := 0b11, 0o36, 0x12C
	fmt.Fprintf(w, "base 10: %d %d %d\n", three, thirty, threeHundred)
	fmt.Fprintf(w, "base 2: %b %b %b\n", three, thirty, threeHundred)
	fmt.Fprintf(w, "base 8: %o %o %o\n", three, thirty, threeHundred)
	fmt.Fprintf(w, "base 16: %x %x %x\n\n", three, thirty, threeHundred)

	var a int32 = 10
	var b uint16 = 100
	if a < int32(b) {
		fmt.Fprintln(w, "Ten is less than one hundred.")
	}
	var big uint64 = math.MaxUint32 + 1
	if big > math.MaxInt32 {
		fmt.Fprintf(w, "%d does not fit in int32\n", big)
	}

	c := complex(2.1, -1.2) + complex(11.1, 22.2)
	fmt.Fprintf(w, "%g + %gi\n", real(c), imag(c))
}

func dataTypes(w io.Writer) {
	fmt.Fprintln(w, "Data-Types")
	arr := [5]int{1, 2, 3, 4, 5}
	tup := struct {
		Name string
		Age  int
		Year string
	}{"Deep", 17, "2004"}
	floatVal := 10.7
	isAlive := true
	var r rune = 'G'
	var by byte = 'o'

	fmt.Fprintf(w, "float = %v, bool = %v\n", floatVal, isAlive)
	fmt.Fprintf(w, "arr = %v, struct = %+v\n", arr, tup)
	fmt.Fprintf(w, "rune = %c (%d), byte = %c (%d)\n", r, r, by, by)
	fmt.Fprintf(w, "zero values: %q %d %v %v\n\n", "", 0, false, []int(nil) == nil)
}

func multiplyAndAdd(a, b int) (int, int) { return a * b, a + b }

func tuples(w io.Writer) {
	fmt.Fprintln(w, "Tuples!")
	product, sum := multiplyAndAdd(10, 20)
	fmt.Fprintf(w, "Product = %d, Sum = %d\n", product, sum)

	_, onlySum := multiplyAndAdd(11, 22)
	fmt.Fprintf(w, "Sum = %d\n\n", onlySum)
}

func stringsDemo(w io.Writer) {
	fmt.Fprintln(w, "Strings:")
	literal := "  Hello, world!  "
	fmt.Fprintf(w, "String literal: '%s'\n", literal)
	raw := `This is a "raw" string
    with \ backslashes`
	fmt.Fprintf(w, "Raw string: %s\n", raw)
	fmt.Fprintf(w, "Slice of string literal [2:7]: '%s'\n", literal[2:7])
	fmt.Fprintf(w, "Trimmed: '%s'\n", strings.TrimSpace(literal))

	fmt.Fprintln(w, "\nBuilding:")
	var sb strings.Builder
	sb.WriteString("Hello")
	sb.WriteByte(' ')
	sb.WriteString("world!")
	fmt.Fprintf(w, "Builder: %s\n", sb.String())
	fmt.Fprintf(w, "Concatenated: %s\n", "Hello, "+"world!")
	fmt.Fprintf(w, "Formatted: %s\n", fmt.Sprintf("%s %s!", "Hello", "world"))

	fmt.Fprintln(w, "\nMethods:")
	ex := "  Hello, World!  "
	fmt.Fprintf(w, "Length: %d\n", len(ex))
	fmt.Fprintf(w, "Contains 'World': %v\n", strings.Contains(ex, "World"))
	fmt.Fprintf(w, "Replaced: %s\n", strings.ReplaceAll(ex, "World", "Go"))
	fmt.Fprintf(w, "To upper: %s\n", strings.ToUpper(ex))
	fmt.Fprintf(w, "Index of 'World': %d\n", strings.Index(ex, "World"))
	for _, part := range strings.Split(ex, ",") {
		fmt.Fprintf(w, "  '%s'\n", strings.TrimSpace(part))
	}
	for _, part := range strings.Fields(ex) {
		fmt.Fprintf(w, "  field '%s'\n", part)
	}

	fmt.Fprintln(w, "\nConversion:")
	if n, err := strconv.Atoi("42"); err == nil {
		fmt.Fprintf(w, "Parsed '42' to number: %d\n", n)
	}
	if _, err := strconv.Atoi("forty-two"); err != nil {
		fmt.Fprintf(w, "Parse failure: %v\n", err)
	}

	fmt.Fprintln(w, "\nUnicode:")
	text := "Hello, 世界"
	fmt.Fprintf(w, "bytes=%d runes=%d\n", len(text), utf8.RuneCountInString(text))
	for i, c := range text {
		fmt.Fprintf(w, "%d:%c ", i, c)
	}
	fmt.Fprintln(w)
	for _, line := range strings.Split("Line 1\nLine 2\nLine 3", "\n") {
		fmt.Fprintf(w, "  '%s'\n", line)
	}
	fmt.Fprintf(w, "Count of 'hello': %d\n\n", strings.Count("hello hello", "hello"))
}

func controlFlow(w io.Writer) {
	fmt.Fprintln(w, "Loops")
	fmt.Fprint(w, "Basic range: ")
	for n := 1; n <= 5; n++ {
		fmt.Fprintf(w, "%d ", n)
	}
	fmt.Fprintln(w)

	numbers := []int{1, 2, 3, 4, 5}
	fmt.Fprint(w, "Enumerate: ")
	for i, v := range numbers {
		fmt.Fprintf(w, "%d:%d ", i, v)
	}
	fmt.Fprintln(w)

	fmt.Fprint(w, "While-style: ")
	counter := 1
	for counter <= 5 {
		fmt.Fprintf(w, "%d ", counter)
		counter++
	}
	fmt.Fprintln(w)

	fmt.Fprint(w, "Labeled break: ")
outer:
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i*j == 2 {
				break outer
			}
			fmt.Fprintf(w, "(%d,%d) ", i, j)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "\nIf/Else")
	age, hasLicense := 25, true
	if age >= 18 && hasLicense {
		fmt.Fprintln(w, "Can drive")
	} else if age >= 18 {
		fmt.Fprintln(w, "Need to get a license")
	} else {
		fmt.Fprintln(w, "Too young to drive")
	}
	limits := map[string]int{"max": 3}
	if max, ok := limits["max"]; ok {
		fmt.Fprintf(w, "Maximum is configured to be %d\n", max)
	}

	fmt.Fprintln(w, "\nSwitch")
	switch n := 13; n {
	case 1:
		fmt.Fprintln(w, "One")
	case 2, 3, 5, 7, 11, 13:
		fmt.Fprintln(w, "This is a prime number")
	default:
		fmt.Fprintln(w, "Something else")
	}
	grade := 85
	switch {
	case grade >= 90:
		fmt.Fprintln(w, "A")
	case grade >= 80:
		fmt.Fprintln(w, "B")
	case grade >= 70:
		fmt.Fprintln(w, "C")
	default:
		fmt.Fprintln(w, "F")
	}
	x, y := 2, -2
	switch {
	case x == y:
		fmt.Fprintln(w, "Equal")
	case x+y == 0:
		fmt.Fprintln(w, "Sum to zero")
	case x%2 == 0:
		fmt.Fprintln(w, "First is even")
	}
	fmt.Fprintln(w)
}

package demos

import (
	"cmp"
	"fmt"
	"io"
	"strings"
)

// largest returns the greatest element of a non-empty slice.
func largest[T cmp.Ordered](list []T) T {
	m := list[0]
	for _, v := range list[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

type pair[T any, U fmt.Stringer] struct {
	X T
	Y U
}

func (p pair[T, U]) first(w io.Writer) T {
	fmt.Fprintf(w, "Pair y: %s\n", p.Y)
	return p.X
}

type celsius float64

func (c celsius) String() string { return fmt.Sprintf("%.1f°C", float64(c)) }

func generics(w io.Writer) {
	fmt.Fprintln(w, "Generics")
	fmt.Fprintf(w, "The largest number is %d\n", largest([]int{34, 50, 25, 100, 65}))
	fmt.Fprintf(w, "The largest char is %c\n", largest([]rune{'y', 'm', 'a', 'q'}))
	fmt.Fprintf(w, "The largest word is %s\n", largest([]string{"go", "generics", "zebra"}))

	p := pair[int, celsius]{X: 5, Y: 4}
	fmt.Fprintf(w, "Pair x: %d\n\n", p.first(w))
}

type animal interface {
	MakeSound() string
}

type describer interface {
	Description() string
}

type walker interface {
	Walk() string
}

type dog struct{ Name string }

func (d dog) MakeSound() string   { return "Woof!" }
func (d dog) Description() string { return "A dog named " + d.Name }
func (d dog) Walk() string        { return d.Name + " trots along" }

type cat struct {
	Name string
	Age  uint8
}

func (c cat) MakeSound() string { return "Meow" }

// describe falls back to a default when the optional interface is missing.
func describe(a animal) string {
	if d, ok := a.(describer); ok {
		return d.Description()
	}
	return "Just a regular animal"
}

// activities requires both behaviours, like a multi-bound generic.
func activities[T interface {
	animal
	walker
}](a T) []string {
	return []string{a.MakeSound(), a.Walk()}
}

type countdown struct{ count int }

func (c *countdown) next() (int, bool) {
	if c.count == 0 {
		return 0, false
	}
	c.count--
	return c.count, true
}

type fahrenheit float64

func (f fahrenheit) celsius() celsius { return celsius((float64(f) - 32) * 5 / 9) }

func traits(w io.Writer) {
	fmt.Fprintln(w, "Interfaces")
	buddy := dog{Name: "Buddy"}
	fmt.Fprintln(w, buddy.MakeSound())
	fmt.Fprintln(w, describe(buddy))
	fmt.Fprintln(w, describe(cat{Name: "Tom", Age: 3}))
	fmt.Fprintln(w, strings.Join(activities(buddy), " / "))

	chorus := []animal{dog{Name: "Rex"}, cat{Name: "Kit"}, dog{Name: "Max"}}
	for _, a := range chorus {
		fmt.Fprintln(w, a.MakeSound())
	}

	c := &countdown{count: 5}
	for v, ok := c.next(); ok; v, ok = c.next() {
		fmt.Fprintf(w, "%d ", v)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Celsius: %s\n", fahrenheit(98.6).celsius())
	var s fmt.Stringer = celsius(21)
	fmt.Fprintf(w, "Stringer: %v\n\n", s)
}

func longest(x, y string) string {
	if len(x) > len(y) {
		return x
	}
	return y
}

type excerpt struct{ Part string }

func (e excerpt) level() int { return 3 }

func firstSentence(text string) string {
	if i := strings.IndexByte(text, '.'); i >= 0 {
		return text[:i+1]
	}
	return text
}

func counter() func() int {
	n := 0
	return func() int {
		n++
		return n
	}
}

func lifetimes(w io.Writer) {
	fmt.Fprintln(w, "\n1. Basic Reference Example:")
	original := "hello"
	ref := &original
	fmt.Fprintf(w, "Original: %s\nReference: %s\n", original, *ref)

	fmt.Fprintln(w, "\n2. Function returning one of its arguments:")
	fmt.Fprintf(w, "Longest string is: %s\n", longest("short string", "longer string"))

	fmt.Fprintln(w, "\n3. Struct holding a substring:")
	novel := "Call me Ishmael. Some years ago..."
	e := excerpt{Part: firstSentence(novel)}
	fmt.Fprintf(w, "Excerpt: %s\nImportance level: %d\n", e.Part, e.level())

	fmt.Fprintln(w, "\n4. Escaping variables outlive their scope:")
	next := counter()
	next()
	fmt.Fprintf(w, "Closure still sees its counter: %d\n\n", next())
}

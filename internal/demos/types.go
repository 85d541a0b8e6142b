package demos

import (
	"fmt"
	"io"
	"math"
)

func option(w io.Writer) {
	fmt.Fprintln(w, "Optional values")
	arr := []int{1, 3, 4}
	if first, ok := firstOf(arr); ok {
		fmt.Fprintf(w, "First Element: %d\n", first)
	}
	if _, ok := firstOf(nil); !ok {
		fmt.Fprintln(w, "List is Empty")
	}

	var name *string
	fmt.Fprintf(w, "nil pointer is absent: %v\n", name == nil)
	s := "gopher"
	name = &s
	fmt.Fprintf(w, "present: %s\n", *name)

	fmt.Fprintln(w, "\nChecking if numbers are even:")
	for _, n := range []int{2, 3, 4, 7, -1} {
		if n%2 == 0 {
			fmt.Fprintf(w, "%d is even\n", n)
		} else {
			fmt.Fprintf(w, "%d is odd\n", n)
		}
	}
	fmt.Fprintln(w)
}

// firstOf is the comma-ok form of "maybe a value".
func firstOf(xs []int) (int, bool) {
	if len(xs) == 0 {
		return 0, false
	}
	return xs[0], true
}

type point struct {
	X, Y float64
}

func newPoint(x, y float64) point { return point{X: x, Y: y} }

func (p point) distanceFromOrigin() float64 { return math.Hypot(p.X, p.Y) }

func (p *point) moveBy(dx, dy float64) {
	p.X += dx
	p.Y += dy
}

type person struct {
	Name string
	Age  int
}

func defaultPerson() person { return person{Name: "John Doe", Age: 30} }

func structs(w io.Writer) {
	fmt.Fprintln(w, "Structs")
	p := point{X: 1, Y: 2}
	p2 := p
	p2.X = 5
	fmt.Fprintf(w, "New Point: %+v (original %+v)\n", p2, p)

	np := newPoint(3, 4)
	fmt.Fprintf(w, "Distance from (0, 0): %g\n", np.distanceFromOrigin())
	np.moveBy(1, 1)
	fmt.Fprintf(w, "Moved: %+v\n", np)

	type color struct{ R, G, B uint8 }
	black := color{}
	fmt.Fprintf(w, "Zero-value color: %v\n", black)

	dp := defaultPerson()
	fmt.Fprintf(w, "Default person: %+v, equal to copy: %v\n\n", dp, dp == defaultPerson())
}

// message is a closed set of variants expressed as an interface.
type message interface{ describe() string }

type (
	quitMsg  struct{}
	moveMsg  struct{ X, Y int }
	writeMsg string
	colorMsg struct{ R, G, B uint8 }
)

func (quitMsg) describe() string    { return "Quit" }
func (m moveMsg) describe() string  { return fmt.Sprintf("Move to (%d, %d)", m.X, m.Y) }
func (m writeMsg) describe() string { return "Write: " + string(m) }
func (m colorMsg) describe() string {
	return fmt.Sprintf("Change color: RGB(%d,%d,%d)", m.R, m.G, m.B)
}

type status uint8

const (
	inactive status = iota
	active
	pending
)

func (s status) String() string {
	switch s {
	case active:
		return "Active"
	case inactive:
		return "Inactive"
	case pending:
		return "Pending"
	}
	return fmt.Sprintf("status(%d)", s)
}

func enums(w io.Writer) {
	fmt.Fprintln(w, "Enums")
	msgs := []message{quitMsg{}, moveMsg{10, 20}, writeMsg("hello"), colorMsg{255, 0, 128}}
	for _, m := range msgs {
		fmt.Fprintln(w, m.describe())
	}
	for _, m := range msgs {
		if t, ok := m.(writeMsg); ok {
			fmt.Fprintf(w, "Text message: %s\n", string(t))
		}
	}
	fmt.Fprintf(w, "Statuses: %v %v %v (pending=%d)\n\n", active, inactive, pending, uint8(pending))
}

type characterClass int

const (
	warrior characterClass = iota
	mage
	rogue
)

type character struct {
	Name   string
	Health uint32
	Mana   uint32
	Class  characterClass
	Level  int
}

func newCharacter(name string, class characterClass) *character {
	c := &character{Name: name, Class: class, Level: 1}
	switch class {
	case warrior:
		c.Health, c.Mana = 100, 20
	case mage:
		c.Health, c.Mana = 60, 80
	case rogue:
		c.Health, c.Mana = 80, 40
	}
	return c
}

type action any

type attack struct {
	Damage uint32
	Target string
}

type castSpell struct {
	Name string
	Cost uint32
}

type dodge struct{}

type heal struct{ Amount uint32 }

func (c *character) perform(a action) string {
	switch a := a.(type) {
	case attack:
		return fmt.Sprintf("%s attacks %s for %d damage", c.Name, a.Target, a.Damage)
	case castSpell:
		if c.Mana < a.Cost {
			return fmt.Sprintf("%s lacks mana for %s", c.Name, a.Name)
		}
		c.Mana -= a.Cost
		return fmt.Sprintf("%s casts %s (%d mana left)", c.Name, a.Name, c.Mana)
	case dodge:
		return c.Name + " dodges"
	case heal:
		c.Health += a.Amount
		return fmt.Sprintf("%s heals to %d", c.Name, c.Health)
	default:
		return "unknown action"
	}
}

func compoundTypes(w io.Writer) {
	fmt.Fprintln(w, "Compound types")
	m := newCharacter("Merlin", mage)
	fmt.Fprintf(w, "%+v\n", *m)
	for _, a := range []action{
		castSpell{"Fireball", 30},
		castSpell{"Meteor", 60},
		attack{Damage: 12, Target: "Goblin"},
		dodge{},
		heal{Amount: 15},
	} {
		fmt.Fprintln(w, m.perform(a))
	}
	fmt.Fprintln(w)
}

func calculateLength(s string) (string, int) { return s, len(s) }

func appendSuffix(s *string) { *s += "deep" }

func own(w io.Writer) {
	fmt.Fprintln(w, "Values, pointers and copies")
	s1 := "Night"
	s2 := s1
	fmt.Fprintf(w, "Strings copy by value: %s %s\n", s1, s2)

	s, n := calculateLength("Fury")
	fmt.Fprintf(w, "The length of '%s' is %d.\n", s, n)

	k := "kaso"
	appendSuffix(&k)
	fmt.Fprintf(w, "Mutated through a pointer: %s\n", k)

	a := []int{1, 2, 3}
	b := a
	b[0] = 99
	fmt.Fprintf(w, "Slices share backing arrays: a=%v b=%v\n", a, b)
	c := append([]int(nil), a...)
	c[1] = 0
	fmt.Fprintf(w, "Explicit copy is independent: a=%v c=%v\n", a, c)

	x, y := 10, 20
	x, y = y, x
	fmt.Fprintf(w, "Swapped: x=%d y=%d\n\n", x, y)
}

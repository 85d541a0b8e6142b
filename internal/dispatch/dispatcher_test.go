package dispatch

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func printer(msg string) Action {
	return func(w io.Writer) { fmt.Fprintln(w, msg) }
}

func TestRegistry_LookupAndNames(t *testing.T) {
	r := NewRegistry(
		Entry{"variables", printer("v1")},
		Entry{"array", printer("a")},
		Entry{"variables", printer("v2")},
	)
	assert.Equal(t, []string{"variables", "array"}, r.Names())

	a, ok := r.Lookup("variables")
	require.True(t, ok)
	var buf bytes.Buffer
	a(&buf)
	assert.Equal(t, "v2\n", buf.String())

	_, ok = r.Lookup("Variables")
	assert.False(t, ok, "lookup is exact")
	_, ok = r.Lookup("")
	assert.False(t, ok)
}

func TestRegistry_NamesIsACopy(t *testing.T) {
	r := NewRegistry(Entry{"a", printer("a")})
	names := r.Names()
	names[0] = "mutated"
	assert.Equal(t, []string{"a"}, r.Names())
}

func TestDispatcher_RunsInOrderAndSkipsUnknown(t *testing.T) {
	var buf bytes.Buffer
	d := &Dispatcher{
		Registry: NewRegistry(
			Entry{"variables", printer("running variables")},
			Entry{"array", printer("running array")},
		),
		Out:     &buf,
		Program: "rusty-dusty",
	}
	d.Run([]string{"variables", "bogus", "array"})

	assert.Equal(t, "running variables\nUnknown demo: bogus\nrunning array\n", buf.String())
}

func TestDispatcher_DuplicatesRunEachTime(t *testing.T) {
	var buf bytes.Buffer
	calls := 0
	d := &Dispatcher{
		Registry: NewRegistry(Entry{"own", func(io.Writer) { calls++ }}),
		Out:      &buf,
	}
	d.Run([]string{"own", "own", "own"})
	assert.Equal(t, 3, calls)
	assert.Empty(t, buf.String())
}

func TestDispatcher_EmptyPrintsUsage(t *testing.T) {
	var buf bytes.Buffer
	called := false
	d := &Dispatcher{
		Registry: NewRegistry(Entry{"variables", func(io.Writer) { called = true }}),
		Out:      &buf,
		Program:  "rusty-dusty",
	}
	d.Run(nil)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Usage: rusty-dusty <demo_name> [<demo_name> ...]", lines[0])
	assert.Equal(t, "Example: rusty-dusty variables data_types vector", lines[1])
	assert.False(t, called)
}

func TestDispatcher_AllUnknown(t *testing.T) {
	var buf bytes.Buffer
	d := &Dispatcher{Registry: NewRegistry(), Out: &buf}
	d.Run([]string{"x", "y"})
	assert.Equal(t, "Unknown demo: x\nUnknown demo: y\n", buf.String())
}

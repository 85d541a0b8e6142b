// internal/dispatch/registry.go
//
// Name-keyed registry of demo actions.
// The registry is built once at startup and never mutated afterwards, so it
// can be shared freely between goroutines.

package dispatch

import "io"

// Action is a self-contained demo routine. It takes no input and prints its
// walkthrough to w.
type Action func(w io.Writer)

// Entry binds a demo token to its action.
type Entry struct {
	Name   string
	Action Action
}

// Registry resolves demo tokens to actions.
type Registry struct {
	actions map[string]Action
	names   []string // registration order, without duplicates
}

// NewRegistry builds a read-only registry. When a name appears more than
// once, the last entry wins and the name keeps its first position.
func NewRegistry(entries ...Entry) *Registry {
	r := &Registry{actions: make(map[string]Action, len(entries))}
	for _, e := range entries {
		if _, seen := r.actions[e.Name]; !seen {
			r.names = append(r.names, e.Name)
		}
		r.actions[e.Name] = e.Action
	}
	return r
}

// Lookup returns the action registered under name (exact match).
func (r *Registry) Lookup(name string) (Action, bool) {
	a, ok := r.actions[name]
	return a, ok
}

// Names lists the valid tokens in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Package demos holds the self-contained example routines run by the
// rusty-dusty dispatcher. Each routine prints a short walkthrough of one Go
// idiom to the writer it is given and keeps no state between runs.
package demos

import "github.com/robalobadob/rusty-dusty/internal/dispatch"

// Catalog returns the registry of every demo, in the order they are listed
// by the usage and /demos endpoints.
func Catalog() *dispatch.Registry {
	return dispatch.NewRegistry(
		// basics
		dispatch.Entry{Name: "variables", Action: variables},
		dispatch.Entry{Name: "data_types", Action: dataTypes},
		dispatch.Entry{Name: "array", Action: array},
		dispatch.Entry{Name: "tuples", Action: tuples},
		dispatch.Entry{Name: "strings", Action: stringsDemo},
		dispatch.Entry{Name: "control_flow", Action: controlFlow},
		dispatch.Entry{Name: "errors", Action: errorsDemo},
		dispatch.Entry{Name: "option", Action: option},
		dispatch.Entry{Name: "compound_types", Action: compoundTypes},
		dispatch.Entry{Name: "structs", Action: structs},
		dispatch.Entry{Name: "enums", Action: enums},

		// values and pointers
		dispatch.Entry{Name: "own", Action: own},

		// collections
		dispatch.Entry{Name: "vector", Action: vector},
		dispatch.Entry{Name: "hashmap", Action: hashmap},
		dispatch.Entry{Name: "btreemap", Action: btreemap},
		dispatch.Entry{Name: "hashset", Action: hashset},

		// intermediate
		dispatch.Entry{Name: "generics", Action: generics},
		dispatch.Entry{Name: "traits", Action: traits},
		dispatch.Entry{Name: "lifetimes", Action: lifetimes},

		// advanced
		dispatch.Entry{Name: "iter_closure", Action: iterClosure},
		dispatch.Entry{Name: "concurrency", Action: concurrency},
	)
}

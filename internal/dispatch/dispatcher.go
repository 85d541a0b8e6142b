package dispatch

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
)

// Dispatcher runs demos named on the command line.
type Dispatcher struct {
	Registry *Registry
	Out      io.Writer // console sink shared by all actions
	Program  string    // shown in the usage text
}

// Run resolves each token in order and invokes the matching action.
// Unknown tokens are reported and skipped; they never stop the batch.
// With no tokens, only the usage text is printed.
func (d *Dispatcher) Run(tokens []string) {
	if len(tokens) == 0 {
		d.usage()
		return
	}
	for _, tok := range tokens {
		action, ok := d.Registry.Lookup(tok)
		log.Debug().Str("demo", tok).Bool("found", ok).Msg("dispatch")
		if !ok {
			fmt.Fprintf(d.Out, "Unknown demo: %s\n", tok)
			continue
		}
		action(d.Out)
	}
}

func (d *Dispatcher) usage() {
	fmt.Fprintf(d.Out, "Usage: %s <demo_name> [<demo_name> ...]\n", d.Program)
	fmt.Fprintf(d.Out, "Example: %s variables data_types vector\n", d.Program)
}

// cmd/rusty-dusty/main.go
//
// Runs the named language demos in order, e.g.
//
//	rusty-dusty variables data_types vector
package main

import (
	"os"

	"github.com/robalobadob/rusty-dusty/internal/config"
	"github.com/robalobadob/rusty-dusty/internal/demos"
	"github.com/robalobadob/rusty-dusty/internal/dispatch"
)

func main() {
	cfg := config.Load("warn")
	config.SetupLogging(cfg.LogLevel, os.Stderr, true)

	d := &dispatch.Dispatcher{
		Registry: demos.Catalog(),
		Out:      os.Stdout,
		Program:  "rusty-dusty",
	}
	d.Run(os.Args[1:])
}

// Package log establishes the logging convention for sixfiveoh: a single
// standard-library logger, prefixed so its output is distinguishable from
// guest program output on the shared terminal.
package log

import (
	"log"
	"os"
)

var std = log.New(os.Stderr, "sixfiveoh: ", log.Ltime)

// Default returns the package-wide logger used by the core.
func Default() *log.Logger { return std }

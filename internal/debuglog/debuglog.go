// Package debuglog prints diagnostics when --debug is given.
package debuglog

import (
	"os"
	"sync/atomic"

	"github.com/shu-go/nmfmt"
	"github.com/shu-go/rog"
)

var enabled atomic.Bool

func Enable(on bool) {
	enabled.Store(on)
}

func Enabled() bool {
	return enabled.Load()
}

func Printf(format string, args ...any) {
	if enabled.Load() {
		rog.Printf(format, args...)
	}
}

// Named prints format with $name placeholders filled from m.
func Named(format string, m nmfmt.M) {
	if enabled.Load() {
		nmfmt.Fprintf(os.Stderr, format, m)
	}
}

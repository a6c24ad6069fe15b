/*
Package gradual computes integer square roots of gradually changing values.

A value changes gradually if each step is small relative to the value
itself, the way a sensor reading or a running total changes. For such
sequences the integer square root moves slowly — usually by 0 or 1 per
step — and this package exploits that: it remembers the previous root s
together with the window [s², (s+1)²−1] of values it is valid for, and
re-validates the root by sliding the window instead of recomputing from
scratch.

Two API flavors are provided. Tracker owns the value and applies checked
absolute and relative mutations to it:

    t := gradual.New(uint64(100))          // root is 10
    root, err := t.Add(21)                 // n = 121, root = 11

The mapper functions (Changing, Ascending, Descending, ChangingNearest)
instead return a closure that maps a stream of values to their roots,
for callers that already own the value:

    toIsqrt := gradual.Changing[uint16, uint8](0)
    for _, sample := range samples {
        magnitudes = append(magnitudes, toIsqrt(sample))
    }

Correctness does not depend on the gradual-change assumption: a far jump
degrades to a longer walk or an internal full recomputation, never to a
wrong root.

All types in this package are plain single-owner values. Sharing one
across goroutines requires external synchronization.

Status

Work in progress.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gradual

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'isqrt.gradual'.
func tracer() tracing.Trace {
	return tracing.Select("isqrt.gradual")
}

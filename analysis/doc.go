/*
Package analysis computes FIRST and FOLLOW sets for a ll1bench.Grammar,
checks it for LL(1) conflicts, and builds its predictive parse table.

The fixed-point loops in First and Follow are worklist algorithms over
value sets, adapted from the closure/goto-set construction in gorgo's
lr.LRAnalysis: correctness depends only on monotonicity, so "repeat
until nothing changed" is sufficient.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package analysis

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'll1bench.analysis'.
func tracer() tracing.Trace {
	return tracing.Select("ll1bench.analysis")
}

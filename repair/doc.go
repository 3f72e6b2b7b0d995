/*
Package repair proposes grammar transformations — direct left-recursion
elimination and left-factoring — that may remove an LL(1) conflict reported
by package analysis. It never mutates the Grammar it reads; suggestions are
textual, rendered production strings for a human or a presenter to review.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package repair

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'll1bench.repair'.
func tracer() tracing.Trace {
	return tracing.Select("ll1bench.repair")
}

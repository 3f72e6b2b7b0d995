package analysis

import (
	"github.com/npillmayer/ll1bench"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// FirstMap is a total mapping from nonterminal name to the set of
// terminal display values that can begin a string it derives, plus "ε"
// if it can derive the empty string.
type FirstMap map[string]*Set

// First computes FIRST(A) for every nonterminal A of g, by worklist
// fixed point: initialize every set empty, then repeatedly scan every
// rule's alternatives, extending FIRST(head) by FIRST(alternative),
// until a full pass leaves every set unchanged. Termination is
// guaranteed because every set is a finite subset of (terminals ∪ {ε})
// and only grows.
//
// This mirrors the closure/goto worklist loops of gorgo's
// lr.LRAnalysis.closureSet: "repeat until nothing changed" is correct
// here for the same reason it is there — the update function is monotone.
func First(g *ll1bench.Grammar) FirstMap {
	f := make(FirstMap, len(g.Nonterminals()))
	for _, nt := range g.Nonterminals() {
		f[nt] = newSet()
	}

	changed := true
	for changed {
		changed = false
		for _, r := range g.Rules() {
			for _, alt := range r.Alternatives {
				s := FirstOfSequence(g, f, alt.Symbols)
				if f[r.Head].addAll(s) {
					changed = true
				}
			}
		}
	}
	return f
}

// FirstOfSequence computes FIRST(X1 X2 ... Xn) for an arbitrary symbol
// sequence, given the (possibly still-growing) FirstMap f. It is
// exported because the FOLLOW engine, the LL(1) checker and the
// parse-table builder all need the identical definition.
func FirstOfSequence(g *ll1bench.Grammar, f FirstMap, seq []ll1bench.Symbol) *Set {
	result := newSet()
	if len(seq) == 0 {
		result.add(epsilonMarker)
		return result
	}

	for _, sym := range seq {
		switch {
		case sym.IsEpsilon():
			result.add(epsilonMarker)
			return result
		case sym.IsTerminal():
			result.add(sym.Display())
			return result
		case sym.IsNonterminal():
			symFirst, known := f[sym.Name()]
			if !known {
				// Missing-rule rescue: an undeclared identifier used as
				// though it were a nonterminal is treated as a terminal
				// whose display value is its own name.
				result.add(sym.Name())
				return result
			}
			result.addAll(symFirst.WithoutEpsilon())
			if !symFirst.Has(epsilonMarker) {
				return result
			}
			// symFirst contains ε: continue scanning the rest of seq.
		}
	}
	// Every symbol in seq was nullable.
	result.add(epsilonMarker)
	return result
}

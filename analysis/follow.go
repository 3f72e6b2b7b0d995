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

// FollowMap is a total mapping from nonterminal name to the set of
// terminal display values (plus "$") that can immediately follow it in
// some sentential form. A FollowMap never contains "ε".
type FollowMap map[string]*Set

// Follow computes FOLLOW(A) for every nonterminal A of g, given its
// FirstMap, by worklist fixed point: FOLLOW(start) begins containing
// "$"; for every rule A -> X1...Xn and every position i where Xi is a
// nonterminal B, FOLLOW(B) is extended by FIRST(Xi+1...Xn)\{ε}, and by
// FOLLOW(A) as well if that suffix is empty or nullable.
func Follow(g *ll1bench.Grammar, f FirstMap) FollowMap {
	fw := make(FollowMap, len(g.Nonterminals()))
	for _, nt := range g.Nonterminals() {
		fw[nt] = newSet()
	}
	fw[g.Start()].add(eofMarker)

	changed := true
	for changed {
		changed = false
		for _, r := range g.Rules() {
			head := r.Head
			for _, alt := range r.Alternatives {
				syms := alt.Symbols
				for i, sym := range syms {
					if !sym.IsNonterminal() {
						continue
					}
					B := sym.Name()
					if _, known := fw[B]; !known {
						continue // undeclared nonterminal reference: no FOLLOW set to extend
					}
					beta := syms[i+1:]
					betaFirst := FirstOfSequence(g, f, beta)
					if fw[B].addAll(betaFirst.WithoutEpsilon()) {
						changed = true
					}
					if len(beta) == 0 || betaFirst.Has(epsilonMarker) {
						if fw[B].addAll(fw[head]) {
							changed = true
						}
					}
				}
			}
		}
	}
	return fw
}

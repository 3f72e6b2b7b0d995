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

// ConflictKind discriminates the two LL(1) conflict shapes.
type ConflictKind int

const (
	// FirstFirst is raised when two alternatives of the same head share
	// a non-ε FIRST symbol.
	FirstFirst ConflictKind = iota
	// FirstFollow is raised when a nullable alternative's FIRST (or a
	// sibling alternative's FIRST) overlaps FOLLOW(head).
	FirstFollow
)

func (k ConflictKind) String() string {
	if k == FirstFollow {
		return "FIRST/FOLLOW"
	}
	return "FIRST/FIRST"
}

// Conflict reports an unresolved ambiguity in the predictive table cell
// for (Head, one of Symbols). For a FirstFirst conflict, AltA and AltB
// (at AltIndexA < AltIndexB) both claim a symbol in Symbols. For a
// FirstFollow conflict, AltA (at AltIndexA) is the nullable alternative
// in question; AltB/AltIndexB are unused (zero value).
type Conflict struct {
	Kind                 ConflictKind
	Head                 string
	AltA, AltB           ll1bench.Alternative
	AltIndexA, AltIndexB int
	Symbols              []string
}

// Check detects every LL(1) conflict in g, given its FirstMap and
// FollowMap, in a deterministic order: rules in declaration order;
// within a rule, FIRST/FIRST pairs (i<j) in lexicographic order, then
// FIRST/FOLLOW nullable-alternative indices in increasing order.
//
// The FIRST/FOLLOW test is deliberately broader than the textbook one:
// besides FIRST(αᵢ)\{ε} ∩ FOLLOW(A) for a nullable αᵢ, it also surfaces
// the ambiguity between the nullable alternative and any sibling whose
// FIRST overlaps FOLLOW(A).
func Check(g *ll1bench.Grammar, f FirstMap, fw FollowMap) []Conflict {
	var conflicts []Conflict

	for _, r := range g.Rules() {
		head := r.Head
		n := len(r.Alternatives)
		seqFirsts := make([]*Set, n)
		for i, alt := range r.Alternatives {
			seqFirsts[i] = FirstOfSequence(g, f, alt.Symbols)
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				overlap := seqFirsts[i].WithoutEpsilon().Intersect(seqFirsts[j].WithoutEpsilon())
				if overlap.Size() > 0 {
					conflicts = append(conflicts, Conflict{
						Kind:      FirstFirst,
						Head:      head,
						AltA:      r.Alternatives[i],
						AltB:      r.Alternatives[j],
						AltIndexA: i,
						AltIndexB: j,
						Symbols:   overlap.Values(),
					})
				}
			}
		}

		for i := 0; i < n; i++ {
			if !seqFirsts[i].Has(epsilonMarker) {
				continue
			}
			siblingFirsts := newSet()
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				siblingFirsts.addAll(seqFirsts[j].WithoutEpsilon())
			}
			overlap := fw[head].Intersect(siblingFirsts)
			overlap = overlap.Union(seqFirsts[i].WithoutEpsilon().Intersect(fw[head]))
			if overlap.Size() > 0 {
				conflicts = append(conflicts, Conflict{
					Kind:      FirstFollow,
					Head:      head,
					AltA:      r.Alternatives[i],
					AltIndexA: i,
					Symbols:   overlap.Values(),
				})
			}
		}
	}

	return conflicts
}

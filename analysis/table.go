package analysis

import (
	"sort"

	"github.com/npillmayer/ll1bench"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// cellKey addresses one predictive-table cell. ParseTable stores its
// entries the way gorgo's lr/sparse.IntMatrix stores a parser table:
// as triplets, appended rather than overwritten, so that colliding
// entries are preserved instead of dropped. sparse.IntMatrix caps a
// cell at two values (an intPair, enough for shift/reduce bookkeeping);
// our cells must hold an arbitrary number of alternatives under
// repeated conflicts, so the triplet's "value" here is a slice rather
// than a fixed-width pair.
type cellKey struct {
	head, term string
}

// ParseTable is the predictive parse table: one cell per (nonterminal,
// terminal-or-$), holding every alternative entitled to occupy it. A
// cell with more than one entry encodes an unresolved LL(1) conflict,
// but it is preserved rather than discarded — callers decide whether a
// multi-entry cell is fatal.
type ParseTable struct {
	entries   map[cellKey][]ll1bench.Alternative
	heads     []string // nonterminals, in Grammar declaration order
	terminals []string // terminal display values plus "$", sorted
}

// Build materializes the predictive table for g, given its FirstMap and
// FollowMap: for every rule A -> α, append α to cell (A,t) for every t
// in FIRST(α)\{ε}; if ε ∈ FIRST(α), additionally append α to cell (A,t)
// for every t ∈ FOLLOW(A).
func Build(g *ll1bench.Grammar, f FirstMap, fw FollowMap) *ParseTable {
	t := &ParseTable{
		entries: make(map[cellKey][]ll1bench.Alternative),
	}
	for _, r := range g.Rules() {
		t.heads = append(t.heads, r.Head)
	}

	termSet := newSet()
	for _, term := range g.Terminals() {
		termSet.add(term)
	}
	termSet.add(eofMarker)
	t.terminals = termSet.Values()

	for _, r := range g.Rules() {
		for _, alt := range r.Alternatives {
			altFirst := FirstOfSequence(g, f, alt.Symbols)
			for _, term := range altFirst.WithoutEpsilon().Values() {
				t.append(r.Head, term, alt)
			}
			if altFirst.Has(epsilonMarker) {
				for _, term := range fw[r.Head].Values() {
					t.append(r.Head, term, alt)
				}
			}
		}
	}
	return t
}

func (t *ParseTable) append(head, term string, alt ll1bench.Alternative) {
	key := cellKey{head, term}
	t.entries[key] = append(t.entries[key], alt)
}

// Cell returns the alternatives occupying (head, terminal), in the
// order they were added. An empty result means no production applies —
// a syntax error, were this table used to drive a parse.
func (t *ParseTable) Cell(head, terminal string) []ll1bench.Alternative {
	return t.entries[cellKey{head, terminal}]
}

// Heads returns the table's nonterminal rows, in Grammar declaration order.
func (t *ParseTable) Heads() []string {
	return t.heads
}

// Terminals returns the table's terminal-or-$ columns, sorted, with "$" included.
func (t *ParseTable) Terminals() []string {
	return t.terminals
}

// HasConflicts reports whether any cell holds more than one alternative.
func (t *ParseTable) HasConflicts() bool {
	for _, entries := range t.entries {
		if len(entries) > 1 {
			return true
		}
	}
	return false
}

// EntryCount returns the total number of (cell, alternative) entries in
// the table. Since colliding entries are never dropped, this equals
// Σ over alternatives α of |FIRST(α)\{ε}| + (|FOLLOW(head(α))| if ε ∈ FIRST(α) else 0).
func (t *ParseTable) EntryCount() int {
	n := 0
	for _, entries := range t.entries {
		n += len(entries)
	}
	return n
}

// ConflictCell names one (nonterminal, terminal) cell holding more than
// one alternative.
type ConflictCell struct {
	Head, Terminal string
}

// ConflictCells returns every multi-entry cell, sorted by (head,
// terminal), for deterministic presentation.
func (t *ParseTable) ConflictCells() []ConflictCell {
	var keys []ConflictCell
	for k, v := range t.entries {
		if len(v) > 1 {
			keys = append(keys, ConflictCell{k.head, k.term})
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Head != keys[j].Head {
			return keys[i].Head < keys[j].Head
		}
		return keys[i].Terminal < keys[j].Terminal
	})
	return keys
}

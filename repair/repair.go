package repair

import (
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/npillmayer/ll1bench"
	"github.com/npillmayer/ll1bench/analysis"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Technique names the grammar transformation a Suggestion applies.
type Technique int

const (
	// LeftRecursionElimination rewrites direct left recursion out of a head.
	LeftRecursionElimination Technique = iota
	// LeftFactoring groups alternatives sharing a common prefix behind a
	// single fresh nonterminal.
	LeftFactoring
	// NoAutomaticFix means neither transformation applies; the conflict
	// likely stems from intrinsic ambiguity.
	NoAutomaticFix
)

func (t Technique) String() string {
	switch t {
	case LeftRecursionElimination:
		return "LeftRecursionElimination"
	case LeftFactoring:
		return "LeftFactoring"
	default:
		return "NoAutomaticFix"
	}
}

// Suggestion is a textual repair proposal for one conflicting head. NewRules
// are rendered production strings ("LHS -> alt1 | alt2 | ..."), not AST
// nodes — the repair never mutates the Grammar it was computed from.
type Suggestion struct {
	Head         string
	ConflictKind analysis.ConflictKind
	Technique    Technique
	NewRules     []string
	Message      string
}

// Suggest produces one Suggestion per distinct conflicting head (the
// first conflict seen per head wins): try direct left-recursion
// elimination, then left-factoring, then fall back to NoAutomaticFix.
//
// Left-recursion elimination is attempted only when the head's winning
// conflict is FirstFirst — direct left recursion never produces a
// FirstFollow conflict, so those are left to left-factoring instead.
func Suggest(g *ll1bench.Grammar, conflicts []analysis.Conflict) []Suggestion {
	var suggestions []Suggestion
	seen := map[string]bool{}

	used := map[string]bool{}
	for _, nt := range g.Nonterminals() {
		used[nt] = true
	}

	for _, c := range conflicts {
		if seen[c.Head] {
			continue
		}
		seen[c.Head] = true

		rule, found := g.Rule(c.Head)
		if !found {
			continue
		}
		suggestions = append(suggestions, suggestFor(rule, c.Kind, used))
	}
	return suggestions
}

func suggestFor(rule *ll1bench.Rule, kind analysis.ConflictKind, used map[string]bool) Suggestion {
	head := rule.Head

	if kind == analysis.FirstFirst {
		if recursive, nonRecursive, ok := partitionLeftRecursive(rule); ok {
			fresh := freshName(head, used)
			tracer().Debugf("left-recursion elimination for %s -> %s", head, fresh)
			return leftRecursionSuggestion(head, fresh, recursive, nonRecursive, kind)
		}
	}

	if s, ok := leftFactor(rule, kind, used); ok {
		return s
	}

	return Suggestion{
		Head:         head,
		ConflictKind: kind,
		Technique:    NoAutomaticFix,
		Message:      "no automatic fix: the conflict on " + head + " may stem from intrinsic ambiguity",
	}
}

// partitionLeftRecursive splits rule's alternatives into those starting
// with Nonterminal(head) and those that do not. ok is false when no
// alternative is directly left-recursive.
func partitionLeftRecursive(rule *ll1bench.Rule) (recursive, nonRecursive []ll1bench.Alternative, ok bool) {
	for _, alt := range rule.Alternatives {
		if first, has := alt.FirstSymbol(); has && first.IsNonterminal() && first.Name() == rule.Head {
			recursive = append(recursive, alt)
			continue
		}
		nonRecursive = append(nonRecursive, alt)
	}
	return recursive, nonRecursive, len(recursive) > 0
}

func leftRecursionSuggestion(head, fresh string, recursive, nonRecursive []ll1bench.Alternative, kind analysis.ConflictKind) Suggestion {
	headAlts := arraylist.New()
	for _, gamma := range nonRecursive {
		headAlts.Add(renderSymbols(gamma.Symbols) + " " + fresh)
	}
	freshAlts := arraylist.New()
	for _, alt := range recursive {
		tail := alt.Symbols[1:] // drop the leading A
		rendered := renderSymbols(tail)
		if rendered == "" {
			freshAlts.Add(fresh)
		} else {
			freshAlts.Add(rendered + " " + fresh)
		}
	}
	freshAlts.Add(ll1bench.Epsilon)

	return Suggestion{
		Head:         head,
		ConflictKind: kind,
		Technique:    LeftRecursionElimination,
		NewRules: []string{
			head + " -> " + strings.Join(stringValues(headAlts), " | "),
			fresh + " -> " + strings.Join(stringValues(freshAlts), " | "),
		},
	}
}

// leftFactor groups alternatives by their first symbol, factors every
// group with >=2 members behind a fresh nonterminal holding the
// suffixes, and leaves singleton groups untouched.
// Grouping is by (variant, display value) pair, not display value alone, so
// that an inline terminal 'x' and a nonterminal x never land in the same
// group — longestCommonPrefix compares full Symbol values, and a
// display-only group could otherwise have an empty common prefix.
// ok is false if no group has >=2 members (the rewrite would reprint the
// rule unchanged).
func leftFactor(rule *ll1bench.Rule, kind analysis.ConflictKind, used map[string]bool) (Suggestion, bool) {
	type groupKey struct {
		kind    ll1bench.SymbolKind
		display string
	}
	type group struct {
		alts []ll1bench.Alternative
	}
	var order []groupKey
	groups := map[groupKey]*group{}
	for _, alt := range rule.Alternatives {
		first, _ := alt.FirstSymbol()
		key := groupKey{kind: first.Kind(), display: first.Display()}
		g, found := groups[key]
		if !found {
			g = &group{}
			groups[key] = g
			order = append(order, key)
		}
		g.alts = append(g.alts, alt)
	}

	hasFactorable := false
	for _, key := range order {
		if len(groups[key].alts) >= 2 {
			hasFactorable = true
			break
		}
	}
	if !hasFactorable {
		return Suggestion{}, false
	}

	rendered := arraylist.New()
	freshRules := arraylist.New()
	for _, key := range order {
		g := groups[key]
		if len(g.alts) < 2 {
			rendered.Add(g.alts[0].String())
			continue
		}

		prefix := longestCommonPrefix(g.alts)
		fresh := freshName(rule.Head, used)
		rendered.Add(renderSymbols(prefix) + " " + fresh)

		tailAlts := arraylist.New()
		for _, alt := range g.alts {
			tail := alt.Symbols[len(prefix):]
			if len(tail) == 0 {
				tailAlts.Add(ll1bench.Epsilon)
			} else {
				tailAlts.Add(renderSymbols(tail))
			}
		}
		freshRules.Add(fresh + " -> " + strings.Join(stringValues(tailAlts), " | "))
	}

	newRules := append([]string{rule.Head + " -> " + strings.Join(stringValues(rendered), " | ")}, stringValues(freshRules)...)
	return Suggestion{
		Head:         rule.Head,
		ConflictKind: kind,
		Technique:    LeftFactoring,
		NewRules:     newRules,
	}, true
}

// longestCommonPrefix returns the longest symbol-by-symbol agreeing prefix
// shared by every alternative in alts. alts is assumed non-empty.
func longestCommonPrefix(alts []ll1bench.Alternative) []ll1bench.Symbol {
	prefix := alts[0].Symbols
	for _, alt := range alts[1:] {
		n := 0
		for n < len(prefix) && n < len(alt.Symbols) && prefix[n] == alt.Symbols[n] {
			n++
		}
		prefix = prefix[:n]
	}
	return prefix
}

func renderSymbols(symbols []ll1bench.Symbol) string {
	parts := make([]string, len(symbols))
	for i, s := range symbols {
		parts[i] = s.Display()
	}
	return strings.Join(parts, " ")
}

// stringValues drains an arraylist.List of accumulated rule/alternative
// text into a plain []string for strings.Join.
func stringValues(list *arraylist.List) []string {
	values := list.Values()
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.(string)
	}
	return out
}

// freshName returns a collision-free variant of base by appending
// trailing primes: base', base'', base''', ... used is mutated to record
// the chosen name.
func freshName(base string, used map[string]bool) string {
	name := base
	for {
		name += "'"
		if !used[name] {
			used[name] = true
			return name
		}
	}
}

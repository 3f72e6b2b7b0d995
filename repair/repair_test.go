package repair

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/ll1bench"
	"github.com/npillmayer/ll1bench/analysis"
)

// TestSuggestDirectLeftRecursion exercises E -> E '+' T | T; T -> id.
func TestSuggestDirectLeftRecursion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1bench.repair")
	defer teardown()
	b := ll1bench.NewGrammarBuilder("E")
	b.LHS("E").N("E").T(ll1bench.InlineTerminal("+")).N("T").End()
	b.LHS("E").N("T").End()
	b.LHS("T").N("id").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("Grammar() error: %v", err)
	}

	f := analysis.First(g)
	fw := analysis.Follow(g, f)
	conflicts := analysis.Check(g, f, fw)
	suggestions := Suggest(g, conflicts)

	if len(suggestions) != 1 {
		t.Fatalf("expected exactly 1 suggestion, got %d: %+v", len(suggestions), suggestions)
	}
	s := suggestions[0]
	if s.Head != "E" || s.Technique != LeftRecursionElimination {
		t.Fatalf("suggestion = %+v, want LeftRecursionElimination on E", s)
	}
	if len(s.NewRules) != 2 {
		t.Fatalf("NewRules = %v, want 2 entries", s.NewRules)
	}
	if !strings.HasPrefix(s.NewRules[0], "E -> T E'") {
		t.Errorf("NewRules[0] = %q, want prefix %q", s.NewRules[0], "E -> T E'")
	}
	if !strings.HasPrefix(s.NewRules[1], "E' -> + T E' | ") {
		t.Errorf("NewRules[1] = %q, want prefix %q", s.NewRules[1], "E' -> + T E' | ")
	}
	if !strings.Contains(s.NewRules[1], ll1bench.Epsilon) {
		t.Errorf("NewRules[1] = %q, want a trailing ε alternative", s.NewRules[1])
	}
}

// TestSuggestCommonPrefix exercises S -> 'a' B | 'a' C.
func TestSuggestCommonPrefix(t *testing.T) {
	b := ll1bench.NewGrammarBuilder("S")
	b.LHS("S").T(ll1bench.InlineTerminal("a")).N("B").End()
	b.LHS("S").T(ll1bench.InlineTerminal("a")).N("C").End()
	b.LHS("B").T(ll1bench.InlineTerminal("b")).End()
	b.LHS("C").T(ll1bench.InlineTerminal("c")).End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("Grammar() error: %v", err)
	}

	f := analysis.First(g)
	fw := analysis.Follow(g, f)
	conflicts := analysis.Check(g, f, fw)
	suggestions := Suggest(g, conflicts)

	if len(suggestions) != 1 {
		t.Fatalf("expected exactly 1 suggestion, got %d: %+v", len(suggestions), suggestions)
	}
	s := suggestions[0]
	if s.Head != "S" || s.Technique != LeftFactoring {
		t.Fatalf("suggestion = %+v, want LeftFactoring on S", s)
	}
	if len(s.NewRules) != 2 {
		t.Fatalf("NewRules = %v, want 2 entries", s.NewRules)
	}
	if !strings.HasPrefix(s.NewRules[0], "S -> a S'") {
		t.Errorf("NewRules[0] = %q, want prefix %q", s.NewRules[0], "S -> a S'")
	}
	if s.NewRules[1] != "S' -> B | C" {
		t.Errorf("NewRules[1] = %q, want %q", s.NewRules[1], "S' -> B | C")
	}
}

// TestSuggestNoAutomaticFixOnIrreducibleAmbiguity checks step 3: suggestFor
// called with conflict kind FirstFollow for a head with no left-recursive
// or factorable shape.
func TestSuggestNoAutomaticFixOnIrreducibleAmbiguity(t *testing.T) {
	b := ll1bench.NewGrammarBuilder("S")
	b.LHS("S").T(ll1bench.InlineTerminal("a")).End()
	b.LHS("S").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("Grammar() error: %v", err)
	}

	r, _ := g.Rule("S")
	s := suggestFor(r, analysis.FirstFollow, map[string]bool{"S": true})
	if s.Technique != NoAutomaticFix {
		t.Errorf("technique = %v, want NoAutomaticFix", s.Technique)
	}
	if s.Message == "" {
		t.Errorf("expected a non-empty Message for NoAutomaticFix")
	}
}

// TestLeftFactorGroupsByVariantAndValue checks that an inline terminal 'x'
// and a nonterminal x do not land in the same factoring group even though
// they print identically.
func TestLeftFactorGroupsByVariantAndValue(t *testing.T) {
	b := ll1bench.NewGrammarBuilder("S")
	b.LHS("S").T(ll1bench.InlineTerminal("x")).T(ll1bench.InlineTerminal("a")).End()
	b.LHS("S").N("x").T(ll1bench.InlineTerminal("b")).End()
	b.LHS("S").T(ll1bench.InlineTerminal("x")).T(ll1bench.InlineTerminal("c")).End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("Grammar() error: %v", err)
	}

	r, _ := g.Rule("S")
	s, ok := leftFactor(r, analysis.FirstFirst, map[string]bool{"S": true})
	if !ok {
		t.Fatalf("expected leftFactor to apply")
	}
	// Only the two inline-'x' alternatives factor; the nonterminal-x one
	// passes through as a singleton.
	if len(s.NewRules) != 2 {
		t.Fatalf("NewRules = %v, want 2 entries", s.NewRules)
	}
	if s.NewRules[0] != "S -> x S' | x b" {
		t.Errorf("NewRules[0] = %q, want %q", s.NewRules[0], "S -> x S' | x b")
	}
	if s.NewRules[1] != "S' -> a | c" {
		t.Errorf("NewRules[1] = %q, want %q", s.NewRules[1], "S' -> a | c")
	}
}

// TestFreshNameIsCollisionFree verifies the deterministic A', A'', ...
// naming scheme skips any name already in use.
func TestFreshNameIsCollisionFree(t *testing.T) {
	used := map[string]bool{"A'": true}
	got := freshName("A", used)
	if got != "A''" {
		t.Errorf("freshName(A) = %q, want A''", got)
	}
	if !used["A''"] {
		t.Errorf("freshName did not record its chosen name as used")
	}
}

// TestSuggestLeftRecursionEliminationRemovesLeftRecursion verifies that
// after applying the suggestion textually, no alternative of
// the rewritten head starts with the head itself.
func TestSuggestLeftRecursionEliminationRemovesLeftRecursion(t *testing.T) {
	b := ll1bench.NewGrammarBuilder("E")
	b.LHS("E").N("E").T(ll1bench.InlineTerminal("+")).N("T").End()
	b.LHS("E").N("T").End()
	b.LHS("T").N("id").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("Grammar() error: %v", err)
	}

	f := analysis.First(g)
	fw := analysis.Follow(g, f)
	conflicts := analysis.Check(g, f, fw)
	suggestions := Suggest(g, conflicts)

	for _, alt := range strings.Split(strings.TrimPrefix(suggestions[0].NewRules[0], "E -> "), " | ") {
		if strings.HasPrefix(alt, "E ") || alt == "E" {
			t.Errorf("rewritten E alternative %q still starts with E", alt)
		}
	}
}

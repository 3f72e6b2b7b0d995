package analysis

import (
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/ll1bench"
)

func TestFollowArithmeticGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1bench.analysis")
	defer teardown()
	g := arithmeticGrammar(t)
	f := First(g)
	fw := Follow(g, f)

	// Values() returns members in sorted order; "$" sorts before the
	// punctuation terminals.
	cases := map[string][]string{
		"E":  {eofMarker, ")"},
		"E'": {eofMarker, ")"},
		"T":  {eofMarker, ")", "+"},
		"T'": {eofMarker, ")", "+"},
		"F":  {eofMarker, ")", "*", "+"},
	}
	for nt, want := range cases {
		got := fw[nt].Values()
		if !reflect.DeepEqual(got, want) {
			t.Errorf("FOLLOW(%s) = %v, want %v", nt, got, want)
		}
	}
}

func TestFollowNullableChains(t *testing.T) {
	b := ll1bench.NewGrammarBuilder("A")
	b.LHS("A").N("B").N("C").End()
	b.LHS("B").T(ll1bench.InlineTerminal("b")).End()
	b.LHS("B").Epsilon()
	b.LHS("C").T(ll1bench.InlineTerminal("c")).End()
	b.LHS("C").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("Grammar() error: %v", err)
	}

	f := First(g)
	fw := Follow(g, f)

	if got := fw["A"].Values(); !reflect.DeepEqual(got, []string{eofMarker}) {
		t.Errorf("FOLLOW(A) = %v, want {$}", got)
	}
	if got := fw["B"].Values(); !reflect.DeepEqual(got, []string{eofMarker, "c"}) {
		t.Errorf("FOLLOW(B) = %v, want {$, c}", got)
	}
	if got := fw["C"].Values(); !reflect.DeepEqual(got, []string{eofMarker}) {
		t.Errorf("FOLLOW(C) = %v, want {$}", got)
	}
}

func TestFollowNeverContainsEpsilon(t *testing.T) {
	g := arithmeticGrammar(t)
	f := First(g)
	fw := Follow(g, f)
	for nt, set := range fw {
		if set.Has(epsilonMarker) {
			t.Errorf("FOLLOW(%s) unexpectedly contains ε", nt)
		}
	}
}

func TestFollowStartAlwaysContainsEOF(t *testing.T) {
	g := arithmeticGrammar(t)
	f := First(g)
	fw := Follow(g, f)
	if !fw[g.Start()].Has(eofMarker) {
		t.Errorf("FOLLOW(start) does not contain $")
	}
}

package ll1bench

import (
	"reflect"
	"testing"
)

func TestAlternativeNormalizesEmptyToEpsilon(t *testing.T) {
	alt := NewAlternative()
	if !alt.IsEpsilon() {
		t.Fatalf("expected empty alternative to normalize to epsilon, got %v", alt)
	}
	if alt.String() != Epsilon {
		t.Errorf("String() = %q, want %q", alt.String(), Epsilon)
	}
}

func TestGrammarAddAlternativeUnionsDuplicateHeads(t *testing.T) {
	g := NewGrammar("S")
	g.AddAlternative("S", NewAlternative(InlineTerminal("a")))
	g.AddAlternative("S", NewAlternative(InlineTerminal("b")))

	r, found := g.Rule("S")
	if !found {
		t.Fatalf("rule S not found")
	}
	if len(r.Alternatives) != 2 {
		t.Fatalf("expected 2 alternatives, got %d", len(r.Alternatives))
	}
	if r.Alternatives[0].String() != "a" || r.Alternatives[1].String() != "b" {
		t.Errorf("unexpected alternatives: %v", r.Alternatives)
	}
}

func TestGrammarRulesPreserveDeclarationOrder(t *testing.T) {
	g := NewGrammar("A")
	g.AddAlternative("A", NewAlternative(Nonterminal("B")))
	g.AddAlternative("C", NewAlternative(InlineTerminal("c")))
	g.AddAlternative("B", NewAlternative(InlineTerminal("b")))

	got := []string{}
	for _, r := range g.Rules() {
		got = append(got, r.Head)
	}
	want := []string{"A", "C", "B"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Rules() order = %v, want %v", got, want)
	}

	wantSorted := []string{"A", "B", "C"}
	if !reflect.DeepEqual(g.Nonterminals(), wantSorted) {
		t.Errorf("Nonterminals() = %v, want %v", g.Nonterminals(), wantSorted)
	}
}

func TestGrammarTerminalsRescuesUndeclaredNonterminal(t *testing.T) {
	g := NewGrammar("S")
	g.AddAlternative("S", NewAlternative(Nonterminal("id")))

	terms := g.Terminals()
	if !reflect.DeepEqual(terms, []string{"id"}) {
		t.Errorf("Terminals() = %v, want [id]", terms)
	}
}

func TestGrammarValidate(t *testing.T) {
	empty := NewGrammar("S")
	if err := empty.Validate(); err != ErrEmptyGrammar {
		t.Errorf("Validate() on empty grammar = %v, want ErrEmptyGrammar", err)
	}

	g := NewGrammar("S")
	g.AddAlternative("A", NewAlternative(InlineTerminal("a")))
	var wantErr *UndeclaredStartError
	err := g.Validate()
	if err == nil {
		t.Fatal("expected UndeclaredStartError, got nil")
	}
	if _, ok := err.(*UndeclaredStartError); !ok {
		t.Errorf("Validate() = %v (%T), want %T", err, err, wantErr)
	}

	g.AddAlternative("S", NewAlternative(Nonterminal("A")))
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestGrammarBuilder(t *testing.T) {
	b := NewGrammarBuilder("E")
	b.LHS("E").N("T").N("E'").End()
	b.LHS("E'").T(InlineTerminal("+")).N("T").N("E'").End()
	b.LHS("E'").Epsilon()
	b.LHS("T").T(NamedTerminal("ID")).End()

	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("Grammar() error: %v", err)
	}
	if g.Start() != "E" {
		t.Errorf("Start() = %q, want E", g.Start())
	}
	ePrime, found := g.Rule("E'")
	if !found || len(ePrime.Alternatives) != 2 {
		t.Fatalf("E' rule malformed: %+v", ePrime)
	}
	if !ePrime.Alternatives[1].IsEpsilon() {
		t.Errorf("expected second alternative of E' to be epsilon, got %v", ePrime.Alternatives[1])
	}
}

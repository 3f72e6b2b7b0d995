package ll1bench

import "fmt"

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// GrammarBuilder is a fluent builder for Grammar values, modeled after
// gorgo's lr.GrammarBuilder. It is the construction API for programmatic
// grammars, e.g. in tests (package reader builds its Grammar through
// NewGrammar and AddAlternative directly):
//
//	b := ll1bench.NewGrammarBuilder("E")
//	b.LHS("E").N("T").N("E'").End()
//	b.LHS("E'").T(InlineTerminal("+")).N("T").N("E'").End()
//	b.LHS("E'").Epsilon()
//	g, err := b.Grammar()
type GrammarBuilder struct {
	start string
	g     *Grammar
	err   error
}

// NewGrammarBuilder creates a builder that will produce a Grammar with
// the given declared start symbol.
func NewGrammarBuilder(start string) *GrammarBuilder {
	return &GrammarBuilder{start: start, g: NewGrammar(start)}
}

// AddTokenDecl registers a token-pattern declaration on the
// in-construction grammar.
func (b *GrammarBuilder) AddTokenDecl(name, pattern string) *GrammarBuilder {
	if b.err != nil {
		return b
	}
	if err := b.g.AddTokenDecl(TokenDecl{Name: name, Pattern: pattern}); err != nil {
		b.err = err
	}
	return b
}

// LHS starts a new alternative for head, returning a RuleBuilder to
// accumulate its right-hand-side symbols.
func (b *GrammarBuilder) LHS(head string) *RuleBuilder {
	return &RuleBuilder{gb: b, head: head}
}

// Grammar finalizes construction, returning an error if any builder step
// failed (e.g. a duplicate token declaration).
func (b *GrammarBuilder) Grammar() (*Grammar, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.g, nil
}

// RuleBuilder accumulates the symbols of a single alternative before it
// is appended to its head's rule with End() (or Epsilon()).
type RuleBuilder struct {
	gb      *GrammarBuilder
	head    string
	symbols []Symbol
}

// N appends a Nonterminal reference to the alternative under construction.
func (r *RuleBuilder) N(name string) *RuleBuilder {
	r.symbols = append(r.symbols, Nonterminal(name))
	return r
}

// T appends a terminal Symbol (built by InlineTerminal or NamedTerminal)
// to the alternative under construction.
func (r *RuleBuilder) T(sym Symbol) *RuleBuilder {
	if !sym.IsTerminal() {
		panic(fmt.Sprintf("ll1bench: RuleBuilder.T called with non-terminal symbol %v", sym))
	}
	r.symbols = append(r.symbols, sym)
	return r
}

// End closes the alternative under construction and appends it to the
// head's rule.
func (r *RuleBuilder) End() *GrammarBuilder {
	r.gb.g.AddAlternative(r.head, NewAlternative(r.symbols...))
	return r.gb
}

// Epsilon closes the alternative under construction as the empty
// production; any symbols already appended via N/T are discarded, as
// Epsilon must be the sole symbol of its alternative.
func (r *RuleBuilder) Epsilon() *GrammarBuilder {
	r.gb.g.AddAlternative(r.head, NewAlternative())
	return r.gb
}

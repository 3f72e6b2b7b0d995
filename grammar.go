package ll1bench

import (
	"errors"
	"fmt"
	"sort"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Alternative is an ordered, non-empty sequence of Symbols forming one
// right-hand side of a Rule. An empty production is normalized to the
// single-element sequence [Eps()], so downstream code never has to
// special-case a nil/empty Symbols slice.
type Alternative struct {
	Symbols []Symbol
}

// IsEpsilon reports whether this alternative is the normalized empty
// production (a single Epsilon symbol).
func (a Alternative) IsEpsilon() bool {
	return len(a.Symbols) == 1 && a.Symbols[0].IsEpsilon()
}

// FirstSymbol returns the alternative's leading symbol and true, or the
// zero Symbol and false if the alternative is empty (which should not
// occur once normalized).
func (a Alternative) FirstSymbol() (Symbol, bool) {
	if len(a.Symbols) == 0 {
		return Symbol{}, false
	}
	return a.Symbols[0], true
}

// String renders the alternative the way it would appear on the
// right-hand side of a rule: symbols separated by spaces, or "ε" for the
// normalized empty production.
func (a Alternative) String() string {
	if a.IsEpsilon() {
		return Epsilon
	}
	s := ""
	for i, sym := range a.Symbols {
		if i > 0 {
			s += " "
		}
		s += sym.Display()
	}
	return s
}

// NewAlternative builds an Alternative from a symbol sequence, normalizing
// an empty sequence to [Eps()].
func NewAlternative(symbols ...Symbol) Alternative {
	if len(symbols) == 0 {
		return Alternative{Symbols: []Symbol{Eps()}}
	}
	return Alternative{Symbols: symbols}
}

// Rule is a nonterminal head paired with a non-empty, order-preserving
// list of Alternatives.
type Rule struct {
	Head         string
	Alternatives []Alternative
}

// TokenDecl binds a named terminal to a regular-expression pattern. The
// pattern is an opaque string at this layer; the core never interprets it.
type TokenDecl struct {
	Name    string
	Pattern string
}

// Grammar is the root object of the normalized grammar model: a start
// symbol, an ordered collection of rules (keyed by head, union of all
// alternatives seen for that head, in first-declaration order), and an
// ordered collection of token declarations. A Grammar is built once via
// NewGrammar/AddAlternative/AddTokenDecl, or via GrammarBuilder, and is
// immutable thereafter.
type Grammar struct {
	start      string
	rules      *linkedhashmap.Map // string -> *Rule
	headOrder  []string           // redundant cache of rules' insertion order, for fast Rules()
	tokenDecls *linkedhashmap.Map // string -> TokenDecl
	tokenOrder []string
}

// NewGrammar creates an empty Grammar declaring start as its axiom.
func NewGrammar(start string) *Grammar {
	return &Grammar{
		start:      start,
		rules:      linkedhashmap.New(),
		tokenDecls: linkedhashmap.New(),
	}
}

// Start returns the declared axiom nonterminal name.
func (g *Grammar) Start() string { return g.start }

// AddAlternative appends alt to the alternatives of head's rule, creating
// the rule if this is the first alternative seen for head. Two rules in
// the specification sharing the same head are thereby treated as one
// logical rule, its alternatives the union in declaration order.
func (g *Grammar) AddAlternative(head string, alt Alternative) {
	if existing, found := g.rules.Get(head); found {
		r := existing.(*Rule)
		r.Alternatives = append(r.Alternatives, alt)
		return
	}
	g.rules.Put(head, &Rule{Head: head, Alternatives: []Alternative{alt}})
	g.headOrder = append(g.headOrder, head)
}

// AddTokenDecl registers a named-terminal pattern declaration. It is an
// error to declare the same name twice.
func (g *Grammar) AddTokenDecl(decl TokenDecl) error {
	if _, found := g.tokenDecls.Get(decl.Name); found {
		return fmt.Errorf("token %q declared more than once", decl.Name)
	}
	g.tokenDecls.Put(decl.Name, decl)
	g.tokenOrder = append(g.tokenOrder, decl.Name)
	return nil
}

// Rule returns the rule for head, if any.
func (g *Grammar) Rule(head string) (*Rule, bool) {
	v, found := g.rules.Get(head)
	if !found {
		return nil, false
	}
	return v.(*Rule), true
}

// Rules returns every rule in declaration order (order of first
// occurrence of each head).
func (g *Grammar) Rules() []*Rule {
	rules := make([]*Rule, 0, len(g.headOrder))
	for _, head := range g.headOrder {
		v, _ := g.rules.Get(head)
		rules = append(rules, v.(*Rule))
	}
	return rules
}

// TokenDecls returns every token declaration in declaration order.
func (g *Grammar) TokenDecls() []TokenDecl {
	decls := make([]TokenDecl, 0, len(g.tokenOrder))
	for _, name := range g.tokenOrder {
		v, _ := g.tokenDecls.Get(name)
		decls = append(decls, v.(TokenDecl))
	}
	return decls
}

// Nonterminals returns the sorted set of rule heads.
func (g *Grammar) Nonterminals() []string {
	nts := make([]string, 0, len(g.headOrder))
	nts = append(nts, g.headOrder...)
	sort.Strings(nts)
	return nts
}

// IsNonterminal reports whether name is the head of some rule.
func (g *Grammar) IsNonterminal(name string) bool {
	_, found := g.rules.Get(name)
	return found
}

// Terminals returns the sorted union of declared token names and every
// InlineTerminal/NamedTerminal value appearing in a production, plus the
// name of every Nonterminal reference that heads no rule — see the FIRST
// engine's "missing-rule rescue" rule.
func (g *Grammar) Terminals() []string {
	seen := map[string]bool{}
	for _, name := range g.tokenOrder {
		seen[name] = true
	}
	for _, r := range g.Rules() {
		for _, alt := range r.Alternatives {
			for _, sym := range alt.Symbols {
				if sym.IsTerminal() {
					seen[sym.Display()] = true
				} else if sym.IsNonterminal() && !g.IsNonterminal(sym.Name()) {
					seen[sym.Name()] = true
				}
			}
		}
	}
	terms := make([]string, 0, len(seen))
	for t := range seen {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	return terms
}

// ErrEmptyGrammar is returned by Validate when the grammar declares no rules.
var ErrEmptyGrammar = errors.New("grammar has no rules")

// UndeclaredStartError is returned by Validate when the declared start
// symbol is not the head of any rule.
type UndeclaredStartError struct {
	Start string
}

func (e *UndeclaredStartError) Error() string {
	return fmt.Sprintf("declared start symbol %q is not a rule head", e.Start)
}

// Validate checks the two grammar-level error conditions: an empty
// grammar, and a declared start symbol that heads no rule. It does not
// check for LL(1) conflicts — those are a first-class analysis result,
// not a validation error.
func (g *Grammar) Validate() error {
	if len(g.headOrder) == 0 {
		return ErrEmptyGrammar
	}
	if !g.IsNonterminal(g.start) {
		return &UndeclaredStartError{Start: g.start}
	}
	return nil
}

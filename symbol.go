package ll1bench

import "fmt"

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// SymbolKind discriminates the four legal shapes of a grammar Symbol.
type SymbolKind int8

//go:generate stringer -type SymbolKind
const (
	KindNonterminal SymbolKind = iota
	KindNamedTerminal
	KindInlineTerminal
	KindEpsilon
)

func (k SymbolKind) String() string {
	switch k {
	case KindNonterminal:
		return "Nonterminal"
	case KindNamedTerminal:
		return "NamedTerminal"
	case KindInlineTerminal:
		return "InlineTerminal"
	case KindEpsilon:
		return "Epsilon"
	default:
		return "?"
	}
}

// Symbol is a tagged variant of a grammar symbol: a Nonterminal, a
// NamedTerminal declared by a token-pattern rule, an InlineTerminal
// quoted literally inside a production, or Epsilon (legal only as the
// sole symbol of an alternative).
//
// Symbol is a small value type; compare with ==.
type Symbol struct {
	kind    SymbolKind
	name    string
	literal string
}

// Nonterminal creates a Symbol referring to a nonterminal by name.
func Nonterminal(name string) Symbol {
	return Symbol{kind: KindNonterminal, name: name}
}

// NamedTerminal creates a Symbol for a terminal declared in the token section.
func NamedTerminal(name string) Symbol {
	return Symbol{kind: KindNamedTerminal, name: name}
}

// InlineTerminal creates a Symbol for a literal quoted inside a production.
func InlineTerminal(literal string) Symbol {
	return Symbol{kind: KindInlineTerminal, literal: literal}
}

// Eps returns the single Epsilon symbol value.
func Eps() Symbol {
	return Symbol{kind: KindEpsilon}
}

// Kind reports which of the four variants s is.
func (s Symbol) Kind() SymbolKind { return s.kind }

// IsTerminal reports whether s is a NamedTerminal or an InlineTerminal.
// Neither Nonterminal nor Epsilon is a terminal.
func (s Symbol) IsTerminal() bool {
	return s.kind == KindNamedTerminal || s.kind == KindInlineTerminal
}

// IsNonterminal reports whether s is the Nonterminal variant.
func (s Symbol) IsNonterminal() bool {
	return s.kind == KindNonterminal
}

// IsEpsilon reports whether s is the Epsilon variant.
func (s Symbol) IsEpsilon() bool {
	return s.kind == KindEpsilon
}

// Name returns the nonterminal or named-terminal name. It is empty for
// InlineTerminal and Epsilon.
func (s Symbol) Name() string { return s.name }

// Literal returns the quoted text of an InlineTerminal. It is empty
// otherwise.
func (s Symbol) Literal() string { return s.literal }

// Display returns the symbol's display value: its name or literal, or
// "ε" for Epsilon. This is the value that participates in FIRST/FOLLOW
// set membership and parse-table column lookups.
func (s Symbol) Display() string {
	switch s.kind {
	case KindNonterminal, KindNamedTerminal:
		return s.name
	case KindInlineTerminal:
		return s.literal
	case KindEpsilon:
		return Epsilon
	default:
		return "?"
	}
}

// String implements fmt.Stringer, identical to Display.
func (s Symbol) String() string {
	return s.Display()
}

var _ fmt.Stringer = Symbol{}

// Sentinel display values. Neither participates as a Symbol variant;
// both appear only as members of FIRST/FOLLOW sets and as parse-table
// columns.
const (
	// Epsilon is the empty-string marker, denoted ε.
	Epsilon = "ε"
	// EOF is the end-of-input marker, denoted $.
	EOF = "$"
)

package reader

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/ll1bench"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Read parses a textual grammar specification held entirely in src.
func Read(src string) (*ll1bench.Grammar, error) {
	return ReadReader(strings.NewReader(src))
}

// ReadFile reads and parses the specification stored at path. A failure
// to open path is reported as an *OpenError, distinct from a
// specification parse failure, so callers can tell "file not readable"
// apart from "malformed grammar".
func ReadFile(path string) (*ll1bench.Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	defer f.Close()
	return ReadReader(f)
}

// ReadReader parses a textual grammar specification from r. This is the
// entry point ReadFile and Read both funnel into, and the one the CLI's
// "-" (stdin) convention wires directly.
func ReadReader(r io.Reader) (*ll1bench.Grammar, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading specification: %w", err)
	}
	toks, err := scan(src)
	if err != nil {
		return nil, err
	}
	lines := logicalLines(toks)

	g := ll1bench.NewGrammar(findStart(lines))
	for _, line := range lines {
		switch {
		case isStartDecl(line):
			// consumed by findStart
		case isTokenDecl(line):
			name, pattern := line[0].text, line[2].text
			if err := validatePattern(name, pattern); err != nil {
				return nil, &ParseError{Pos: line[0].pos, Line: sourceLine(src, line[0].pos.Line), Message: err.Error()}
			}
			if err := g.AddTokenDecl(ll1bench.TokenDecl{Name: name, Pattern: pattern}); err != nil {
				return nil, &ParseError{Pos: line[0].pos, Line: sourceLine(src, line[0].pos.Line), Message: err.Error()}
			}
		default:
			if err := parseRule(g, line, src); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// logicalLines groups the token stream into logical units: runs of
// tokens between newlines, empty runs (blank or comment-only lines)
// dropped.
func logicalLines(toks []token) [][]token {
	var lines [][]token
	var cur []token
	for _, t := range toks {
		if t.kind == tokNewline {
			if len(cur) > 0 {
				lines = append(lines, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, t)
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	return lines
}

// isStartDecl recognizes the axiom declaration `start: <Nonterminal>`.
func isStartDecl(line []token) bool {
	return len(line) >= 2 &&
		line[0].kind == tokIdent && line[0].text == "start" &&
		line[1].kind == tokColon
}

// findStart returns the name declared by the first start declaration, or
// "" if none is present — a missing or malformed start declaration
// surfaces downstream through Grammar.Validate rather than as a
// reader-level parse error.
func findStart(lines [][]token) string {
	for _, line := range lines {
		if isStartDecl(line) && len(line) >= 3 && line[2].kind == tokIdent {
			return line[2].text
		}
	}
	return ""
}

// isTokenDecl recognizes a `<NAME> = /<regex>/` declaration.
func isTokenDecl(line []token) bool {
	return len(line) == 3 &&
		line[0].kind == tokIdent &&
		line[1].kind == tokEquals &&
		line[2].kind == tokRegex
}

// parseRule appends the alternatives of one `<head> -> alt | alt | ...`
// line to g.
func parseRule(g *ll1bench.Grammar, line []token, src []byte) error {
	head := line[0]
	if head.kind != tokIdent {
		return &ParseError{Pos: head.pos, Line: sourceLine(src, head.pos.Line), Message: "rule is missing its left-hand-side nonterminal"}
	}
	if len(line) < 2 || line[1].kind != tokArrow {
		return &ParseError{Pos: head.pos, Line: sourceLine(src, head.pos.Line), Message: "expected '->' or '→' in rule"}
	}
	for _, group := range splitAlternatives(line[2:]) {
		alt, err := buildAlternative(group, src)
		if err != nil {
			return err
		}
		g.AddAlternative(head.text, alt)
	}
	return nil
}

// splitAlternatives splits a rule's right-hand-side token run at every
// pipe. An empty run (a bare arrow, a leading, trailing or doubled
// pipe) still yields a group: it denotes the empty production.
func splitAlternatives(toks []token) [][]token {
	groups := [][]token{nil}
	for _, t := range toks {
		if t.kind == tokPipe {
			groups = append(groups, nil)
			continue
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], t)
	}
	return groups
}

// buildAlternative converts one alternative's tokens into a normalized
// Alternative. The explicit ε marker and an empty token run both yield
// the epsilon production.
func buildAlternative(toks []token, src []byte) (ll1bench.Alternative, error) {
	if len(toks) == 1 && toks[0].kind == tokEpsilon {
		return ll1bench.NewAlternative(), nil
	}
	var symbols []ll1bench.Symbol
	for _, t := range toks {
		switch t.kind {
		case tokIdent:
			symbols = append(symbols, classifySymbol(t.text))
		case tokString:
			symbols = append(symbols, ll1bench.InlineTerminal(t.text))
		case tokEpsilon:
			return ll1bench.Alternative{}, &ParseError{Pos: t.pos, Line: sourceLine(src, t.pos.Line), Message: "ε must be the sole symbol of its alternative"}
		default:
			return ll1bench.Alternative{}, &ParseError{Pos: t.pos, Line: sourceLine(src, t.pos.Line), Message: fmt.Sprintf("unexpected %q in alternative", t.text)}
		}
	}
	return ll1bench.NewAlternative(symbols...), nil
}

// classifySymbol sorts an identifier into its symbol shape: one
// matching [A-Z][A-Z0-9_]* and longer than one character is a
// NamedTerminal; everything else (a single uppercase letter, or a
// mixed-case identifier optionally suffixed with "'") is a Nonterminal.
func classifySymbol(word string) ll1bench.Symbol {
	if isNamedTerminalWord(word) {
		return ll1bench.NamedTerminal(word)
	}
	return ll1bench.Nonterminal(word)
}

func isNamedTerminalWord(word string) bool {
	if len(word) < 2 {
		return false
	}
	for i := 0; i < len(word); i++ {
		c := word[i]
		switch {
		case i == 0 && c >= 'A' && c <= 'Z':
		case i > 0 && ((c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_'):
		default:
			return false
		}
	}
	return true
}

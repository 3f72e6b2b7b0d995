package reader

import (
	"fmt"
	"strings"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Token kinds of the specification micro-language. The lexer produces
// exactly these; spaces, tabs and '#' line comments are skipped.
const (
	tokIdent = iota
	tokString
	tokRegex
	tokArrow
	tokPipe
	tokColon
	tokEquals
	tokEpsilon
	tokNewline
)

// token is one scanned lexeme: its kind, its value (delimiters already
// stripped for quoted literals and regex bodies) and its source position.
type token struct {
	kind int
	text string
	pos  Pos
}

// newSpecLexer assembles the DFA for the specification format. Newlines
// are significant (they terminate rules and declarations) and are
// emitted as tokens; an identifier may carry trailing primes (E', E''),
// so a quote only opens a literal where no identifier is in progress.
func newSpecLexer() (*lexmachine.Lexer, error) {
	l := lexmachine.NewLexer()
	l.Add([]byte("#[^\n]*"), skip)
	l.Add([]byte("( |\t|\r)+"), skip)
	l.Add([]byte("\n"), mkToken(tokNewline))
	l.Add([]byte("->"), mkToken(tokArrow))
	l.Add([]byte("→"), mkToken(tokArrow))
	l.Add([]byte("\\|"), mkToken(tokPipe))
	l.Add([]byte(":"), mkToken(tokColon))
	l.Add([]byte("="), mkToken(tokEquals))
	l.Add([]byte("/[^/\n]+/"), mkDelimitedToken(tokRegex))
	l.Add([]byte("'[^'\n]*'"), mkDelimitedToken(tokString))
	// ε before the identifier rule: "epsilon" matches both, and
	// lexmachine breaks same-length ties in favor of the earlier rule.
	l.Add([]byte("ε"), mkToken(tokEpsilon))
	l.Add([]byte("epsilon"), mkToken(tokEpsilon))
	l.Add([]byte("[A-Za-z][A-Za-z0-9_]*'*"), mkToken(tokIdent))
	if err := l.Compile(); err != nil {
		tracer().Errorf("error compiling specification DFA: %v", err)
		return nil, err
	}
	return l, nil
}

// skip is an action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// mkToken is an action which wraps a scanned match into a token of the
// given kind.
func mkToken(kind int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(kind, string(m.Bytes), m), nil
	}
}

// mkDelimitedToken is mkToken with the enclosing delimiter pair (the
// quotes of a literal, the slashes of a regex) stripped from the value.
func mkDelimitedToken(kind int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		lexeme := string(m.Bytes)
		return s.Token(kind, lexeme[1:len(lexeme)-1], m), nil
	}
}

// scan tokenizes a whole specification source. Input the DFA cannot
// consume (an unterminated literal, a stray character) is reported as a
// *ParseError at the position where matching failed.
func scan(src []byte) ([]token, error) {
	lexer, err := newSpecLexer()
	if err != nil {
		return nil, fmt.Errorf("building specification lexer: %w", err)
	}
	s, err := lexer.Scanner(src)
	if err != nil {
		return nil, fmt.Errorf("scanning specification: %w", err)
	}
	var tokens []token
	for tok, err, eof := s.Next(); !eof; tok, err, eof = s.Next() {
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				return nil, &ParseError{
					Pos:     Pos{Line: ui.StartLine, Col: ui.StartColumn},
					Line:    sourceLine(src, ui.StartLine),
					Message: "unexpected input",
				}
			}
			return nil, err
		}
		t := tok.(*lexmachine.Token)
		tokens = append(tokens, token{
			kind: t.Type,
			text: t.Value.(string),
			pos:  Pos{Line: t.StartLine, Col: t.StartColumn},
		})
	}
	return tokens, nil
}

// sourceLine returns the n-th (1-based) raw line of src, for diagnostics.
func sourceLine(src []byte, n int) string {
	lines := strings.Split(string(src), "\n")
	if n < 1 || n > len(lines) {
		return ""
	}
	return lines[n-1]
}

/*
Package reader parses a textual grammar specification into a
ll1bench.Grammar: a `start:` declaration, `Nonterminal -> alt | alt`
rules (`->`/`→` interchangeable), `'literal'` inline terminals, `NAME =
/regex/` token declarations, `#` line comments and blank lines.

Tokenizing is done by a timtadh/lexmachine DFA (lexer.go): one regex
rule per token shape — arrows, pipes, quoted literals, regex bodies,
ε/epsilon, identifiers with trailing primes — with newlines significant
and spaces/comments skipped. A small parser over the token stream
(reader.go) assembles the Grammar. Declared token patterns are
additionally validated (not interpreted) by compiling each through a
throwaway lexmachine lexer (patterns.go); the pattern strings themselves
are stored opaquely on the Grammar.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package reader

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'll1bench.reader'.
func tracer() tracing.Trace {
	return tracing.Select("ll1bench.reader")
}

// Pos is a 1-based line/column position within a specification source,
// adapted from gorgo.Span — used here for diagnostics rather than for
// addressing runtime token spans.
type Pos struct {
	Line, Col int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// ParseError reports a malformed line of a grammar specification.
type ParseError struct {
	Pos     Pos
	Line    string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s: %q", e.Pos, e.Message, e.Line)
}

// OpenError reports that the underlying file for a specification could
// not be opened — a filesystem-level failure distinct from a
// ParseError. Callers distinguish the two with errors.As: an unreadable
// file is fatal to the CLI, a malformed specification is not.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("opening %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

package reader

import (
	"fmt"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// validatePattern compiles decl's regex through a throwaway lexmachine
// lexer solely to confirm it is well-formed. The pattern itself is kept
// as an opaque string on the Grammar (see TokenDecl); lexmachine's DFA is
// discarded immediately after compilation succeeds. A panic raised by
// lexmachine while handling a malformed pattern is reported as an error too.
func validatePattern(name, pattern string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("token %s: invalid pattern /%s/: %v", name, pattern, r)
			err = fmt.Errorf("token %s: invalid pattern /%s/: %v", name, pattern, r)
		}
	}()
	lexer := lexmachine.NewLexer()
	lexer.Add([]byte(pattern), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return m, nil
	})
	if err := lexer.Compile(); err != nil {
		tracer().Errorf("token %s: invalid pattern /%s/: %v", name, pattern, err)
		return fmt.Errorf("token %s: invalid pattern /%s/: %w", name, pattern, err)
	}
	return nil
}

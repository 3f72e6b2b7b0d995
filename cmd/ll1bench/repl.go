package main

import (
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/ll1bench/reader"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// runREPL starts an interactive loop, adapted from terex/terexlang/trepl's
// read-eval-print loop: instead of evaluating s-expressions, each line is
// treated as a specification file path to load and report on, or the
// literal "inline" to accumulate a grammar typed directly into the
// terminal, terminated by a blank line.
func runREPL() {
	repl, err := readline.New("ll1bench> ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	defer repl.Close()

	pterm.Info.Println("Welcome to ll1bench. Enter a file path, or 'inline' to type a grammar, <ctrl>D to quit.")
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "inline" {
			src := readInlineGrammar(repl)
			g, err := reader.Read(src)
			if err != nil {
				tracer().Errorf("%v", err)
				continue
			}
			report(os.Stdout, g)
			continue
		}
		g, err := reader.ReadFile(line)
		if err != nil {
			tracer().Errorf("%v", err)
			continue
		}
		report(os.Stdout, g)
	}
	pterm.Info.Println("Good bye!")
}

// readInlineGrammar accumulates lines from repl until a blank line.
func readInlineGrammar(repl *readline.Instance) string {
	var b strings.Builder
	repl.SetPrompt("... ")
	defer repl.SetPrompt("ll1bench> ")
	for {
		line, err := repl.Readline()
		if err != nil || strings.TrimSpace(line) == "" {
			break
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

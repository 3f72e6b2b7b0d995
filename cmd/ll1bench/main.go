/*
Command ll1bench is the CLI front end for the LL(1) grammar workbench: it
reads a grammar specification, runs FIRST/FOLLOW/conflict/table analysis
and repair suggestion, and prints a report.

Usage:

	ll1bench              run against the built-in example grammar
	ll1bench <file>        analyze the named specification file
	ll1bench -             analyze a specification piped in on stdin
	ll1bench -i            drop into an interactive readline loop

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/pterm/pterm"

	"github.com/npillmayer/ll1bench"
	"github.com/npillmayer/ll1bench/analysis"
	"github.com/npillmayer/ll1bench/present"
	"github.com/npillmayer/ll1bench/reader"
	"github.com/npillmayer/ll1bench/repair"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// tracer traces with key 'll1bench.cli'.
func tracer() tracing.Trace {
	return tracing.Select("ll1bench.cli")
}

// exampleGrammar is the classic LL(1) arithmetic expression grammar,
// used whenever the CLI is invoked with no file argument.
const exampleGrammar = `
start: E
E  -> T E'
E' -> '+' T E' | ε
T  -> F T'
T' -> '*' F T' | ε
F  -> '(' E ')' | id
`

func main() {
	gtrace.SyntaxTracer = gologadapter.New()

	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	interactive := flag.Bool("i", false, "interactive readline mode")
	flag.BoolVar(interactive, "repl", false, "interactive readline mode (alias of -i)")
	noColor := flag.Bool("no-color", false, "disable colored pterm output")
	flag.Parse()

	tracer().SetTraceLevel(traceLevel(*tlevel))
	if *noColor || gconf.GetBool("no-color") {
		pterm.DisableColor()
	}

	if *interactive {
		runREPL()
		return
	}

	args := flag.Args()
	var g *ll1bench.Grammar
	var err error
	switch {
	case len(args) == 0:
		g, err = reader.Read(exampleGrammar)
	case args[0] == "-":
		g, err = reader.ReadReader(os.Stdin)
	default:
		g, err = reader.ReadFile(args[0])
	}
	if err != nil {
		// Exit 1 only when the file itself couldn't be opened. A parse
		// error (or any other malformed-grammar failure) is reported as
		// a diagnostic and the process still exits 0.
		var openErr *reader.OpenError
		if errors.As(err, &openErr) {
			tracer().Errorf("%v", err)
			os.Exit(1)
		}
		fmt.Fprintln(os.Stdout, pterm.Error.Sprint(err.Error()))
		return
	}

	report(os.Stdout, g)
}

// report runs the analysis pipeline against g and prints it. A grammar
// that fails Validate still produces diagnostic output and a zero exit
// status.
func report(w *os.File, g *ll1bench.Grammar) {
	cache := analysis.NewCache()
	res, err := cache.Analyze(g)
	if err != nil {
		fmt.Fprintln(w, pterm.Error.Sprint(err.Error()))
		return
	}
	suggestions := repair.Suggest(g, res.Conflicts)
	present.Report(w, g, res, suggestions)
}

func traceLevel(s string) tracing.TraceLevel {
	switch s {
	case "Debug":
		return tracing.LevelDebug
	case "Error":
		return tracing.LevelError
	default:
		return tracing.LevelInfo
	}
}

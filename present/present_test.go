package present

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/ll1bench"
	"github.com/npillmayer/ll1bench/analysis"
	"github.com/npillmayer/ll1bench/repair"
)

func danglingElseGrammar(t *testing.T) *ll1bench.Grammar {
	t.Helper()
	b := ll1bench.NewGrammarBuilder("S")
	b.LHS("S").T(ll1bench.InlineTerminal("if")).N("E").T(ll1bench.InlineTerminal("then")).N("S").N("S'").End()
	b.LHS("S").T(ll1bench.InlineTerminal("a")).End()
	b.LHS("S'").T(ll1bench.InlineTerminal("else")).N("S").End()
	b.LHS("S'").Epsilon()
	b.LHS("E").T(ll1bench.InlineTerminal("b")).End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("Grammar() error: %v", err)
	}
	return g
}

func TestGrammarRendersEveryHead(t *testing.T) {
	g := danglingElseGrammar(t)
	var buf bytes.Buffer
	Grammar(&buf, g)
	out := buf.String()
	for _, head := range g.Nonterminals() {
		if !strings.Contains(out, head) {
			t.Errorf("rendered grammar tree missing head %q:\n%s", head, out)
		}
	}
}

func TestGrammarRendersTokenDeclarations(t *testing.T) {
	b := ll1bench.NewGrammarBuilder("S")
	b.AddTokenDecl("NUM", "[0-9]+")
	b.LHS("S").T(ll1bench.NamedTerminal("NUM")).End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("Grammar() error: %v", err)
	}

	var buf bytes.Buffer
	Grammar(&buf, g)
	if !strings.Contains(buf.String(), "NUM = /[0-9]+/") {
		t.Errorf("rendered grammar missing token declaration:\n%s", buf.String())
	}
}

func TestConflictsReportsNoConflictsMessage(t *testing.T) {
	var buf bytes.Buffer
	Conflicts(&buf, nil)
	if !strings.Contains(buf.String(), "no LL(1) conflicts") {
		t.Errorf("expected a no-conflicts message, got %q", buf.String())
	}
}

func TestConflictsReportsEachConflict(t *testing.T) {
	g := danglingElseGrammar(t)
	f := analysis.First(g)
	fw := analysis.Follow(g, f)
	conflicts := analysis.Check(g, f, fw)

	var buf bytes.Buffer
	Conflicts(&buf, conflicts)
	if !strings.Contains(buf.String(), "S'") {
		t.Errorf("expected the conflict report to name S', got %q", buf.String())
	}
}

func TestTableFlagsMultiEntryCells(t *testing.T) {
	b := ll1bench.NewGrammarBuilder("E")
	b.LHS("E").N("E").T(ll1bench.InlineTerminal("+")).N("T").End()
	b.LHS("E").N("T").End()
	b.LHS("T").N("id").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("Grammar() error: %v", err)
	}
	f := analysis.First(g)
	fw := analysis.Follow(g, f)
	table := analysis.Build(g, f, fw)

	var buf bytes.Buffer
	Table(&buf, g, table)
	if !strings.Contains(buf.String(), "!") {
		t.Errorf("expected a flagged conflict cell in table output, got %q", buf.String())
	}
}

func TestSuggestionsRendersNoAutomaticFixMessage(t *testing.T) {
	suggestions := []repair.Suggestion{
		{Head: "X", ConflictKind: analysis.FirstFollow, Technique: repair.NoAutomaticFix, Message: "intrinsic ambiguity"},
	}
	var buf bytes.Buffer
	Suggestions(&buf, suggestions)
	if !strings.Contains(buf.String(), "intrinsic ambiguity") {
		t.Errorf("expected the NoAutomaticFix message, got %q", buf.String())
	}
}

func TestReportRunsTheWholePipeline(t *testing.T) {
	g := danglingElseGrammar(t)
	cache := analysis.NewCache()
	res, err := cache.Analyze(g)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	suggestions := repair.Suggest(g, res.Conflicts)

	var buf bytes.Buffer
	Report(&buf, g, res, suggestions)
	if buf.Len() == 0 {
		t.Errorf("expected Report to write a non-empty report")
	}
}

package present

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/npillmayer/ll1bench"
	"github.com/npillmayer/ll1bench/analysis"
	"github.com/npillmayer/ll1bench/repair"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Grammar renders g's rules as a tree rooted at its start symbol, one
// branch per nonterminal in declaration order, one leaf per alternative,
// followed by one branch per declared token pattern.
func Grammar(w io.Writer, g *ll1bench.Grammar) {
	root := pterm.TreeNode{
		Text: "start: " + g.Start(),
	}
	for _, r := range g.Rules() {
		node := pterm.TreeNode{Text: r.Head}
		for _, alt := range r.Alternatives {
			node.Children = append(node.Children, pterm.TreeNode{Text: alt.String()})
		}
		root.Children = append(root.Children, node)
	}
	if decls := g.TokenDecls(); len(decls) > 0 {
		tokens := pterm.TreeNode{Text: "tokens"}
		for _, d := range decls {
			tokens.Children = append(tokens.Children, pterm.TreeNode{Text: d.Name + " = /" + d.Pattern + "/"})
		}
		root.Children = append(root.Children, tokens)
	}
	s, err := pterm.DefaultTree.WithRoot(root).Srender()
	if err != nil {
		fmt.Fprintf(w, "error rendering grammar tree: %v\n", err)
		return
	}
	fmt.Fprintln(w, s)
}

// Sets renders FIRST and FOLLOW for every nonterminal of g as two tables.
func Sets(w io.Writer, g *ll1bench.Grammar, f analysis.FirstMap, fw analysis.FollowMap) {
	firstData := pterm.TableData{{"Nonterminal", "FIRST"}}
	followData := pterm.TableData{{"Nonterminal", "FOLLOW"}}
	for _, nt := range g.Nonterminals() {
		firstData = append(firstData, []string{nt, fmt.Sprint(f[nt].Values())})
		followData = append(followData, []string{nt, fmt.Sprint(fw[nt].Values())})
	}
	renderTable(w, "FIRST sets", firstData)
	renderTable(w, "FOLLOW sets", followData)
}

// Conflicts renders one colored diagnostic line per conflict: FirstFirst
// conflicts as warnings (the table still has a defined, if overlapping,
// entry), FirstFollow conflicts as errors (they signal genuine ambiguity
// around nullability).
func Conflicts(w io.Writer, conflicts []analysis.Conflict) {
	if len(conflicts) == 0 {
		fmt.Fprintln(w, pterm.Info.Sprint("no LL(1) conflicts found"))
		return
	}
	for _, c := range conflicts {
		line := fmt.Sprintf("%s conflict on %s: symbols %v", c.Kind, c.Head, c.Symbols)
		if c.Kind == analysis.FirstFollow {
			fmt.Fprintln(w, pterm.Error.Sprint(line))
		} else {
			fmt.Fprintln(w, pterm.Warning.Sprint(line))
		}
	}
}

// Table renders g's predictive parse table. Cells with more than one
// alternative (a conflict) are flagged with a leading "!".
func Table(w io.Writer, g *ll1bench.Grammar, t *analysis.ParseTable) {
	header := []string{"Head"}
	header = append(header, t.Terminals()...)
	data := pterm.TableData{header}
	for _, head := range t.Heads() {
		row := []string{head}
		for _, term := range t.Terminals() {
			cell := t.Cell(head, term)
			row = append(row, renderCell(cell))
		}
		data = append(data, row)
	}
	renderTable(w, "Predictive parse table", data)
}

func renderCell(cell []ll1bench.Alternative) string {
	switch len(cell) {
	case 0:
		return ""
	case 1:
		return cell[0].String()
	default:
		s := "!"
		for i, alt := range cell {
			if i > 0 {
				s += " / "
			}
			s += alt.String()
		}
		return s
	}
}

// Suggestions renders one block per repair suggestion: the technique, and
// either the proposed rules or the NoAutomaticFix message.
func Suggestions(w io.Writer, suggestions []repair.Suggestion) {
	if len(suggestions) == 0 {
		fmt.Fprintln(w, pterm.Info.Sprint("no repairs to suggest"))
		return
	}
	for _, s := range suggestions {
		fmt.Fprintln(w, pterm.Info.Sprintf("%s (%s): %s", s.Head, s.ConflictKind, s.Technique))
		if s.Technique == repair.NoAutomaticFix {
			fmt.Fprintln(w, "  "+s.Message)
			continue
		}
		for _, rule := range s.NewRules {
			fmt.Fprintln(w, "  "+rule)
		}
	}
}

// Report renders the whole analysis pipeline in order: grammar, sets,
// conflicts, table, suggestions.
func Report(w io.Writer, g *ll1bench.Grammar, res *analysis.Result, suggestions []repair.Suggestion) {
	Grammar(w, g)
	Sets(w, g, res.First, res.Follow)
	Conflicts(w, res.Conflicts)
	Table(w, g, res.Table)
	Suggestions(w, suggestions)
}

func renderTable(w io.Writer, title string, data pterm.TableData) {
	fmt.Fprintln(w, pterm.Info.Sprint(title))
	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		fmt.Fprintf(w, "error rendering table: %v\n", err)
		return
	}
	fmt.Fprintln(w, s)
}

/*
Package ll1bench is an LL(1) grammar workbench.

Given a textual specification of a context-free grammar — a start
nonterminal, a set of production rules, and an optional section
declaring regular-expression patterns for named terminals — this
module parses the specification, computes FIRST and FOLLOW sets for
every nonterminal, checks the grammar for LL(1) conflicts, builds the
predictive parse table, and, where conflicts are found, proposes
grammar repairs (left-factoring, direct left-recursion elimination)
that may remove them. Package structure is as follows:

■ ll1bench (this package): the normalized grammar model — symbols,
alternatives, rules, and the Grammar type itself. Pure queries only.

■ analysis: computes FIRST/FOLLOW, detects LL(1) conflicts, and builds
the predictive parse table.

■ repair: suggests left-recursion elimination and left-factoring for
conflicting nonterminals.

■ reader: parses specification text into a Grammar.

■ present: renders a Grammar, its sets, conflicts, table and
suggestions for a terminal.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll1bench

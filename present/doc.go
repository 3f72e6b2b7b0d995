/*
Package present renders a Grammar, its FIRST/FOLLOW sets, its conflicts, its
predictive parse table and its repair suggestions to an io.Writer, using
pterm the way terex/terexlang/trepl renders its AST and diagnostics: a tree
for the grammar, tables for sets and the parse table, and colored info/
warning/error lines for conflicts and suggestions.

Presentation sits outside the pure analysis core: nothing here feeds back
into package analysis or package repair.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package present

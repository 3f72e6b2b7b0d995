package analysis

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/npillmayer/ll1bench"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Result bundles the analysis output for one Grammar: its FirstMap,
// FollowMap, conflict list and predictive table. It is the "do
// everything" value the CLI and presenter consume.
type Result struct {
	First     FirstMap
	Follow    FollowMap
	Conflicts []Conflict
	Table     *ParseTable
}

// Cache memoizes Analyze by a content hash of the Grammar, so that
// repeated analysis of an unchanged grammar returns the identical
// Result instance rather than an equal recomputation.
type Cache struct {
	byHash map[string]*Result
}

// NewCache creates an empty analysis cache.
func NewCache() *Cache {
	return &Cache{byHash: make(map[string]*Result)}
}

// Analyze runs First, Follow, Check and Build against g, enforcing
// grammar-level validation first. Equal grammars (by structural
// content, not by pointer identity) hit the cache and return the same
// *Result.
func (c *Cache) Analyze(g *ll1bench.Grammar) (*Result, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	hash, err := grammarHash(g)
	if err != nil {
		return nil, fmt.Errorf("hashing grammar: %w", err)
	}
	if cached, found := c.byHash[hash]; found {
		return cached, nil
	}

	first := First(g)
	follow := Follow(g, first)
	conflicts := Check(g, first, follow)
	table := Build(g, first, follow)

	result := &Result{First: first, Follow: follow, Conflicts: conflicts, Table: table}
	c.byHash[hash] = result
	return result, nil
}

// grammarSnapshot is a plain projection of a Grammar's observable
// content with exported fields, suitable for structhash — Grammar itself carries
// only unexported fields (its linkedhashmap-backed rule/token storage),
// which reflection-based hashing cannot see through meaningfully.
type grammarSnapshot struct {
	Start  string
	Rules  []string
	Tokens []string
}

func grammarHash(g *ll1bench.Grammar) (string, error) {
	snap := grammarSnapshot{Start: g.Start()}
	for _, r := range g.Rules() {
		alts := make([]string, len(r.Alternatives))
		for i, alt := range r.Alternatives {
			alts[i] = alt.String()
		}
		snap.Rules = append(snap.Rules, r.Head+" -> "+strings.Join(alts, " | "))
	}
	for _, d := range g.TokenDecls() {
		snap.Tokens = append(snap.Tokens, d.Name+" = /"+d.Pattern+"/")
	}
	return structhash.Hash(snap, 1)
}

package analysis

import (
	"sort"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Set is a sorted set of terminal display strings (and possibly "ε" or
// "$"), backed by gods' red-black-tree set. Set backs FirstMap,
// FollowMap and Conflict.Symbols throughout this package; the sorted
// iteration order is what keeps conflict reports and table columns
// deterministic.
type Set struct {
	tree *treeset.Set
}

func newSet() *Set {
	return &Set{tree: treeset.NewWith(utils.StringComparator)}
}

// add inserts value, reporting whether the set grew.
func (s *Set) add(value string) bool {
	before := s.tree.Size()
	s.tree.Add(value)
	return s.tree.Size() > before
}

// addAll inserts every value of other, reporting whether the set grew.
func (s *Set) addAll(other *Set) bool {
	if other == nil {
		return false
	}
	grew := false
	for _, v := range other.tree.Values() {
		if s.add(v.(string)) {
			grew = true
		}
	}
	return grew
}

// Has reports whether value is a member of the set.
func (s *Set) Has(value string) bool {
	return s.tree.Contains(value)
}

// Size returns the number of members.
func (s *Set) Size() int {
	return s.tree.Size()
}

// Values returns the set's members in sorted order.
func (s *Set) Values() []string {
	raw := s.tree.Values()
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		out = append(out, v.(string))
	}
	sort.Strings(out)
	return out
}

// WithoutEpsilon returns a new Set containing every member except "ε".
func (s *Set) WithoutEpsilon() *Set {
	out := newSet()
	for _, v := range s.Values() {
		if v != epsilonMarker {
			out.add(v)
		}
	}
	return out
}

// Intersect returns the intersection of s and other.
func (s *Set) Intersect(other *Set) *Set {
	out := newSet()
	for _, v := range s.Values() {
		if other.Has(v) {
			out.add(v)
		}
	}
	return out
}

// Union returns the union of s and other.
func (s *Set) Union(other *Set) *Set {
	out := newSet()
	out.addAll(s)
	out.addAll(other)
	return out
}

func (s *Set) String() string {
	return "{" + strings.Join(s.Values(), ", ") + "}"
}

// epsilonMarker/eofMarker are the sentinel display values participating
// in set membership. Kept private to this package so callers go through
// ll1bench.Epsilon / ll1bench.EOF for the public-facing constant.
const (
	epsilonMarker = "ε"
	eofMarker     = "$"
)

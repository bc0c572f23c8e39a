package axiom

import (
	"sort"

	"github.com/gnoverse/kleene/internal/term"
)

// Equivalent decides axiomatic equivalence on a restricted fragment: both
// terms are brought into a canonical form using the associativity,
// commutativity, idempotence, identity, and annihilation axioms (plus a
// handful of star theorems), then compared structurally.
//
// The check is sound: a true result is always backed by a derivable
// equivalence. It is incomplete outside the fragment; equalities that
// need distributivity or the star induction laws are not recognized.
func Equivalent(e, f term.Expr) bool {
	return term.Equal(Canonical(e), Canonical(f))
}

// Canonical computes the canonical representative of a term within the
// decided fragment: zeros propagated, units folded, compositions
// flattened right-nested, sums flattened, sorted, and deduplicated.
func Canonical(e term.Expr) term.Expr {
	switch n := e.(type) {
	case term.Seq:
		factors := seqFactors(n)
		for _, f := range factors {
			if term.IsEmpty(f) {
				return term.Zero()
			}
		}
		return term.SeqOf(factors...)

	case term.Alt:
		branches := altBranches(n)
		if len(branches) == 0 {
			return term.Zero()
		}
		return term.AltOf(branches...)

	case term.Star:
		x := Canonical(n.X)
		// 0* ~ 1 and 1* ~ 1; (a*)* ~ a* is a star theorem.
		if term.IsEmpty(x) || term.IsUnit(x) {
			return term.One()
		}
		if _, ok := x.(term.Star); ok {
			return x
		}
		return term.Star{X: x}

	default:
		return e
	}
}

// seqFactors flattens a composition into its canonical factors,
// dropping units.
func seqFactors(e term.Expr) []term.Expr {
	if s, ok := e.(term.Seq); ok {
		return append(seqFactors(s.X), seqFactors(s.Y)...)
	}
	c := Canonical(e)
	if term.IsUnit(c) {
		return nil
	}
	if s, ok := c.(term.Seq); ok {
		return append(seqFactors(s.X), seqFactors(s.Y)...)
	}
	return []term.Expr{c}
}

// altBranches flattens a sum into its canonical branches, dropping zeros
// and duplicates and sorting for a deterministic order.
func altBranches(e term.Expr) []term.Expr {
	collected := collectAlt(e, nil)

	seen := make(map[string]struct{}, len(collected))
	branches := make([]term.Expr, 0, len(collected))
	for _, b := range collected {
		if term.IsEmpty(b) {
			continue
		}
		key := b.String()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		branches = append(branches, b)
	}

	sort.Slice(branches, func(i, j int) bool {
		return branches[i].String() < branches[j].String()
	})
	return branches
}

func collectAlt(e term.Expr, acc []term.Expr) []term.Expr {
	if a, ok := e.(term.Alt); ok {
		acc = collectAlt(a.X, acc)
		return collectAlt(a.Y, acc)
	}
	c := Canonical(e)
	if a, ok := c.(term.Alt); ok {
		acc = collectAlt(a.X, acc)
		return collectAlt(a.Y, acc)
	}
	return append(acc, c)
}

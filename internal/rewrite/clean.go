// Package rewrite implements the zero/one normalization of Kleene-algebra
// terms: a bottom-up, purely syntactic pass that removes redundant
// annihilator and identity sub-terms while preserving axiomatic
// equivalence.
package rewrite

import "github.com/gnoverse/kleene/internal/term"

// Clean removes provably-redundant zero sub-terms in one bottom-up pass:
//
//	0·a, a·0  =>  0
//	0+a, a+0  =>  a
//	0*        =>  1
//
// The result is axiomatically equivalent to the input, Clean is
// idempotent, and whether Clean(e) is the zero term is invariant under
// axiomatic equivalence. Only the literal zero node triggers a rewrite;
// semantically-zero terms of other shapes pass through untouched.
func Clean(e term.Expr) term.Expr {
	switch n := e.(type) {
	case term.Seq:
		x := Clean(n.X)
		y := Clean(n.Y)
		if term.IsEmpty(x) || term.IsEmpty(y) {
			return term.Zero()
		}
		return term.Seq{X: x, Y: y}

	case term.Alt:
		x := Clean(n.X)
		y := Clean(n.Y)
		if term.IsEmpty(x) {
			return y
		}
		if term.IsEmpty(y) {
			return x
		}
		return term.Alt{X: x, Y: y}

	case term.Star:
		x := Clean(n.X)
		if term.IsEmpty(x) {
			return term.One()
		}
		return term.Star{X: x}

	default:
		return e
	}
}

// IsZero reports whether e reduces to the zero term under Clean. The test
// is sound but incomplete: a term whose zero-ness depends on the star
// induction laws rather than annihilation propagation is not recognized.
func IsZero(e term.Expr) bool {
	return term.IsEmpty(Clean(e))
}

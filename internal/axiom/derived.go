package axiom

import "github.com/gnoverse/kleene/internal/term"

// Derived proofs: combinations of primitive rules that come up often
// enough to deserve named builders. Everything here passes Check.

// AltZeroRight proves a+0 ~ a via commutativity and the left identity.
func AltZeroRight(a term.Expr) *Proof {
	return Trans(AltComm(a, term.Zero()), AltZero(a))
}

// StarEmptyUnit proves 0* ~ 1.
//
//	0* ~ 1 + 0*·0   (star unfold, flipped)
//	   ~ 1 + 0      (annihilation under the sum)
//	   ~ 0 + 1      (commutativity)
//	   ~ 1          (left identity)
func StarEmptyUnit() *Proof {
	zero := term.Zero()
	one := term.One()
	starZero := term.Closure(zero)

	unfolded := Sym(StarUnfoldLeft(zero))
	annihilated := CongAlt(Refl(one), SeqZeroRight(starZero))
	collapsed := Trans(AltComm(one, zero), AltZero(one))

	return Trans(unfolded, Trans(annihilated, collapsed))
}

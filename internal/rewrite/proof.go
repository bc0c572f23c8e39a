package rewrite

import (
	"github.com/gnoverse/kleene/internal/axiom"
	"github.com/gnoverse/kleene/internal/term"
)

// CleanProof materializes the soundness witness of Clean: a checkable
// proof that e ~ Clean(e). The proof mirrors the traversal of Clean,
// combining congruence steps with the annihilation and identity axioms
// at every node where a rewrite fired.
func CleanProof(e term.Expr) *axiom.Proof {
	switch n := e.(type) {
	case term.Seq:
		px := CleanProof(n.X)
		py := CleanProof(n.Y)
		cong := axiom.CongSeq(px, py)
		cx, cy := px.Rhs, py.Rhs
		if term.IsEmpty(cx) {
			return axiom.Trans(cong, axiom.SeqZeroLeft(cy))
		}
		if term.IsEmpty(cy) {
			return axiom.Trans(cong, axiom.SeqZeroRight(cx))
		}
		return cong

	case term.Alt:
		px := CleanProof(n.X)
		py := CleanProof(n.Y)
		cong := axiom.CongAlt(px, py)
		cx, cy := px.Rhs, py.Rhs
		if term.IsEmpty(cx) {
			return axiom.Trans(cong, axiom.AltZero(cy))
		}
		if term.IsEmpty(cy) {
			return axiom.Trans(cong, axiom.AltZeroRight(cx))
		}
		return cong

	case term.Star:
		px := CleanProof(n.X)
		cong := axiom.CongStar(px)
		if term.IsEmpty(px.Rhs) {
			return axiom.Trans(cong, axiom.StarEmptyUnit())
		}
		return cong

	default:
		return axiom.Refl(e)
	}
}

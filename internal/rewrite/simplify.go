package rewrite

import "github.com/gnoverse/kleene/internal/term"

// Simplify layers identity folding on top of Clean:
//
//	1·a, a·1   =>  a
//	a+a        =>  a
//	1*         =>  1
//	(a*)*      =>  a*
//
// Unlike Clean, Simplify is not the certified zero oracle; its soundness
// is established by evaluating both sides under concrete models.
func Simplify(e term.Expr) term.Expr {
	return foldUnits(Clean(e))
}

func foldUnits(e term.Expr) term.Expr {
	switch n := e.(type) {
	case term.Seq:
		x := foldUnits(n.X)
		y := foldUnits(n.Y)
		if term.IsUnit(x) {
			return y
		}
		if term.IsUnit(y) {
			return x
		}
		return term.Seq{X: x, Y: y}

	case term.Alt:
		x := foldUnits(n.X)
		y := foldUnits(n.Y)
		if term.Equal(x, y) {
			return x
		}
		return term.Alt{X: x, Y: y}

	case term.Star:
		x := foldUnits(n.X)
		if term.IsUnit(x) {
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

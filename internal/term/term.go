package term

import "fmt"

// Expr is a node of the free Kleene-algebra term language.
// Terms are immutable, structurally shared trees; two syntactically
// distinct terms are different data even when they denote the same
// algebraic value.
type Expr interface {
	isExpr()
	String() string
}

// Unit is the multiplicative identity (the "one" term).
type Unit struct{}

func (Unit) isExpr()        {}
func (Unit) String() string { return "1" }

// Empty is the additive identity and composition annihilator (the "zero" term).
type Empty struct{}

func (Empty) isExpr()        {}
func (Empty) String() string { return "0" }

// Seq is sequential composition: X then Y.
type Seq struct {
	X, Y Expr
}

func (Seq) isExpr() {}
func (e Seq) String() string {
	return "(" + e.X.String() + "·" + e.Y.String() + ")"
}

// Alt is non-deterministic choice: X or Y.
type Alt struct {
	X, Y Expr
}

func (Alt) isExpr() {}
func (e Alt) String() string {
	return "(" + e.X.String() + "+" + e.Y.String() + ")"
}

// Star is Kleene closure: zero or more repetitions of X.
type Star struct {
	X Expr
}

func (Star) isExpr() {}
func (e Star) String() string {
	return e.X.String() + "*"
}

// Atom references a generator by its (positive) index in a typing
// environment. The term language knows nothing about the generator
// beyond the index.
type Atom struct {
	Index int
}

func (Atom) isExpr() {}
func (e Atom) String() string {
	return fmt.Sprintf("x%d", e.Index)
}

// Helper constructors

// One returns the multiplicative identity term.
func One() Expr { return Unit{} }

// Zero returns the additive identity term.
func Zero() Expr { return Empty{} }

// Dot creates a sequential composition.
func Dot(x, y Expr) Expr { return Seq{X: x, Y: y} }

// Plus creates a choice.
func Plus(x, y Expr) Expr { return Alt{X: x, Y: y} }

// Closure creates a Kleene star.
func Closure(x Expr) Expr { return Star{X: x} }

// Gen creates a generator reference.
func Gen(index int) Expr { return Atom{Index: index} }

// SeqOf composes the given terms left to right, right-nested.
// SeqOf() is the unit term.
func SeqOf(exprs ...Expr) Expr {
	if len(exprs) == 0 {
		return Unit{}
	}
	result := exprs[len(exprs)-1]
	for i := len(exprs) - 2; i >= 0; i-- {
		result = Seq{X: exprs[i], Y: result}
	}
	return result
}

// AltOf sums the given terms, right-nested. AltOf() is the zero term.
func AltOf(exprs ...Expr) Expr {
	if len(exprs) == 0 {
		return Empty{}
	}
	result := exprs[len(exprs)-1]
	for i := len(exprs) - 2; i >= 0; i-- {
		result = Alt{X: exprs[i], Y: result}
	}
	return result
}

// IsEmpty reports whether e is the literal zero term.
// This is a deliberately syntactic test: semantically-zero terms of
// other shapes are not recognized.
func IsEmpty(e Expr) bool {
	_, ok := e.(Empty)
	return ok
}

// IsUnit reports whether e is the literal unit term.
func IsUnit(e Expr) bool {
	_, ok := e.(Unit)
	return ok
}

// Equal reports structural equality of two terms.
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case Unit:
		return IsUnit(b)
	case Empty:
		return IsEmpty(b)
	case Atom:
		y, ok := b.(Atom)
		return ok && x.Index == y.Index
	case Seq:
		y, ok := b.(Seq)
		return ok && Equal(x.X, y.X) && Equal(x.Y, y.Y)
	case Alt:
		y, ok := b.(Alt)
		return ok && Equal(x.X, y.X) && Equal(x.Y, y.Y)
	case Star:
		y, ok := b.(Star)
		return ok && Equal(x.X, y.X)
	default:
		return false
	}
}

// Size returns the number of nodes in the term.
func Size(e Expr) int {
	switch x := e.(type) {
	case Seq:
		return 1 + Size(x.X) + Size(x.Y)
	case Alt:
		return 1 + Size(x.X) + Size(x.Y)
	case Star:
		return 1 + Size(x.X)
	default:
		return 1
	}
}

// Walk visits e and its sub-terms in preorder. If fn returns false the
// walk stops early.
func Walk(e Expr, fn func(Expr) bool) bool {
	if !fn(e) {
		return false
	}
	switch x := e.(type) {
	case Seq:
		return Walk(x.X, fn) && Walk(x.Y, fn)
	case Alt:
		return Walk(x.X, fn) && Walk(x.Y, fn)
	case Star:
		return Walk(x.X, fn)
	}
	return true
}

// Atoms returns the set of generator indices referenced by e.
func Atoms(e Expr) map[int]struct{} {
	indices := make(map[int]struct{})
	Walk(e, func(sub Expr) bool {
		if a, ok := sub.(Atom); ok {
			indices[a.Index] = struct{}{}
		}
		return true
	})
	return indices
}

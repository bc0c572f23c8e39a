package eval

import "github.com/gnoverse/kleene/internal/term"

// Type inference runs before evaluation (the typing judgment is not
// syntax-directed at composition boundaries, so intermediate types are
// chosen here once, by unification against the generator table, instead
// of being re-derived during evaluation).

type typeVar int

// unifier is a union-find over type variables with at most one object
// type bound per class.
type unifier struct {
	parent []typeVar
	bound  map[typeVar]ObjectType
}

func newUnifier() *unifier {
	return &unifier{bound: make(map[typeVar]ObjectType)}
}

func (u *unifier) fresh() typeVar {
	v := typeVar(len(u.parent))
	u.parent = append(u.parent, v)
	return v
}

func (u *unifier) find(v typeVar) typeVar {
	for u.parent[v] != v {
		u.parent[v] = u.parent[u.parent[v]]
		v = u.parent[v]
	}
	return v
}

// union merges the classes of a and b. A conflict between two bound
// classes is reported as a type error at the given sub-expression.
func (u *unifier) union(a, b typeVar, at term.Expr, where string) error {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return nil
	}
	ta, aok := u.bound[ra]
	tb, bok := u.bound[rb]
	if aok && bok && ta != tb {
		return &TypeError{Expr: at, Where: where, Want: ta, Got: tb}
	}
	u.parent[rb] = ra
	if !aok && bok {
		u.bound[ra] = tb
	}
	delete(u.bound, rb)
	if aok {
		u.bound[ra] = ta
	}
	return nil
}

// bind fixes the class of v to the object type t.
func (u *unifier) bind(v typeVar, t ObjectType, at term.Expr, where string) error {
	r := u.find(v)
	if existing, ok := u.bound[r]; ok {
		if existing != t {
			return &TypeError{Expr: at, Where: where, Want: existing, Got: t}
		}
		return nil
	}
	u.bound[r] = t
	return nil
}

// resolve returns the object type bound to v's class, if any.
func (u *unifier) resolve(v typeVar) (ObjectType, bool) {
	t, ok := u.bound[u.find(v)]
	return t, ok
}

// resolveOr resolves v, binding its class to fallback when it is still
// free. Free classes only survive inference inside sub-terms that Clean
// would collapse to zero, where any consistent choice evaluates to the
// model's zero value; binding keeps later lookups of the same class
// consistent.
func (u *unifier) resolveOr(v typeVar, fallback ObjectType) ObjectType {
	r := u.find(v)
	if t, ok := u.bound[r]; ok {
		return t
	}
	u.bound[r] = fallback
	return fallback
}

// node is the typed skeleton of a term: one entry per syntactic position
// (structural sharing in the term does not merge positions, so identical
// sub-terms may receive different types).
type node struct {
	expr term.Expr
	src  typeVar
	dst  typeVar
	kids []*node
}

// build walks the term, allocating type variables per position and
// recording the constraints of the evaluation judgment:
//
//	unit, star  : source = target
//	atom(i)     : endpoints fixed by the generator table
//	seq(x, y)   : a fresh intermediate joins x's target to y's source
//	alt(x, y)   : both branches share the node's endpoints
//	empty       : unconstrained (polymorphic)
func (u *unifier) build(env *Env, e term.Expr, src, dst typeVar) (*node, error) {
	n := &node{expr: e, src: src, dst: dst}

	switch x := e.(type) {
	case term.Unit:
		if err := u.union(src, dst, e, "target"); err != nil {
			return nil, err
		}

	case term.Empty:
		// polymorphic

	case term.Atom:
		g, ok := env.Generator(x.Index)
		if !ok {
			return nil, &MalformedEnvironmentError{Index: x.Index}
		}
		if err := u.bind(src, g.Source, e, "source"); err != nil {
			return nil, err
		}
		if err := u.bind(dst, g.Target, e, "target"); err != nil {
			return nil, err
		}

	case term.Seq:
		mid := u.fresh()
		left, err := u.build(env, x.X, src, mid)
		if err != nil {
			return nil, err
		}
		right, err := u.build(env, x.Y, mid, dst)
		if err != nil {
			return nil, err
		}
		n.kids = []*node{left, right}

	case term.Alt:
		left, err := u.build(env, x.X, src, dst)
		if err != nil {
			return nil, err
		}
		right, err := u.build(env, x.Y, src, dst)
		if err != nil {
			return nil, err
		}
		n.kids = []*node{left, right}

	case term.Star:
		if err := u.union(src, dst, e, "target"); err != nil {
			return nil, err
		}
		sub, err := u.build(env, x.X, src, src)
		if err != nil {
			return nil, err
		}
		n.kids = []*node{sub}
	}

	return n, nil
}

// Typing reports the endpoint types inferred for a term when the root is
// left open. An endpoint is forced when the term itself pins it down;
// unforced endpoints occur exactly when the corresponding side of the
// term is free to evaluate at any object (the semi-injectivity fragment:
// clean-zero terms and bare identities).
type Typing struct {
	Source       ObjectType
	Target       ObjectType
	SourceForced bool
	TargetForced bool
}

// Infer type-checks e against env without fixing the root endpoints and
// reports which endpoints the term forces. A type error means no typing
// exists at any endpoints.
func Infer(env *Env, e term.Expr) (Typing, error) {
	u := newUnifier()
	sv, dv := u.fresh(), u.fresh()
	if _, err := u.build(env, e, sv, dv); err != nil {
		return Typing{}, err
	}

	var t Typing
	if ot, ok := u.resolve(sv); ok {
		t.Source, t.SourceForced = ot, true
	}
	if ot, ok := u.resolve(dv); ok {
		t.Target, t.TargetForced = ot, true
	}
	return t, nil
}

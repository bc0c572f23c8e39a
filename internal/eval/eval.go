package eval

import (
	"fmt"
	"strings"

	"github.com/gnoverse/kleene/internal/term"
)

// Derivation is the trace of one evaluation: the expression, the object
// types actually chosen for it, the resulting value, and the
// sub-derivations in syntactic order. Seq nodes expose the intermediate
// type through their children's endpoints.
type Derivation struct {
	Expr   term.Expr
	Source ObjectType
	Target ObjectType
	Value  Value
	Subs   []*Derivation
}

// Evaluate computes the value of e as a morphism src -> dst under env,
// returning the full derivation. Evaluation is deterministic: the typing
// is inferred once up front, so repeated calls with the same inputs take
// the same derivation.
//
// Errors: *TypeError when no consistent typing exists, and
// *MalformedEnvironmentError when e references an unbound generator.
// Model operation failures are wrapped with the sub-expression that
// triggered them.
func Evaluate(m Model, env *Env, e term.Expr, src, dst ObjectType) (*Derivation, error) {
	u := newUnifier()
	sv, dv := u.fresh(), u.fresh()
	if err := u.bind(sv, src, e, "source"); err != nil {
		return nil, err
	}
	if err := u.bind(dv, dst, e, "target"); err != nil {
		return nil, err
	}

	root, err := u.build(env, e, sv, dv)
	if err != nil {
		return nil, err
	}

	return evalNode(m, env, root, u, dst)
}

func evalNode(m Model, env *Env, n *node, u *unifier, fallback ObjectType) (*Derivation, error) {
	src := u.resolveOr(n.src, fallback)
	dst := u.resolveOr(n.dst, fallback)
	d := &Derivation{Expr: n.expr, Source: src, Target: dst}

	switch x := n.expr.(type) {
	case term.Unit:
		d.Value = m.One(src)

	case term.Empty:
		d.Value = m.Zero(src, dst)

	case term.Atom:
		g, ok := env.Generator(x.Index)
		if !ok {
			return nil, &MalformedEnvironmentError{Index: x.Index}
		}
		d.Value = g.Value

	case term.Seq:
		left, err := evalNode(m, env, n.kids[0], u, fallback)
		if err != nil {
			return nil, err
		}
		right, err := evalNode(m, env, n.kids[1], u, fallback)
		if err != nil {
			return nil, err
		}
		v, err := m.Dot(left.Value, right.Value)
		if err != nil {
			return nil, fmt.Errorf("compose %s: %w", n.expr, err)
		}
		d.Value = v
		d.Subs = []*Derivation{left, right}

	case term.Alt:
		left, err := evalNode(m, env, n.kids[0], u, fallback)
		if err != nil {
			return nil, err
		}
		right, err := evalNode(m, env, n.kids[1], u, fallback)
		if err != nil {
			return nil, err
		}
		v, err := m.Plus(left.Value, right.Value)
		if err != nil {
			return nil, fmt.Errorf("sum %s: %w", n.expr, err)
		}
		d.Value = v
		d.Subs = []*Derivation{left, right}

	case term.Star:
		sub, err := evalNode(m, env, n.kids[0], u, fallback)
		if err != nil {
			return nil, err
		}
		v, err := m.Star(sub.Value)
		if err != nil {
			return nil, fmt.Errorf("close %s: %w", n.expr, err)
		}
		d.Value = v
		d.Subs = []*Derivation{sub}
	}

	return d, nil
}

// String renders the derivation as an indented trace.
func (d *Derivation) String() string {
	var b strings.Builder
	d.format(&b, 0)
	return b.String()
}

func (d *Derivation) format(b *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(b, "%s%s : %s -> %s = %s\n", indent, d.Expr, d.Source, d.Target, d.Value)
	for _, sub := range d.Subs {
		sub.format(b, depth+1)
	}
}

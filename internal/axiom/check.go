package axiom

import (
	"fmt"

	"github.com/gnoverse/kleene/internal/term"
)

// Check validates a proof tree: every node must be a well-formed instance
// of its rule, and sub-proof conclusions must line up with what the node
// claims. A nil error means Lhs ~ Rhs is derivable from the axioms.
func Check(p *Proof) error {
	if p == nil {
		return fmt.Errorf("nil proof")
	}

	switch p.Rule {
	case RuleRefl:
		if err := arity(p, 0); err != nil {
			return err
		}
		if !term.Equal(p.Lhs, p.Rhs) {
			return malformed(p, "sides differ")
		}
		return nil

	case RuleSym:
		if err := arity(p, 1); err != nil {
			return err
		}
		sub := p.Subs[0]
		if !term.Equal(p.Lhs, sub.Rhs) || !term.Equal(p.Rhs, sub.Lhs) {
			return malformed(p, "conclusion is not the flipped premise")
		}
		return Check(sub)

	case RuleTrans:
		if err := arity(p, 2); err != nil {
			return err
		}
		first, second := p.Subs[0], p.Subs[1]
		if !term.Equal(first.Rhs, second.Lhs) {
			return malformed(p, "middle terms do not match: "+first.Rhs.String()+" vs "+second.Lhs.String())
		}
		if !term.Equal(p.Lhs, first.Lhs) || !term.Equal(p.Rhs, second.Rhs) {
			return malformed(p, "endpoints do not match premises")
		}
		if err := Check(first); err != nil {
			return err
		}
		return Check(second)

	case RuleSeqAssoc:
		lhs, ok := asSeq(p.Lhs)
		if !ok {
			return malformed(p, "left side is not a composition")
		}
		inner, ok := asSeq(lhs.X)
		if !ok {
			return malformed(p, "left side is not left-nested")
		}
		want := term.Dot(inner.X, term.Dot(inner.Y, lhs.Y))
		return expect(p, want)

	case RuleSeqUnitLeft:
		lhs, ok := asSeq(p.Lhs)
		if !ok || !term.IsUnit(lhs.X) {
			return malformed(p, "left side is not 1·a")
		}
		return expect(p, lhs.Y)

	case RuleSeqUnitRight:
		lhs, ok := asSeq(p.Lhs)
		if !ok || !term.IsUnit(lhs.Y) {
			return malformed(p, "left side is not a·1")
		}
		return expect(p, lhs.X)

	case RuleSeqZeroLeft:
		lhs, ok := asSeq(p.Lhs)
		if !ok || !term.IsEmpty(lhs.X) {
			return malformed(p, "left side is not 0·a")
		}
		return expect(p, term.Zero())

	case RuleSeqZeroRight:
		lhs, ok := asSeq(p.Lhs)
		if !ok || !term.IsEmpty(lhs.Y) {
			return malformed(p, "left side is not a·0")
		}
		return expect(p, term.Zero())

	case RuleDistribLeft:
		lhs, ok := asSeq(p.Lhs)
		if !ok {
			return malformed(p, "left side is not a composition")
		}
		sum, ok := asAlt(lhs.Y)
		if !ok {
			return malformed(p, "right factor is not a sum")
		}
		want := term.Plus(term.Dot(lhs.X, sum.X), term.Dot(lhs.X, sum.Y))
		return expect(p, want)

	case RuleDistribRight:
		lhs, ok := asSeq(p.Lhs)
		if !ok {
			return malformed(p, "left side is not a composition")
		}
		sum, ok := asAlt(lhs.X)
		if !ok {
			return malformed(p, "left factor is not a sum")
		}
		want := term.Plus(term.Dot(sum.X, lhs.Y), term.Dot(sum.Y, lhs.Y))
		return expect(p, want)

	case RuleAltAssoc:
		lhs, ok := asAlt(p.Lhs)
		if !ok {
			return malformed(p, "left side is not a sum")
		}
		inner, ok := asAlt(lhs.X)
		if !ok {
			return malformed(p, "left side is not left-nested")
		}
		want := term.Plus(inner.X, term.Plus(inner.Y, lhs.Y))
		return expect(p, want)

	case RuleAltComm:
		lhs, ok := asAlt(p.Lhs)
		if !ok {
			return malformed(p, "left side is not a sum")
		}
		return expect(p, term.Plus(lhs.Y, lhs.X))

	case RuleAltIdem:
		lhs, ok := asAlt(p.Lhs)
		if !ok || !term.Equal(lhs.X, lhs.Y) {
			return malformed(p, "left side is not a+a")
		}
		return expect(p, lhs.X)

	case RuleAltZero:
		lhs, ok := asAlt(p.Lhs)
		if !ok || !term.IsEmpty(lhs.X) {
			return malformed(p, "left side is not 0+a")
		}
		return expect(p, lhs.Y)

	case RuleStarUnfoldLeft:
		if err := arity(p, 0); err != nil {
			return err
		}
		star, ok := asStar(p.Rhs)
		if !ok {
			return malformed(p, "right side is not a closure")
		}
		want := term.Plus(term.One(), term.Dot(term.Closure(star.X), star.X))
		if !term.Equal(p.Lhs, want) {
			return malformed(p, "left side is not 1 + a*·a")
		}
		return nil

	case RuleStarUnfoldRight:
		if err := arity(p, 0); err != nil {
			return err
		}
		star, ok := asStar(p.Rhs)
		if !ok {
			return malformed(p, "right side is not a closure")
		}
		want := term.Plus(term.One(), term.Dot(star.X, term.Closure(star.X)))
		if !term.Equal(p.Lhs, want) {
			return malformed(p, "left side is not 1 + a·a*")
		}
		return nil

	case RuleStarInductLeft:
		if err := arity(p, 1); err != nil {
			return err
		}
		lhs, ok := asAlt(p.Lhs)
		if !ok {
			return malformed(p, "left side is not a sum")
		}
		comp, ok := asSeq(lhs.X)
		if !ok {
			return malformed(p, "left summand is not a composition")
		}
		star, ok := asStar(comp.X)
		if !ok {
			return malformed(p, "left summand head is not a closure")
		}
		x := lhs.Y
		if !term.Equal(comp.Y, x) || !term.Equal(p.Rhs, x) {
			return malformed(p, "conclusion is not a*·x + x ~ x")
		}
		premise := p.Subs[0]
		wantLhs := term.Plus(term.Dot(star.X, x), x)
		if !term.Equal(premise.Lhs, wantLhs) || !term.Equal(premise.Rhs, x) {
			return malformed(p, "premise is not a·x + x ~ x")
		}
		return Check(premise)

	case RuleStarInductRight:
		if err := arity(p, 1); err != nil {
			return err
		}
		lhs, ok := asAlt(p.Lhs)
		if !ok {
			return malformed(p, "left side is not a sum")
		}
		comp, ok := asSeq(lhs.X)
		if !ok {
			return malformed(p, "left summand is not a composition")
		}
		star, ok := asStar(comp.Y)
		if !ok {
			return malformed(p, "left summand tail is not a closure")
		}
		x := lhs.Y
		if !term.Equal(comp.X, x) || !term.Equal(p.Rhs, x) {
			return malformed(p, "conclusion is not x·a* + x ~ x")
		}
		premise := p.Subs[0]
		wantLhs := term.Plus(term.Dot(x, star.X), x)
		if !term.Equal(premise.Lhs, wantLhs) || !term.Equal(premise.Rhs, x) {
			return malformed(p, "premise is not x·a + x ~ x")
		}
		return Check(premise)

	case RuleCongSeq:
		if err := arity(p, 2); err != nil {
			return err
		}
		lhs, lok := asSeq(p.Lhs)
		rhs, rok := asSeq(p.Rhs)
		if !lok || !rok {
			return malformed(p, "sides are not compositions")
		}
		first, second := p.Subs[0], p.Subs[1]
		if !term.Equal(lhs.X, first.Lhs) || !term.Equal(rhs.X, first.Rhs) ||
			!term.Equal(lhs.Y, second.Lhs) || !term.Equal(rhs.Y, second.Rhs) {
			return malformed(p, "factors do not match premises")
		}
		if err := Check(first); err != nil {
			return err
		}
		return Check(second)

	case RuleCongAlt:
		if err := arity(p, 2); err != nil {
			return err
		}
		lhs, lok := asAlt(p.Lhs)
		rhs, rok := asAlt(p.Rhs)
		if !lok || !rok {
			return malformed(p, "sides are not sums")
		}
		first, second := p.Subs[0], p.Subs[1]
		if !term.Equal(lhs.X, first.Lhs) || !term.Equal(rhs.X, first.Rhs) ||
			!term.Equal(lhs.Y, second.Lhs) || !term.Equal(rhs.Y, second.Rhs) {
			return malformed(p, "summands do not match premises")
		}
		if err := Check(first); err != nil {
			return err
		}
		return Check(second)

	case RuleCongStar:
		if err := arity(p, 1); err != nil {
			return err
		}
		lhs, lok := asStar(p.Lhs)
		rhs, rok := asStar(p.Rhs)
		if !lok || !rok {
			return malformed(p, "sides are not closures")
		}
		sub := p.Subs[0]
		if !term.Equal(lhs.X, sub.Lhs) || !term.Equal(rhs.X, sub.Rhs) {
			return malformed(p, "bodies do not match premise")
		}
		return Check(sub)

	default:
		return fmt.Errorf("unknown rule %d", p.Rule)
	}
}

func arity(p *Proof, n int) error {
	if len(p.Subs) != n {
		return fmt.Errorf("%s: want %d sub-proofs, have %d", p.Rule, n, len(p.Subs))
	}
	return nil
}

func malformed(p *Proof, detail string) error {
	return fmt.Errorf("%s: malformed instance %s ~ %s: %s", p.Rule, p.Lhs, p.Rhs, detail)
}

func expect(p *Proof, want term.Expr) error {
	if len(p.Subs) != 0 {
		return fmt.Errorf("%s: axiom instance must not carry sub-proofs", p.Rule)
	}
	if !term.Equal(p.Rhs, want) {
		return malformed(p, "want right side "+want.String())
	}
	return nil
}

func asSeq(e term.Expr) (term.Seq, bool) {
	s, ok := e.(term.Seq)
	return s, ok
}

func asAlt(e term.Expr) (term.Alt, bool) {
	a, ok := e.(term.Alt)
	return a, ok
}

func asStar(e term.Expr) (term.Star, bool) {
	s, ok := e.(term.Star)
	return s, ok
}

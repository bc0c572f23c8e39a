package axiom

import "github.com/gnoverse/kleene/internal/term"

// Proof is a derivation of an axiomatic equivalence Lhs ~ Rhs, represented
// as a tree of rule instances. Proofs are plain data; Check validates that
// every node really is an instance of its rule.
type Proof struct {
	Rule Rule
	Lhs  term.Expr
	Rhs  term.Expr
	Subs []*Proof
}

// Refl proves e ~ e.
func Refl(e term.Expr) *Proof {
	return &Proof{Rule: RuleRefl, Lhs: e, Rhs: e}
}

// Sym flips a proof of e ~ f into a proof of f ~ e.
func Sym(p *Proof) *Proof {
	return &Proof{Rule: RuleSym, Lhs: p.Rhs, Rhs: p.Lhs, Subs: []*Proof{p}}
}

// Trans chains a proof of e ~ f with a proof of f ~ g into e ~ g.
// The middle terms must match; Check rejects the proof otherwise.
func Trans(p, q *Proof) *Proof {
	return &Proof{Rule: RuleTrans, Lhs: p.Lhs, Rhs: q.Rhs, Subs: []*Proof{p, q}}
}

// SeqAssoc proves (a·b)·c ~ a·(b·c).
func SeqAssoc(a, b, c term.Expr) *Proof {
	return &Proof{
		Rule: RuleSeqAssoc,
		Lhs:  term.Dot(term.Dot(a, b), c),
		Rhs:  term.Dot(a, term.Dot(b, c)),
	}
}

// SeqUnitLeft proves 1·a ~ a.
func SeqUnitLeft(a term.Expr) *Proof {
	return &Proof{Rule: RuleSeqUnitLeft, Lhs: term.Dot(term.One(), a), Rhs: a}
}

// SeqUnitRight proves a·1 ~ a.
func SeqUnitRight(a term.Expr) *Proof {
	return &Proof{Rule: RuleSeqUnitRight, Lhs: term.Dot(a, term.One()), Rhs: a}
}

// SeqZeroLeft proves 0·a ~ 0.
func SeqZeroLeft(a term.Expr) *Proof {
	return &Proof{Rule: RuleSeqZeroLeft, Lhs: term.Dot(term.Zero(), a), Rhs: term.Zero()}
}

// SeqZeroRight proves a·0 ~ 0.
func SeqZeroRight(a term.Expr) *Proof {
	return &Proof{Rule: RuleSeqZeroRight, Lhs: term.Dot(a, term.Zero()), Rhs: term.Zero()}
}

// DistribLeft proves a·(b+c) ~ a·b + a·c.
func DistribLeft(a, b, c term.Expr) *Proof {
	return &Proof{
		Rule: RuleDistribLeft,
		Lhs:  term.Dot(a, term.Plus(b, c)),
		Rhs:  term.Plus(term.Dot(a, b), term.Dot(a, c)),
	}
}

// DistribRight proves (a+b)·c ~ a·c + b·c.
func DistribRight(a, b, c term.Expr) *Proof {
	return &Proof{
		Rule: RuleDistribRight,
		Lhs:  term.Dot(term.Plus(a, b), c),
		Rhs:  term.Plus(term.Dot(a, c), term.Dot(b, c)),
	}
}

// AltAssoc proves (a+b)+c ~ a+(b+c).
func AltAssoc(a, b, c term.Expr) *Proof {
	return &Proof{
		Rule: RuleAltAssoc,
		Lhs:  term.Plus(term.Plus(a, b), c),
		Rhs:  term.Plus(a, term.Plus(b, c)),
	}
}

// AltComm proves a+b ~ b+a.
func AltComm(a, b term.Expr) *Proof {
	return &Proof{Rule: RuleAltComm, Lhs: term.Plus(a, b), Rhs: term.Plus(b, a)}
}

// AltIdem proves a+a ~ a.
func AltIdem(a term.Expr) *Proof {
	return &Proof{Rule: RuleAltIdem, Lhs: term.Plus(a, a), Rhs: a}
}

// AltZero proves 0+a ~ a.
func AltZero(a term.Expr) *Proof {
	return &Proof{Rule: RuleAltZero, Lhs: term.Plus(term.Zero(), a), Rhs: a}
}

// StarUnfoldLeft proves 1 + a*·a ~ a*.
func StarUnfoldLeft(a term.Expr) *Proof {
	return &Proof{
		Rule: RuleStarUnfoldLeft,
		Lhs:  term.Plus(term.One(), term.Dot(term.Closure(a), a)),
		Rhs:  term.Closure(a),
	}
}

// StarUnfoldRight proves 1 + a·a* ~ a*.
func StarUnfoldRight(a term.Expr) *Proof {
	return &Proof{
		Rule: RuleStarUnfoldRight,
		Lhs:  term.Plus(term.One(), term.Dot(a, term.Closure(a))),
		Rhs:  term.Closure(a),
	}
}

// StarInductLeft turns a proof of a·x + x ~ x into a proof of a*·x + x ~ x.
func StarInductLeft(a, x term.Expr, premise *Proof) *Proof {
	return &Proof{
		Rule: RuleStarInductLeft,
		Lhs:  term.Plus(term.Dot(term.Closure(a), x), x),
		Rhs:  x,
		Subs: []*Proof{premise},
	}
}

// StarInductRight turns a proof of x·a + x ~ x into a proof of x·a* + x ~ x.
func StarInductRight(a, x term.Expr, premise *Proof) *Proof {
	return &Proof{
		Rule: RuleStarInductRight,
		Lhs:  term.Plus(term.Dot(x, term.Closure(a)), x),
		Rhs:  x,
		Subs: []*Proof{premise},
	}
}

// CongSeq combines proofs of a ~ a' and b ~ b' into a·b ~ a'·b'.
func CongSeq(p, q *Proof) *Proof {
	return &Proof{
		Rule: RuleCongSeq,
		Lhs:  term.Dot(p.Lhs, q.Lhs),
		Rhs:  term.Dot(p.Rhs, q.Rhs),
		Subs: []*Proof{p, q},
	}
}

// CongAlt combines proofs of a ~ a' and b ~ b' into a+b ~ a'+b'.
func CongAlt(p, q *Proof) *Proof {
	return &Proof{
		Rule: RuleCongAlt,
		Lhs:  term.Plus(p.Lhs, q.Lhs),
		Rhs:  term.Plus(p.Rhs, q.Rhs),
		Subs: []*Proof{p, q},
	}
}

// CongStar lifts a proof of a ~ a' to a* ~ a'*.
func CongStar(p *Proof) *Proof {
	return &Proof{
		Rule: RuleCongStar,
		Lhs:  term.Closure(p.Lhs),
		Rhs:  term.Closure(p.Rhs),
		Subs: []*Proof{p},
	}
}

// String renders the proved equivalence.
func (p *Proof) String() string {
	return p.Lhs.String() + " ~ " + p.Rhs.String() + " [" + p.Rule.String() + "]"
}

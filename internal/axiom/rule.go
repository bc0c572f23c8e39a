package axiom

// Rule identifies one axiom (or closure rule) of the calculus.
// Each proof node is an instance of exactly one rule.
type Rule int

const (
	_ Rule = iota
	// RuleRefl: e ~ e.
	RuleRefl
	// RuleSym: from e ~ f conclude f ~ e.
	RuleSym
	// RuleTrans: from e ~ f and f ~ g conclude e ~ g.
	RuleTrans

	// RuleSeqAssoc: (a·b)·c ~ a·(b·c).
	RuleSeqAssoc
	// RuleSeqUnitLeft: 1·a ~ a.
	RuleSeqUnitLeft
	// RuleSeqUnitRight: a·1 ~ a.
	RuleSeqUnitRight
	// RuleSeqZeroLeft: 0·a ~ 0.
	RuleSeqZeroLeft
	// RuleSeqZeroRight: a·0 ~ 0.
	RuleSeqZeroRight
	// RuleDistribLeft: a·(b+c) ~ a·b + a·c.
	RuleDistribLeft
	// RuleDistribRight: (a+b)·c ~ a·c + b·c.
	RuleDistribRight

	// RuleAltAssoc: (a+b)+c ~ a+(b+c).
	RuleAltAssoc
	// RuleAltComm: a+b ~ b+a.
	RuleAltComm
	// RuleAltIdem: a+a ~ a.
	RuleAltIdem
	// RuleAltZero: 0+a ~ a.
	RuleAltZero

	// RuleStarUnfoldLeft: 1 + a*·a ~ a*.
	RuleStarUnfoldLeft
	// RuleStarUnfoldRight: 1 + a·a* ~ a*.
	RuleStarUnfoldRight
	// RuleStarInductLeft: from a·x + x ~ x conclude a*·x + x ~ x.
	RuleStarInductLeft
	// RuleStarInductRight: from x·a + x ~ x conclude x·a* + x ~ x.
	RuleStarInductRight

	// RuleCongSeq: from a ~ a' and b ~ b' conclude a·b ~ a'·b'.
	RuleCongSeq
	// RuleCongAlt: from a ~ a' and b ~ b' conclude a+b ~ a'+b'.
	RuleCongAlt
	// RuleCongStar: from a ~ a' conclude a* ~ a'*.
	RuleCongStar
)

func (r Rule) String() string {
	switch r {
	case RuleRefl:
		return "refl"
	case RuleSym:
		return "sym"
	case RuleTrans:
		return "trans"
	case RuleSeqAssoc:
		return "seq-assoc"
	case RuleSeqUnitLeft:
		return "seq-unit-left"
	case RuleSeqUnitRight:
		return "seq-unit-right"
	case RuleSeqZeroLeft:
		return "seq-zero-left"
	case RuleSeqZeroRight:
		return "seq-zero-right"
	case RuleDistribLeft:
		return "distrib-left"
	case RuleDistribRight:
		return "distrib-right"
	case RuleAltAssoc:
		return "alt-assoc"
	case RuleAltComm:
		return "alt-comm"
	case RuleAltIdem:
		return "alt-idem"
	case RuleAltZero:
		return "alt-zero"
	case RuleStarUnfoldLeft:
		return "star-unfold-left"
	case RuleStarUnfoldRight:
		return "star-unfold-right"
	case RuleStarInductLeft:
		return "star-induct-left"
	case RuleStarInductRight:
		return "star-induct-right"
	case RuleCongSeq:
		return "cong-seq"
	case RuleCongAlt:
		return "cong-alt"
	case RuleCongStar:
		return "cong-star"
	default:
		return "?"
	}
}

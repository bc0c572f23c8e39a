package bridge

import (
	"github.com/gnoverse/kleene/internal/axiom"
	"github.com/gnoverse/kleene/internal/eval"
	"github.com/gnoverse/kleene/internal/rewrite"
	"github.com/gnoverse/kleene/internal/term"
)

// Transport checks equivalence transport: given a proof of e ~ f, both
// terms are evaluated at the same endpoint types and the resulting
// values compared in the model. An Equivalent result is the system's
// central guarantee made concrete; NotEquivalent with a checked proof
// means the evaluator or the rewriter is defective.
func Transport(m eval.Model, env *eval.Env, e, f term.Expr, proof *axiom.Proof, src, dst eval.ObjectType) Report {
	if proof == nil || !term.Equal(proof.Lhs, e) || !term.Equal(proof.Rhs, f) {
		return Report{
			Result: Invalid,
			Reason: ReasonProofMismatch,
			Detail: "want a proof of " + e.String() + " ~ " + f.String(),
		}
	}
	if err := axiom.Check(proof); err != nil {
		return Report{Result: Invalid, Reason: ReasonProofInvalid, Detail: err.Error()}
	}

	left, err := eval.Evaluate(m, env, e, src, dst)
	if err != nil {
		return Report{Result: Invalid, Reason: ReasonEvalFailed, Detail: e.String() + ": " + err.Error()}
	}
	right, err := eval.Evaluate(m, env, f, src, dst)
	if err != nil {
		return Report{Result: Invalid, Reason: ReasonEvalFailed, Detail: f.String() + ": " + err.Error()}
	}

	if !m.Equal(left.Value, right.Value) {
		return Report{
			Result: NotEquivalent,
			Reason: ReasonValuesDiffer,
			Detail: left.Value.String() + " vs " + right.Value.String(),
		}
	}
	return Report{Result: Equivalent, Reason: ReasonSameValue}
}

// CheckClean is transport specialized to the rewriter: it verifies that
// e and Clean(e) evaluate to the same value, using the materialized
// soundness proof as the premise.
func CheckClean(m eval.Model, env *eval.Env, e term.Expr, src, dst eval.ObjectType) Report {
	cleaned := rewrite.Clean(e)
	return Transport(m, env, e, cleaned, rewrite.CleanProof(e), src, dst)
}

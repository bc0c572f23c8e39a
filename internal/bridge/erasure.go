package bridge

import (
	"github.com/gnoverse/kleene/internal/eval"
	"github.com/gnoverse/kleene/internal/term"
)

// Reified is richer caller-level syntax supplied by an external
// reification layer. It can denote directly into a model, and it erases
// to a term whose generators the environment interprets.
type Reified interface {
	// Erase returns the term-language image of the syntax.
	Erase() term.Expr
	// Denote evaluates the syntax directly in the model, bypassing the
	// term language.
	Denote(m eval.Model, env *eval.Env) (eval.Value, error)
}

// CheckErasure verifies erasure consistency: evaluating the erased term
// must equal denoting the reified syntax directly. This is the contract
// the external reification layer relies on.
func CheckErasure(m eval.Model, env *eval.Env, r Reified, src, dst eval.ObjectType) Report {
	direct, err := r.Denote(m, env)
	if err != nil {
		return Report{Result: Invalid, Reason: ReasonEvalFailed, Detail: "denote: " + err.Error()}
	}

	erased := r.Erase()
	d, err := eval.Evaluate(m, env, erased, src, dst)
	if err != nil {
		return Report{Result: Invalid, Reason: ReasonEvalFailed, Detail: erased.String() + ": " + err.Error()}
	}

	if !m.Equal(direct, d.Value) {
		return Report{
			Result: NotEquivalent,
			Reason: ReasonValuesDiffer,
			Detail: direct.String() + " vs " + d.Value.String(),
		}
	}
	return Report{Result: Equivalent, Reason: ReasonSameValue}
}

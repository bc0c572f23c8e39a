// Package kleene is a symbolic term-rewriting engine for typed
// Kleene-algebra expressions: a free term language over opaque
// generators, a zero/one normalizer, a typed evaluator generic over the
// target structure, and a soundness bridge connecting the two.
//
// The package is a pure library. Terms and environments are immutable
// after construction, every operation is deterministic, and independent
// evaluations may run concurrently without coordination.
package kleene

import (
	"github.com/gnoverse/kleene/internal/axiom"
	"github.com/gnoverse/kleene/internal/bridge"
	"github.com/gnoverse/kleene/internal/eval"
	"github.com/gnoverse/kleene/internal/rewrite"
	"github.com/gnoverse/kleene/internal/term"
)

// Core types, re-exported for callers of the facade.
type (
	// Expr is a Kleene-algebra term.
	Expr = term.Expr
	// Proof is a derivation of an axiomatic equivalence.
	Proof = axiom.Proof
	// ObjectType names an object of the target structure.
	ObjectType = eval.ObjectType
	// Value is an element of the target structure.
	Value = eval.Value
	// Model is the structure interface terms evaluate into.
	Model = eval.Model
	// Env binds generator indices to typed values.
	Env = eval.Env
	// Derivation is an evaluation trace.
	Derivation = eval.Derivation
	// TypeError reports an inconsistent typing.
	TypeError = eval.TypeError
	// MalformedEnvironmentError reports an unbound generator index.
	MalformedEnvironmentError = eval.MalformedEnvironmentError
	// Report is the outcome of a transport or erasure check.
	Report = bridge.Report
	// Reified is externally-supplied richer syntax (see CheckErasure).
	Reified = bridge.Reified
)

// Term constructors.

// One is the multiplicative identity term.
func One() Expr { return term.One() }

// Zero is the additive identity term.
func Zero() Expr { return term.Zero() }

// Dot composes two terms sequentially.
func Dot(x, y Expr) Expr { return term.Dot(x, y) }

// Plus sums two terms.
func Plus(x, y Expr) Expr { return term.Plus(x, y) }

// Closure is the Kleene star of a term.
func Closure(x Expr) Expr { return term.Closure(x) }

// Gen references a generator by index.
func Gen(index int) Expr { return term.Gen(index) }

// NewEnv creates an empty typing environment.
func NewEnv() *Env { return eval.NewEnv() }

// Clean removes redundant annihilator sub-terms (and rewrites the
// closure of zero to one). The result is axiomatically equivalent to
// the input; Clean is idempotent.
func Clean(e Expr) Expr { return rewrite.Clean(e) }

// Simplify is Clean plus identity folding (unit elimination, sum
// idempotence, closure collapsing).
func Simplify(e Expr) Expr { return rewrite.Simplify(e) }

// IsZero reports whether e reduces to the zero term under Clean.
// Sound but incomplete: see the rewrite package.
func IsZero(e Expr) bool { return rewrite.IsZero(e) }

// CleanProof returns a checkable proof that e ~ Clean(e).
func CleanProof(e Expr) *Proof { return rewrite.CleanProof(e) }

// CheckProof validates a proof tree against the axiom schemas.
func CheckProof(p *Proof) error { return axiom.Check(p) }

// Equivalent decides axiomatic equivalence on the canonical-form
// fragment (associativity, commutativity, idempotence, identities,
// annihilation, and basic star collapses). Sound, incomplete.
func Equivalent(e, f Expr) bool { return axiom.Equivalent(e, f) }

// Evaluate computes the value of e as a morphism src -> dst under env.
func Evaluate(m Model, env *Env, e Expr, src, dst ObjectType) (Value, error) {
	d, err := eval.Evaluate(m, env, e, src, dst)
	if err != nil {
		return nil, err
	}
	return d.Value, nil
}

// EvaluateTrace is Evaluate returning the full derivation.
func EvaluateTrace(m Model, env *Env, e Expr, src, dst ObjectType) (*Derivation, error) {
	return eval.Evaluate(m, env, e, src, dst)
}

// Transport checks equivalence transport: a proof of e ~ f plus two
// evaluations at shared endpoints must yield equal values.
func Transport(m Model, env *Env, e, f Expr, proof *Proof, src, dst ObjectType) Report {
	return bridge.Transport(m, env, e, f, proof, src, dst)
}

// CheckClean verifies that e and Clean(e) evaluate to the same value.
func CheckClean(m Model, env *Env, e Expr, src, dst ObjectType) Report {
	return bridge.CheckClean(m, env, e, src, dst)
}

// CheckErasure verifies that reified syntax denotes the same value as
// its erased term.
func CheckErasure(m Model, env *Env, r Reified, src, dst ObjectType) Report {
	return bridge.CheckErasure(m, env, r, src, dst)
}

package bridge_test

import (
	"errors"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gnoverse/kleene/internal/axiom"
	"github.com/gnoverse/kleene/internal/bridge"
	"github.com/gnoverse/kleene/internal/corpus"
	"github.com/gnoverse/kleene/internal/eval"
	"github.com/gnoverse/kleene/internal/model"
	"github.com/gnoverse/kleene/internal/term"
)

// langEnv binds three single-object generators over a language model.
func langEnv() (*model.LangModel, *eval.Env) {
	m := model.NewLang(6)
	env := eval.NewEnv().
		Bind(1, "S", "S", m.Symbol("a")).
		Bind(2, "S", "S", m.Symbol("b")).
		Bind(3, "S", "S", m.Symbol("c"))
	return m, env
}

func TestTransport(t *testing.T) {
	m, env := langEnv()
	a, b := term.Gen(1), term.Gen(2)
	e, f := term.Plus(a, b), term.Plus(b, a)

	t.Run("valid proof transports", func(t *testing.T) {
		report := bridge.Transport(m, env, e, f, axiom.AltComm(a, b), "S", "S")
		assert.Equal(t, bridge.Equivalent, report.Result)
		assert.Equal(t, bridge.ReasonSameValue, report.Reason)
	})

	t.Run("nil proof", func(t *testing.T) {
		report := bridge.Transport(m, env, e, f, nil, "S", "S")
		assert.Equal(t, bridge.Invalid, report.Result)
		assert.Equal(t, bridge.ReasonProofMismatch, report.Reason)
	})

	t.Run("proof of different terms", func(t *testing.T) {
		report := bridge.Transport(m, env, e, f, axiom.AltComm(a, a), "S", "S")
		assert.Equal(t, bridge.Invalid, report.Result)
		assert.Equal(t, bridge.ReasonProofMismatch, report.Reason)
	})

	t.Run("proof that does not check", func(t *testing.T) {
		lying := &axiom.Proof{Rule: axiom.RuleRefl, Lhs: e, Rhs: f}
		report := bridge.Transport(m, env, e, f, lying, "S", "S")
		assert.Equal(t, bridge.Invalid, report.Result)
		assert.Equal(t, bridge.ReasonProofInvalid, report.Reason)
	})

	t.Run("evaluation failure", func(t *testing.T) {
		g := term.Gen(9)
		report := bridge.Transport(m, env, g, g, axiom.Refl(g), "S", "S")
		assert.Equal(t, bridge.Invalid, report.Result)
		assert.Equal(t, bridge.ReasonEvalFailed, report.Reason)
		assert.Contains(t, report.Detail, "x9")
	})
}

func TestCheckCleanOverLanguages(t *testing.T) {
	m, env := langEnv()
	r := rand.New(rand.NewSource(3))

	for i := 0; i < 300; i++ {
		e := randExpr(r, 5)
		report := bridge.CheckClean(m, env, e, "S", "S")
		require.Equal(t, bridge.Equivalent, report.Result,
			"clean transport failed for %s: %s (%s)", e, report.Reason, report.Detail)
	}
}

func TestCheckCleanOverRelations(t *testing.T) {
	m := model.NewRel().Object("V", 3)
	env := eval.NewEnv().
		Bind(1, "V", "V", m.Relation("V", "V", [2]int{0, 1})).
		Bind(2, "V", "V", m.Relation("V", "V", [2]int{1, 2})).
		Bind(3, "V", "V", m.Relation("V", "V", [2]int{2, 0}))
	r := rand.New(rand.NewSource(5))

	for i := 0; i < 300; i++ {
		e := randExpr(r, 5)
		report := bridge.CheckClean(m, env, e, "V", "V")
		require.Equal(t, bridge.Equivalent, report.Result,
			"clean transport failed for %s: %s (%s)", e, report.Reason, report.Detail)
	}
}

// scripted is a reified syntax stub whose denotation is supplied
// directly, so erasure consistency can be made to fail on purpose.
type scripted struct {
	erased term.Expr
	value  eval.Value
	err    error
}

func (s scripted) Erase() term.Expr {
	return s.erased
}

func (s scripted) Denote(eval.Model, *eval.Env) (eval.Value, error) {
	return s.value, s.err
}

func TestCheckErasure(t *testing.T) {
	m, env := langEnv()

	t.Run("consistent syntax", func(t *testing.T) {
		s := scripted{
			erased: term.Plus(term.Gen(1), term.Gen(2)),
			value:  m.Words("a", "b"),
		}
		report := bridge.CheckErasure(m, env, s, "S", "S")
		assert.Equal(t, bridge.Equivalent, report.Result)
	})

	t.Run("denotation drifts from the erasure", func(t *testing.T) {
		s := scripted{
			erased: term.Gen(1),
			value:  m.Words("b"),
		}
		report := bridge.CheckErasure(m, env, s, "S", "S")
		assert.Equal(t, bridge.NotEquivalent, report.Result)
		assert.Equal(t, bridge.ReasonValuesDiffer, report.Reason)
	})

	t.Run("denotation fails", func(t *testing.T) {
		s := scripted{erased: term.Gen(1), err: errors.New("no denotation")}
		report := bridge.CheckErasure(m, env, s, "S", "S")
		assert.Equal(t, bridge.Invalid, report.Result)
		assert.Equal(t, bridge.ReasonEvalFailed, report.Reason)
	})

	t.Run("erased term fails to evaluate", func(t *testing.T) {
		s := scripted{erased: term.Gen(9), value: m.Words("a")}
		report := bridge.CheckErasure(m, env, s, "S", "S")
		assert.Equal(t, bridge.Invalid, report.Result)
		assert.Equal(t, bridge.ReasonEvalFailed, report.Reason)
	})
}

func TestRunner(t *testing.T) {
	f, err := corpus.Load(filepath.Join("testdata", "runner.yaml"))
	require.NoError(t, err)

	runner := bridge.NewRunner(zap.NewNop())
	summary := runner.Run(f)

	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 3, summary.Passed)
	assert.Equal(t, 1, summary.Failed)
	assert.False(t, summary.Ok())

	require.Len(t, summary.Failures, 1)
	assert.Equal(t, "wrong-clean-expectation", summary.Failures[0].Case)
	assert.Contains(t, summary.Failures[0].Detail, "clean")

	assert.Equal(t, "checked 4 cases: 3 passed, 1 failed", summary.String())
}

func TestRunnerWithoutLogger(t *testing.T) {
	f := corpus.File{Name: "inline"}
	runner := &bridge.Runner{Model: model.NewLang(4)}
	summary := runner.Run(f)
	assert.True(t, summary.Ok())
	assert.Equal(t, 0, summary.Total)
}

func TestReportStrings(t *testing.T) {
	assert.Equal(t, "Equivalent", bridge.Equivalent.String())
	assert.Equal(t, "NotEquivalent", bridge.NotEquivalent.String())
	assert.Equal(t, "Invalid", bridge.Invalid.String())
	assert.Equal(t, "evaluations agree", bridge.ReasonSameValue.String())
	assert.Equal(t, "proof failed to check", bridge.ReasonProofInvalid.String())
}

func randExpr(r *rand.Rand, depth int) term.Expr {
	if depth == 0 || r.Intn(4) == 0 {
		switch r.Intn(4) {
		case 0:
			return term.One()
		case 1:
			return term.Zero()
		default:
			return term.Gen(1 + r.Intn(3))
		}
	}
	switch r.Intn(3) {
	case 0:
		return term.Dot(randExpr(r, depth-1), randExpr(r, depth-1))
	case 1:
		return term.Plus(randExpr(r, depth-1), randExpr(r, depth-1))
	default:
		return term.Closure(randExpr(r, depth-1))
	}
}

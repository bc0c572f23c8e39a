package eval_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnoverse/kleene/internal/eval"
	"github.com/gnoverse/kleene/internal/model"
	"github.com/gnoverse/kleene/internal/term"
)

// relEnv builds a three-object relation model with two composable
// generators x1 : A -> B and x2 : B -> C, plus x3 : A -> A.
func relEnv() (*model.RelModel, *eval.Env) {
	m := model.NewRel().
		Object("A", 2).
		Object("B", 3).
		Object("C", 2)
	env := eval.NewEnv().
		Bind(1, "A", "B", m.Relation("A", "B", [2]int{0, 0}, [2]int{1, 2})).
		Bind(2, "B", "C", m.Relation("B", "C", [2]int{0, 1}, [2]int{2, 0})).
		Bind(3, "A", "A", m.Relation("A", "A", [2]int{0, 1}))
	return m, env
}

func TestEvaluateLanguages(t *testing.T) {
	m := model.NewLang(8)
	env := eval.NewEnv().
		Bind(1, "S", "S", m.Symbol("a")).
		Bind(2, "S", "S", m.Symbol("b")).
		Bind(3, "S", "S", m.Symbol("c"))

	cases := []struct {
		name string
		expr term.Expr
		want eval.Value
	}{
		{"atom", term.Gen(1), m.Symbol("a")},
		{"unit", term.One(), m.Words("")},
		{"empty", term.Zero(), m.Words()},
		{"composition", term.Dot(term.Gen(1), term.Gen(2)), m.Words("ab")},
		{"sum", term.Plus(term.Gen(1), term.Gen(3)), m.Words("a", "c")},
		{
			"sum of compositions",
			term.Plus(term.Dot(term.Gen(1), term.Gen(2)), term.Gen(3)),
			m.Words("ab", "c"),
		},
		{
			"closure",
			term.Closure(term.Gen(1)),
			m.Words("", "a", "aa", "aaa", "aaaa", "aaaaa", "aaaaaa", "aaaaaaa", "aaaaaaaa"),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := eval.Evaluate(m, env, tc.expr, "S", "S")
			require.NoError(t, err)
			assert.True(t, m.Equal(d.Value, tc.want), "got %s, want %s", d.Value, tc.want)
		})
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	m, env := relEnv()
	e := term.Plus(term.Dot(term.Gen(1), term.Gen(2)), term.Dot(term.Gen(1), term.Gen(2)))

	first, err := eval.Evaluate(m, env, e, "A", "C")
	require.NoError(t, err)
	second, err := eval.Evaluate(m, env, e, "A", "C")
	require.NoError(t, err)

	assert.True(t, m.Equal(first.Value, second.Value))
	assert.Equal(t, first.String(), second.String())
}

func TestEvaluateCompositionTyping(t *testing.T) {
	m, env := relEnv()

	t.Run("intermediate type in the trace", func(t *testing.T) {
		d, err := eval.Evaluate(m, env, term.Dot(term.Gen(1), term.Gen(2)), "A", "C")
		require.NoError(t, err)
		require.Len(t, d.Subs, 2)
		assert.Equal(t, eval.ObjectType("B"), d.Subs[0].Target)
		assert.Equal(t, eval.ObjectType("B"), d.Subs[1].Source)
	})

	t.Run("broken chain", func(t *testing.T) {
		// x2 : B -> C cannot follow x3 : A -> A.
		_, err := eval.Evaluate(m, env, term.Dot(term.Gen(3), term.Gen(2)), "A", "C")
		var te *eval.TypeError
		require.ErrorAs(t, err, &te)
	})

	t.Run("wrong root endpoints", func(t *testing.T) {
		_, err := eval.Evaluate(m, env, term.Gen(1), "B", "A")
		var te *eval.TypeError
		require.ErrorAs(t, err, &te)
	})
}

func TestEvaluateBranchesShareEndpoints(t *testing.T) {
	m, env := relEnv()

	// x1 : A -> B and x3 : A -> A cannot live under one sum.
	_, err := eval.Evaluate(m, env, term.Plus(term.Gen(1), term.Gen(3)), "A", "B")
	var te *eval.TypeError
	require.ErrorAs(t, err, &te)
}

func TestEvaluateClosureNeedsEndomorphism(t *testing.T) {
	m, env := relEnv()

	t.Run("rejected on a non-endo generator", func(t *testing.T) {
		_, err := eval.Evaluate(m, env, term.Closure(term.Gen(1)), "A", "A")
		var te *eval.TypeError
		require.ErrorAs(t, err, &te)
		assert.Contains(t, te.Error(), "type mismatch")
	})

	t.Run("accepted on an endo generator", func(t *testing.T) {
		d, err := eval.Evaluate(m, env, term.Closure(term.Gen(3)), "A", "A")
		require.NoError(t, err)
		// Reflexive closure of {(0,1)} on a two-element set.
		want, werr := m.Star(m.Relation("A", "A", [2]int{0, 1}))
		require.NoError(t, werr)
		assert.True(t, m.Equal(d.Value, want))
	})
}

func TestEvaluateUnboundGenerator(t *testing.T) {
	m, env := relEnv()

	_, err := eval.Evaluate(m, env, term.Dot(term.Gen(1), term.Gen(9)), "A", "C")
	var me *eval.MalformedEnvironmentError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, 9, me.Index)
}

func TestEvaluateZeroSubtermsArePolymorphic(t *testing.T) {
	m, env := relEnv()

	// The empty sub-term constrains nothing, so the composite still
	// types at A -> C and evaluates to the empty relation.
	d, err := eval.Evaluate(m, env, term.Dot(term.Zero(), term.Gen(2)), "A", "C")
	require.NoError(t, err)
	assert.True(t, m.Equal(d.Value, m.Zero("A", "C")))

	// A fully free zero term takes whatever endpoints are requested.
	d, err = eval.Evaluate(m, env, term.Zero(), "B", "A")
	require.NoError(t, err)
	assert.Equal(t, eval.ObjectType("B"), d.Source)
	assert.Equal(t, eval.ObjectType("A"), d.Target)
	assert.True(t, m.Equal(d.Value, m.Zero("B", "A")))
}

func TestInfer(t *testing.T) {
	_, env := relEnv()

	cases := []struct {
		name string
		expr term.Expr
		want eval.Typing
	}{
		{
			"atom forces both endpoints",
			term.Gen(1),
			eval.Typing{Source: "A", Target: "B", SourceForced: true, TargetForced: true},
		},
		{
			"empty forces nothing",
			term.Zero(),
			eval.Typing{},
		},
		{
			"unit forces nothing",
			term.One(),
			eval.Typing{},
		},
		{
			"empty prefix leaves the source open",
			term.Dot(term.Zero(), term.Gen(2)),
			eval.Typing{Target: "C", TargetForced: true},
		},
		{
			"composition chains",
			term.Dot(term.Gen(1), term.Gen(2)),
			eval.Typing{Source: "A", Target: "C", SourceForced: true, TargetForced: true},
		},
		{
			"closure ties a forced endpoint to both sides",
			term.Closure(term.Gen(3)),
			eval.Typing{Source: "A", Target: "A", SourceForced: true, TargetForced: true},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := eval.Infer(env, tc.expr)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("inconsistent term has no typing", func(t *testing.T) {
		_, err := eval.Infer(env, term.Closure(term.Gen(1)))
		var te *eval.TypeError
		require.ErrorAs(t, err, &te)
	})
}

func TestDerivationString(t *testing.T) {
	m, env := relEnv()

	d, err := eval.Evaluate(m, env, term.Dot(term.Gen(1), term.Gen(2)), "A", "C")
	require.NoError(t, err)

	out := d.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "(x1·x2) : A -> C")
	assert.Contains(t, lines[1], "x1 : A -> B")
	assert.Contains(t, lines[2], "x2 : B -> C")
}

func TestEnv(t *testing.T) {
	m := model.NewLang(4)
	env := eval.NewEnv().
		Bind(3, "S", "S", m.Symbol("c")).
		Bind(1, "S", "S", m.Symbol("a"))

	assert.Equal(t, 2, env.Len())
	assert.Equal(t, []int{1, 3}, env.Indices())

	g, ok := env.Generator(3)
	require.True(t, ok)
	assert.Equal(t, eval.ObjectType("S"), g.Source)

	_, ok = env.Generator(2)
	assert.False(t, ok)
}

func TestErrorMessages(t *testing.T) {
	te := &eval.TypeError{Expr: term.Gen(1), Where: "target", Want: "A", Got: "B"}
	assert.Contains(t, te.Error(), "x1")
	assert.Contains(t, te.Error(), "target")

	me := &eval.MalformedEnvironmentError{Index: 4}
	assert.Contains(t, me.Error(), "x4")
	assert.False(t, errors.As(error(me), new(*eval.TypeError)))
}

package bridge

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/gnoverse/kleene/internal/axiom"
	"github.com/gnoverse/kleene/internal/corpus"
	"github.com/gnoverse/kleene/internal/eval"
	"github.com/gnoverse/kleene/internal/model"
	"github.com/gnoverse/kleene/internal/rewrite"
	"github.com/gnoverse/kleene/internal/term"
)

// Runner checks every case of a corpus against the engine, evaluating
// over a language model. A nil logger disables logging.
type Runner struct {
	Model  *model.LangModel
	Logger *zap.Logger
}

// NewRunner creates a runner with a default language model (cap 8).
func NewRunner(logger *zap.Logger) *Runner {
	return &Runner{Model: model.NewLang(8), Logger: logger}
}

// CaseFailure records one failed check of a corpus case.
type CaseFailure struct {
	Case   string
	Detail string
}

// Summary aggregates a corpus run.
type Summary struct {
	Total    int
	Passed   int
	Failed   int
	Failures []CaseFailure
}

// Ok reports whether every case passed.
func (s Summary) Ok() bool {
	return s.Failed == 0
}

func (s Summary) String() string {
	return fmt.Sprintf("checked %d cases: %d passed, %d failed", s.Total, s.Passed, s.Failed)
}

// Run checks every case and returns the aggregated summary.
func (r *Runner) Run(f corpus.File) Summary {
	summary := Summary{Total: len(f.Cases)}
	for _, c := range f.Cases {
		if detail := r.runCase(c); detail != "" {
			summary.Failed++
			summary.Failures = append(summary.Failures, CaseFailure{Case: c.Name, Detail: detail})
			if r.Logger != nil {
				r.Logger.Error("corpus case failed",
					zap.String("corpus", f.Name),
					zap.String("case", c.Name),
					zap.String("detail", detail),
				)
			}
			continue
		}
		summary.Passed++
		if r.Logger != nil {
			r.Logger.Debug("corpus case passed",
				zap.String("corpus", f.Name),
				zap.String("case", c.Name),
			)
		}
	}
	return summary
}

// runCase returns an empty string on success, a failure detail otherwise.
func (r *Runner) runCase(c corpus.Case) string {
	expr := c.Expr.Term()
	env := c.BuildEnv(r.Model)
	src, dst := c.Endpoints()

	if c.Want.TypeError {
		_, err := eval.Evaluate(r.Model, env, expr, src, dst)
		var typeErr *eval.TypeError
		if err == nil {
			return "expected a type error, evaluation succeeded"
		}
		if !errors.As(err, &typeErr) {
			return "expected a type error, got: " + err.Error()
		}
		return ""
	}

	if c.Want.Clean != nil {
		got := rewrite.Clean(expr)
		want := c.Want.Clean.Term()
		if !term.Equal(got, want) {
			return fmt.Sprintf("clean: got %s, want %s", got, want)
		}
	}

	if c.Want.Zero != nil {
		if got := rewrite.IsZero(expr); got != *c.Want.Zero {
			return fmt.Sprintf("zero: got %t, want %t", got, *c.Want.Zero)
		}
	}

	if c.Want.Equivalent != nil {
		if c.Other == nil {
			return "equivalent expectation without a second expression"
		}
		other := c.Other.Term()
		if got := axiom.Equivalent(expr, other); got != *c.Want.Equivalent {
			return fmt.Sprintf("equivalent(%s, %s): got %t, want %t", expr, other, got, *c.Want.Equivalent)
		}
	}

	// Every well-typed case doubles as a rewriter soundness check.
	if report := CheckClean(r.Model, env, expr, src, dst); report.Result != Equivalent {
		return fmt.Sprintf("clean transport: %s (%s)", report.Result, report.Detail)
	}
	return ""
}

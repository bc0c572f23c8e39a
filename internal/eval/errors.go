package eval

import (
	"fmt"

	"github.com/gnoverse/kleene/internal/term"
)

// TypeError reports that no consistent assignment of object types exists
// for a term under the given environment. It names the sub-expression
// where unification failed together with the conflicting types. Always
// recoverable: the caller gets no value but the evaluation state is
// untouched.
type TypeError struct {
	Expr  term.Expr  // offending sub-expression
	Where string     // which endpoint conflicted ("source", "target", ...)
	Want  ObjectType // type established before the conflict
	Got   ObjectType // type demanded by the offending constraint
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("type mismatch at %s: %s is %s, want %s", e.Expr, e.Where, e.Got, e.Want)
}

// MalformedEnvironmentError reports a generator index used in a term with
// no entry in the environment. This is a caller contract violation, not a
// recoverable type conflict.
type MalformedEnvironmentError struct {
	Index int
}

func (e *MalformedEnvironmentError) Error() string {
	return fmt.Sprintf("generator x%d is not bound in the environment", e.Index)
}

// Package bridge ties the rewriter, the axiom system, and the evaluator
// together into checkable guarantees: equivalence transport (axiomatically
// equal terms evaluate equally at shared endpoints) and erasure
// consistency (reified syntax denotes the same value as its erased term).
package bridge

// Result classifies the outcome of a transport check.
type Result int

const (
	_ Result = iota
	// Equivalent: the proof checked and both evaluations agree.
	Equivalent
	// NotEquivalent: the proof checked but the values differ. With a
	// valid proof this indicates an engine defect, not a user error.
	NotEquivalent
	// Invalid: the check could not run (bad proof, failed evaluation).
	Invalid
)

func (r Result) String() string {
	switch r {
	case Equivalent:
		return "Equivalent"
	case NotEquivalent:
		return "NotEquivalent"
	case Invalid:
		return "Invalid"
	default:
		return "?"
	}
}

// Reason explains a transport result.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonSameValue
	ReasonValuesDiffer
	ReasonProofMismatch
	ReasonProofInvalid
	ReasonEvalFailed
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonSameValue:
		return "evaluations agree"
	case ReasonValuesDiffer:
		return "evaluations disagree"
	case ReasonProofMismatch:
		return "proof does not relate the given terms"
	case ReasonProofInvalid:
		return "proof failed to check"
	case ReasonEvalFailed:
		return "evaluation failed"
	default:
		return "unknown"
	}
}

// Report is the detailed outcome of a transport or erasure check.
type Report struct {
	Result Result
	Reason Reason
	Detail string
}

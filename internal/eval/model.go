package eval

// Model is the capability set a target structure must expose for typed
// evaluation: composition, sum, closure, the two constants per object
// pair, and value equality. The evaluator guarantees that Dot, Plus and
// Star are only invoked on operands whose inferred object types line up;
// a model may still reject operands that are inconsistent with the
// environment's declared types (a relation model checking dimensions,
// for example).
type Model interface {
	// Zero returns the additive identity typed src -> dst.
	Zero(src, dst ObjectType) Value
	// One returns the multiplicative identity on obj.
	One(obj ObjectType) Value
	// Dot composes a : A -> M with b : M -> B into A -> B.
	Dot(a, b Value) (Value, error)
	// Plus sums two values of the same type pair.
	Plus(a, b Value) (Value, error)
	// Star closes an endomorphism a : A -> A.
	Star(a Value) (Value, error)
	// Equal compares two values of the same type pair.
	Equal(a, b Value) bool
}

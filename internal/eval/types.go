// Package eval implements typed evaluation of Kleene-algebra terms
// against an arbitrary model. A typing environment binds each generator
// index to a source object, a target object, and a value in the model;
// evaluation first infers a consistent typing for the whole term by
// unification against that table, then computes the value bottom-up,
// recording the derivation it took.
package eval

import "sort"

// ObjectType names an object in the target structure (the set a relation
// acts on, the single index object of a language model, ...). Opaque to
// the engine; only equality matters.
type ObjectType string

// Value is an element of the target structure. The engine never inspects
// values beyond rendering them; all operations go through the Model.
type Value interface {
	String() string
}

// Generator is an atomic morphism the environment exposes to terms:
// a value of the model typed Source -> Target.
type Generator struct {
	Source ObjectType
	Target ObjectType
	Value  Value
}

// Env maps generator indices to generators. Environments are built once
// and are read-only during evaluation; callers that need more generators
// construct a new environment instead of mutating a shared one.
type Env struct {
	gens map[int]Generator
}

// NewEnv creates an empty environment.
func NewEnv() *Env {
	return &Env{gens: make(map[int]Generator)}
}

// Bind associates a generator index with a typed value and returns the
// environment for chaining. Bind is a construction-time operation only.
func (e *Env) Bind(index int, src, dst ObjectType, v Value) *Env {
	e.gens[index] = Generator{Source: src, Target: dst, Value: v}
	return e
}

// Generator looks up the generator bound to index.
func (e *Env) Generator(index int) (Generator, bool) {
	g, ok := e.gens[index]
	return g, ok
}

// Indices returns the bound generator indices in ascending order.
func (e *Env) Indices() []int {
	indices := make([]int, 0, len(e.gens))
	for i := range e.gens {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return indices
}

// Len returns the number of bound generators.
func (e *Env) Len() int {
	return len(e.gens)
}

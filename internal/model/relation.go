package model

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gnoverse/kleene/internal/eval"
)

// Matrix is a boolean matrix: a relation between a Rows-element set and
// a Cols-element set.
type Matrix struct {
	Rows, Cols int
	cells      []bool
}

func newMatrix(rows, cols int) *Matrix {
	return &Matrix{Rows: rows, Cols: cols, cells: make([]bool, rows*cols)}
}

// At reports whether (i, j) is related.
func (mx *Matrix) At(i, j int) bool {
	return mx.cells[i*mx.Cols+j]
}

// Set relates (i, j).
func (mx *Matrix) Set(i, j int) {
	mx.cells[i*mx.Cols+j] = true
}

func (mx *Matrix) String() string {
	pairs := make([]string, 0)
	for i := 0; i < mx.Rows; i++ {
		for j := 0; j < mx.Cols; j++ {
			if mx.At(i, j) {
				pairs = append(pairs, fmt.Sprintf("(%d,%d)", i, j))
			}
		}
	}
	sort.Strings(pairs)
	return fmt.Sprintf("%dx%d{%s}", mx.Rows, mx.Cols, strings.Join(pairs, " "))
}

// RelModel evaluates terms as boolean matrices. Every object type is a
// finite set whose size is registered with Object; unregistered objects
// default to a single element.
type RelModel struct {
	dims map[eval.ObjectType]int
}

// NewRel creates a relation model with no registered objects.
func NewRel() *RelModel {
	return &RelModel{dims: make(map[eval.ObjectType]int)}
}

// Object registers the size of an object's underlying set and returns
// the model for chaining.
func (m *RelModel) Object(t eval.ObjectType, size int) *RelModel {
	m.dims[t] = size
	return m
}

func (m *RelModel) dim(t eval.ObjectType) int {
	if d, ok := m.dims[t]; ok {
		return d
	}
	return 1
}

// Relation builds a generator value: the relation between src and dst
// containing exactly the given pairs.
func (m *RelModel) Relation(src, dst eval.ObjectType, pairs ...[2]int) eval.Value {
	mx := newMatrix(m.dim(src), m.dim(dst))
	for _, p := range pairs {
		mx.Set(p[0], p[1])
	}
	return mx
}

// Zero returns the empty relation between src and dst.
func (m *RelModel) Zero(src, dst eval.ObjectType) eval.Value {
	return newMatrix(m.dim(src), m.dim(dst))
}

// One returns the identity relation on obj.
func (m *RelModel) One(obj eval.ObjectType) eval.Value {
	n := m.dim(obj)
	mx := newMatrix(n, n)
	for i := 0; i < n; i++ {
		mx.Set(i, i)
	}
	return mx
}

// Dot is boolean matrix multiplication. The inner dimensions must agree;
// a mismatch means the environment's values are inconsistent with its
// declared object types.
func (m *RelModel) Dot(a, b eval.Value) (eval.Value, error) {
	ma, mb, err := m.pair(a, b)
	if err != nil {
		return nil, err
	}
	if ma.Cols != mb.Rows {
		return nil, fmt.Errorf("dimension mismatch: %d columns against %d rows", ma.Cols, mb.Rows)
	}
	out := newMatrix(ma.Rows, mb.Cols)
	for i := 0; i < ma.Rows; i++ {
		for k := 0; k < ma.Cols; k++ {
			if !ma.At(i, k) {
				continue
			}
			for j := 0; j < mb.Cols; j++ {
				if mb.At(k, j) {
					out.Set(i, j)
				}
			}
		}
	}
	return out, nil
}

// Plus is pointwise union.
func (m *RelModel) Plus(a, b eval.Value) (eval.Value, error) {
	ma, mb, err := m.pair(a, b)
	if err != nil {
		return nil, err
	}
	if ma.Rows != mb.Rows || ma.Cols != mb.Cols {
		return nil, fmt.Errorf("shape mismatch: %dx%d against %dx%d", ma.Rows, ma.Cols, mb.Rows, mb.Cols)
	}
	out := newMatrix(ma.Rows, ma.Cols)
	for i := range out.cells {
		out.cells[i] = ma.cells[i] || mb.cells[i]
	}
	return out, nil
}

// Star is reflexive-transitive closure (Floyd-Warshall).
func (m *RelModel) Star(a eval.Value) (eval.Value, error) {
	ma, ok := a.(*Matrix)
	if !ok {
		return nil, fmt.Errorf("not a relation value: %T", a)
	}
	if ma.Rows != ma.Cols {
		return nil, fmt.Errorf("closure of a non-square relation: %dx%d", ma.Rows, ma.Cols)
	}
	n := ma.Rows
	out := newMatrix(n, n)
	copy(out.cells, ma.cells)
	for i := 0; i < n; i++ {
		out.Set(i, i)
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if !out.At(i, k) {
				continue
			}
			for j := 0; j < n; j++ {
				if out.At(k, j) {
					out.Set(i, j)
				}
			}
		}
	}
	return out, nil
}

// Equal compares shapes and cells.
func (m *RelModel) Equal(a, b eval.Value) bool {
	ma, mb, err := m.pair(a, b)
	if err != nil {
		return false
	}
	if ma.Rows != mb.Rows || ma.Cols != mb.Cols {
		return false
	}
	for i := range ma.cells {
		if ma.cells[i] != mb.cells[i] {
			return false
		}
	}
	return true
}

func (m *RelModel) pair(a, b eval.Value) (*Matrix, *Matrix, error) {
	ma, ok := a.(*Matrix)
	if !ok {
		return nil, nil, fmt.Errorf("not a relation value: %T", a)
	}
	mb, ok := b.(*Matrix)
	if !ok {
		return nil, nil, fmt.Errorf("not a relation value: %T", b)
	}
	return ma, mb, nil
}

package corpus

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/gnoverse/kleene/internal/term"
)

// Node is the YAML encoding of a term. Scalars "unit"/"1" and
// "empty"/"0" denote the constants; a mapping with a single key denotes
// a constructor:
//
//	{atom: 3}
//	{star: {atom: 1}}
//	{seq: [{atom: 1}, {atom: 2}]}
//	{alt: [empty, {atom: 1}]}
//
// seq and alt take a sequence of operands and nest them to the right.
type Node struct {
	expr term.Expr
}

// Term returns the decoded expression.
func (n *Node) Term() term.Expr {
	return n.expr
}

// UnmarshalYAML decodes the structural encoding.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		switch value.Value {
		case "unit", "1":
			n.expr = term.One()
		case "empty", "0":
			n.expr = term.Zero()
		default:
			return fmt.Errorf("line %d: unknown expression scalar %q", value.Line, value.Value)
		}
		return nil

	case yaml.MappingNode:
		if len(value.Content) != 2 {
			return fmt.Errorf("line %d: expression mapping must have exactly one key", value.Line)
		}
		key := value.Content[0].Value
		operand := value.Content[1]

		switch key {
		case "atom":
			var index int
			if err := operand.Decode(&index); err != nil {
				return fmt.Errorf("line %d: atom index: %w", operand.Line, err)
			}
			if index <= 0 {
				return fmt.Errorf("line %d: atom index must be positive, have %d", operand.Line, index)
			}
			n.expr = term.Gen(index)
			return nil

		case "star":
			var sub Node
			if err := operand.Decode(&sub); err != nil {
				return err
			}
			n.expr = term.Closure(sub.Term())
			return nil

		case "seq", "alt":
			var subs []Node
			if err := operand.Decode(&subs); err != nil {
				return err
			}
			exprs := make([]term.Expr, len(subs))
			for i, s := range subs {
				exprs[i] = s.Term()
			}
			if key == "seq" {
				n.expr = term.SeqOf(exprs...)
			} else {
				n.expr = term.AltOf(exprs...)
			}
			return nil

		default:
			return fmt.Errorf("line %d: unknown expression constructor %q", value.Line, key)
		}

	default:
		return fmt.Errorf("line %d: expression must be a scalar or a mapping", value.Line)
	}
}

// Package corpus loads YAML fixture files describing terms, typing
// environments, and expected engine outcomes. The encoding is purely
// structural (nested seq/alt/star/atom nodes); there is no concrete
// operator syntax to parse.
package corpus

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gnoverse/kleene/internal/eval"
	"github.com/gnoverse/kleene/internal/model"
)

// File is one corpus: a named list of cases.
type File struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

// Case describes one expression (optionally a pair) with its typing
// environment and the outcomes the engine is expected to produce.
type Case struct {
	Name       string          `yaml:"name"`
	Expr       *Node           `yaml:"expr"`
	Other      *Node           `yaml:"other"`
	Generators []GeneratorSpec `yaml:"generators"`
	Source     string          `yaml:"source"`
	Target     string          `yaml:"target"`
	Want       Expectation     `yaml:"want"`
}

// GeneratorSpec binds a generator index to object types and a language
// symbol.
type GeneratorSpec struct {
	Index  int    `yaml:"index"`
	Source string `yaml:"source"`
	Target string `yaml:"target"`
	Symbol string `yaml:"symbol"`
}

// Expectation lists the checks a case opts into. Absent fields are not
// checked.
type Expectation struct {
	Clean      *Node `yaml:"clean"`      // expected Clean(expr), compared structurally
	Zero       *bool `yaml:"zero"`       // expected IsZero(expr)
	Equivalent *bool `yaml:"equivalent"` // expected Equivalent(expr, other)
	TypeError  bool  `yaml:"type_error"` // evaluation must fail with a type error
}

// defaultObject is used when a case or generator leaves an object type
// blank (single-object corpora).
const defaultObject = "S"

// Endpoints returns the case's evaluation endpoints.
func (c Case) Endpoints() (eval.ObjectType, eval.ObjectType) {
	src, dst := c.Source, c.Target
	if src == "" {
		src = defaultObject
	}
	if dst == "" {
		dst = defaultObject
	}
	return eval.ObjectType(src), eval.ObjectType(dst)
}

// BuildEnv constructs the typing environment of the case over a language
// model, mapping each generator to the single-word language of its
// symbol.
func (c Case) BuildEnv(m *model.LangModel) *eval.Env {
	env := eval.NewEnv()
	for _, g := range c.Generators {
		src, dst := g.Source, g.Target
		if src == "" {
			src = defaultObject
		}
		if dst == "" {
			dst = defaultObject
		}
		env.Bind(g.Index, eval.ObjectType(src), eval.ObjectType(dst), m.Symbol(g.Symbol))
	}
	return env
}

// Load reads and decodes a corpus file.
func Load(path string) (File, error) {
	var f File
	data, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("read corpus: %w", err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("decode corpus %s: %w", path, err)
	}
	for i, c := range f.Cases {
		if c.Expr == nil {
			return f, fmt.Errorf("corpus %s: case %d (%s) has no expression", path, i, c.Name)
		}
	}
	return f, nil
}

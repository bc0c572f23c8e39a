package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/gnoverse/kleene/internal/model"
	"github.com/gnoverse/kleene/internal/term"
)

func TestLoadBasicCorpus(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "basic.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "basic", f.Name)
	require.Len(t, f.Cases, 6)

	byName := make(map[string]Case, len(f.Cases))
	for _, c := range f.Cases {
		byName[c.Name] = c
	}

	zp := byName["zero-prefix"]
	assert.True(t, term.Equal(zp.Expr.Term(), term.Dot(term.Zero(), term.Gen(1))))
	require.NotNil(t, zp.Want.Clean)
	assert.True(t, term.IsEmpty(zp.Want.Clean.Term()))
	require.NotNil(t, zp.Want.Zero)
	assert.True(t, *zp.Want.Zero)

	cs := byName["commuted-sum"]
	require.NotNil(t, cs.Other)
	assert.True(t, term.Equal(cs.Other.Term(), term.Plus(term.Gen(2), term.Gen(1))))
	require.NotNil(t, cs.Want.Equivalent)
	assert.True(t, *cs.Want.Equivalent)

	tm := byName["typed-mismatch"]
	assert.True(t, tm.Want.TypeError)
	src, dst := tm.Endpoints()
	assert.Equal(t, "A", string(src))
	assert.Equal(t, "A", string(dst))
}

func TestEndpointsDefault(t *testing.T) {
	src, dst := Case{}.Endpoints()
	assert.Equal(t, "S", string(src))
	assert.Equal(t, "S", string(dst))
}

func TestBuildEnv(t *testing.T) {
	c := Case{
		Generators: []GeneratorSpec{
			{Index: 1, Symbol: "a"},
			{Index: 2, Source: "A", Target: "B", Symbol: "b"},
		},
	}

	m := model.NewLang(4)
	env := c.BuildEnv(m)
	require.Equal(t, 2, env.Len())

	g, ok := env.Generator(1)
	require.True(t, ok)
	assert.Equal(t, "S", string(g.Source))
	assert.Equal(t, "S", string(g.Target))
	assert.True(t, m.Equal(g.Value, m.Symbol("a")))

	g, ok = env.Generator(2)
	require.True(t, ok)
	assert.Equal(t, "A", string(g.Source))
	assert.Equal(t, "B", string(g.Target))
}

func TestNodeDecoding(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want term.Expr
	}{
		{"unit word", "unit", term.One()},
		{"unit digit", "\"1\"", term.One()},
		{"empty word", "empty", term.Zero()},
		{"empty digit", "\"0\"", term.Zero()},
		{"atom", "{atom: 3}", term.Gen(3)},
		{"star", "{star: {atom: 1}}", term.Closure(term.Gen(1))},
		{"seq nests right", "{seq: [{atom: 1}, {atom: 2}, {atom: 3}]}", term.SeqOf(term.Gen(1), term.Gen(2), term.Gen(3))},
		{"alt nests right", "{alt: [empty, {atom: 1}]}", term.Plus(term.Zero(), term.Gen(1))},
		{"empty seq", "{seq: []}", term.One()},
		{"empty alt", "{alt: []}", term.Zero()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n := decode(t, tc.yaml)
			assert.True(t, term.Equal(n.Term(), tc.want), "decoded %s, want %s", n.Term(), tc.want)
		})
	}
}

func TestNodeDecodingErrors(t *testing.T) {
	cases := map[string]string{
		"unknown scalar":      "bogus",
		"unknown constructor": "{neg: {atom: 1}}",
		"two keys":            "{atom: 1, star: unit}",
		"zero atom index":     "{atom: 0}",
		"negative atom index": "{atom: -2}",
		"non-integer atom":    "{atom: hello}",
		"sequence node":       "[1, 2]",
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			var n Node
			err := yaml.Unmarshal([]byte(input), &n)
			assert.Error(t, err)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join("testdata", "no-such-file.yaml"))
		assert.Error(t, err)
	})

	t.Run("case without expression", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.yaml")
		data := "name: broken\ncases:\n  - name: empty-case\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no expression")
	})
}

func decode(t *testing.T, input string) *Node {
	t.Helper()
	var n Node
	require.NoError(t, yaml.Unmarshal([]byte(input), &n))
	return &n
}

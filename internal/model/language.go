// Package model provides concrete Kleene-algebra structures the engine
// can evaluate into: finite languages truncated at a word-length cap
// (plain regular-language semantics over a single object) and boolean
// relation matrices between finite sets (multi-object semantics).
// Both are exact models — languages up to length k form a Kleene
// algebra, as do relations — so every engine property holds in them
// without approximation.
package model

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gnoverse/kleene/internal/eval"
)

// Lang is a finite set of words, all no longer than the owning model's
// length cap.
type Lang struct {
	words map[string]struct{}
}

func (l *Lang) String() string {
	if len(l.words) == 0 {
		return "{}"
	}
	sorted := make([]string, 0, len(l.words))
	for w := range l.words {
		if w == "" {
			w = "ε"
		}
		sorted = append(sorted, w)
	}
	sort.Strings(sorted)
	return "{" + strings.Join(sorted, ", ") + "}"
}

// Contains reports whether the word is in the language.
func (l *Lang) Contains(word string) bool {
	_, ok := l.words[word]
	return ok
}

// Len returns the number of words.
func (l *Lang) Len() int {
	return len(l.words)
}

// LangModel evaluates terms as languages truncated at MaxLen. Object
// types play no role: the model has a single object, so Zero and One
// ignore their arguments.
type LangModel struct {
	MaxLen int
}

// NewLang creates a language model with the given word-length cap.
func NewLang(maxLen int) *LangModel {
	return &LangModel{MaxLen: maxLen}
}

// Symbol returns the single-word language {s}, or the empty language if
// s exceeds the cap.
func (m *LangModel) Symbol(s string) eval.Value {
	return m.Words(s)
}

// Words builds a language from the given words, dropping those over the
// cap.
func (m *LangModel) Words(words ...string) eval.Value {
	l := &Lang{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if len(w) <= m.MaxLen {
			l.words[w] = struct{}{}
		}
	}
	return l
}

// Zero returns the empty language.
func (m *LangModel) Zero(_, _ eval.ObjectType) eval.Value {
	return &Lang{words: make(map[string]struct{})}
}

// One returns the language containing only the empty word.
func (m *LangModel) One(_ eval.ObjectType) eval.Value {
	return m.Words("")
}

// Dot concatenates: every word of a followed by every word of b, words
// over the cap discarded.
func (m *LangModel) Dot(a, b eval.Value) (eval.Value, error) {
	la, lb, err := m.pair(a, b)
	if err != nil {
		return nil, err
	}
	out := &Lang{words: make(map[string]struct{})}
	for wa := range la.words {
		for wb := range lb.words {
			if len(wa)+len(wb) <= m.MaxLen {
				out.words[wa+wb] = struct{}{}
			}
		}
	}
	return out, nil
}

// Plus unions the two languages.
func (m *LangModel) Plus(a, b eval.Value) (eval.Value, error) {
	la, lb, err := m.pair(a, b)
	if err != nil {
		return nil, err
	}
	out := &Lang{words: make(map[string]struct{}, len(la.words)+len(lb.words))}
	for w := range la.words {
		out.words[w] = struct{}{}
	}
	for w := range lb.words {
		out.words[w] = struct{}{}
	}
	return out, nil
}

// Star iterates concatenation to a fixpoint. The length cap bounds the
// word set, so the iteration terminates.
func (m *LangModel) Star(a eval.Value) (eval.Value, error) {
	la, ok := a.(*Lang)
	if !ok {
		return nil, fmt.Errorf("not a language value: %T", a)
	}
	result := m.One("").(*Lang)
	for {
		stepped, err := m.Dot(result, la)
		if err != nil {
			return nil, err
		}
		next, err := m.Plus(result, stepped)
		if err != nil {
			return nil, err
		}
		if m.Equal(result, next) {
			return result, nil
		}
		result = next.(*Lang)
	}
}

// Equal is set equality.
func (m *LangModel) Equal(a, b eval.Value) bool {
	la, lb, err := m.pair(a, b)
	if err != nil {
		return false
	}
	if len(la.words) != len(lb.words) {
		return false
	}
	for w := range la.words {
		if _, ok := lb.words[w]; !ok {
			return false
		}
	}
	return true
}

func (m *LangModel) pair(a, b eval.Value) (*Lang, *Lang, error) {
	la, ok := a.(*Lang)
	if !ok {
		return nil, nil, fmt.Errorf("not a language value: %T", a)
	}
	lb, ok := b.(*Lang)
	if !ok {
		return nil, nil, fmt.Errorf("not a language value: %T", b)
	}
	return la, lb, nil
}

// Package words holds the fixed list of candidate words a round is drawn from.
package words

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmpty is returned when a list is built with no words at all.
	ErrEmpty = errors.New("word list is empty")
	// ErrInvalidWord is returned for entries that are not plain A-Z words.
	ErrInvalidWord = errors.New("invalid word")
)

// defaultWords is the compiled-in list used by both front ends.
var defaultWords = []string{
	"python", "hangman", "keyboard", "function", "variable", "iterator", "package", "library",
	"notebook", "algorithm", "computer", "program", "teacher", "student", "network", "database",
	"object", "inheritance", "composition", "encapsulation", "polymorphism", "abstraction",
	"exception", "module", "tuple", "string", "integer", "boolean", "recursion", "generator", "comprehension",
}

// List is an immutable, ordered, non-empty collection of upper-case words.
// The zero value is not usable; build one with New, MustNew or Default.
type List struct {
	words []string
}

// New validates and upper-cases the given words.
func New(words ...string) (List, error) {
	if len(words) == 0 {
		return List{}, ErrEmpty
	}
	out := make([]string, 0, len(words))
	for i, w := range words {
		up := strings.ToUpper(strings.TrimSpace(w))
		if !isAlpha(up) {
			return List{}, fmt.Errorf("%w: entry %d %q", ErrInvalidWord, i, w)
		}
		out = append(out, up)
	}
	return List{words: out}, nil
}

// MustNew is like New but panics on an invalid list.
func MustNew(words ...string) List {
	l, err := New(words...)
	if err != nil {
		panic(err)
	}
	return l
}

// Default returns the built-in word list.
func Default() List { return MustNew(defaultWords...) }

// Len returns the number of words.
func (l List) Len() int { return len(l.words) }

// At returns the i-th word. It panics when i is out of range.
func (l List) At(i int) string { return l.words[i] }

// Contains reports whether w (case-insensitive) is in the list.
func (l List) Contains(w string) bool {
	w = strings.ToUpper(w)
	for _, x := range l.words {
		if x == w {
			return true
		}
	}
	return false
}

// Words returns a copy of the words in list order.
func (l List) Words() []string {
	out := make([]string, len(l.words))
	copy(out, l.words)
	return out
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

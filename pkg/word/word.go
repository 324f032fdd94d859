// Package word implements the fixed-length row/column words and the
// W×H matrix they fill, along with the prefix-decomposition operation
// the prefix index builder relies on.
package word

import "github.com/shelvacu/finder/pkg/alphabet"

// Word is a fixed-length sequence of encoded characters: either a row
// (length Width) or a column (length Height). Its length is fixed by
// construction, not by the type system — Go has no const-generic
// arrays, so a row word and a column word share this one slice-backed
// type and are kept straight by the Dimension that produced them.
type Word []alphabet.Char

// NewWord returns a Word of length n with every position Null.
func NewWord(n int) Word {
	w := make(Word, n)
	for i := range w {
		w[i] = alphabet.Null
	}
	return w
}

// Clone returns an independent copy.
func (w Word) Clone() Word {
	c := make(Word, len(w))
	copy(c, w)
	return c
}

// IsMatch reports whether w and other match cell-wise: positions are
// equal, or at least one side is Null.
func (w Word) IsMatch(other Word) bool {
	if len(w) != len(other) {
		return false
	}
	for i := range w {
		if !alphabet.IsMatch(w[i], other[i]) {
			return false
		}
	}
	return true
}

// Equal compares raw contents (Null included), not cell-wise wildcard
// matching. Words are hashed and compared by raw contents.
func (w Word) Equal(other Word) bool {
	if len(w) != len(other) {
		return false
	}
	for i := range w {
		if w[i] != other[i] {
			return false
		}
	}
	return true
}

// Key returns a string suitable for use as a map key, hashing and
// comparing the word by its raw contents.
func (w Word) Key() string {
	b := make([]byte, len(w))
	for i, c := range w {
		b[i] = byte(c)
	}
	return string(b)
}

// String decodes w for display, rendering Null as '&'.
func (w Word) String() string {
	r := make([]rune, len(w))
	for i, c := range w {
		r[i] = alphabet.Decode(c)
	}
	return string(r)
}

// PrefixStep is one entry produced by Prefixes: a partial word with
// one additional Null compared to the previous step, and the letter
// that used to occupy that position.
type PrefixStep struct {
	Prefix Word
	Char   alphabet.Char
}

// Prefixes decomposes a concrete word w against a pattern p that
// matches it (p.IsMatch(w) must hold) into the sequence of
// (prefix, extending character) pairs the prefix index is built from.
//
// Iteration goes right to left: starting with prefix = w, for each
// position i from the last down to the first, if p[i] is Null, the
// letter c = prefix[i] is taken, prefix[i] is set to Null, and the
// pair (prefix, c) is emitted; otherwise p[i] must equal w[i]. The
// result has exactly one
// entry per Null position of p, and the last-emitted prefix has all
// of those positions Null.
func (w Word) Prefixes(p Word) []PrefixStep {
	if len(w) != len(p) {
		panic("word: Prefixes called with mismatched lengths")
	}
	var steps []PrefixStep
	prefix := w.Clone()
	for i := len(w) - 1; i >= 0; i-- {
		if p[i] == alphabet.Null {
			c := prefix[i]
			prefix[i] = alphabet.Null
			steps = append(steps, PrefixStep{Prefix: prefix.Clone(), Char: c})
		} else if p[i] != w[i] {
			panic("word: Prefixes called with a pattern that does not match w")
		}
	}
	return steps
}

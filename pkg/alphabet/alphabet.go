// Package alphabet encodes characters into a compact small-integer
// alphabet and provides a bitset over that alphabet.
package alphabet

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Char is an encoded character: a small integer in [0, Size), or Null.
type Char uint8

// Null is the sentinel value meaning "unset" or "wildcard". It is
// distinct from any valid encoded character.
const Null Char = 0xFF

// Size is the width of the alphabet, and therefore of CharSet: the 26
// lowercase letters plus the 10 digits, fitting in a 36-bit set that
// in turn fits comfortably in the 64-bit CharSet word. Letters and
// digits are both useful in a rectangle-finder's wordlist (brand names,
// model numbers, crossword-style alphanumeric fill all appear in real
// wordlists), so the declared character set is wider than the classic
// 26-letter alphabet.
const Size = 36

var foldCaser = cases.Fold()

var encodeTable = buildEncodeTable()

func buildEncodeTable() map[rune]Char {
	m := make(map[rune]Char, Size)
	for i := 0; i < 26; i++ {
		m[rune('a'+i)] = Char(i)
	}
	for i := 0; i < 10; i++ {
		m[rune('0'+i)] = Char(26 + i)
	}
	return m
}

var decodeTable = buildDecodeTable()

func buildDecodeTable() [Size]rune {
	var d [Size]rune
	for r, c := range encodeTable {
		d[c] = r
	}
	return d
}

// UnencodeableCharError is returned by TryEncode when a rune falls
// outside the declared character set.
type UnencodeableCharError struct {
	Rune rune
}

func (e UnencodeableCharError) Error() string {
	return fmt.Sprintf("alphabet: rune %q is not in the declared character set", e.Rune)
}

// TryEncode case-folds r to lower (Unicode-correct, not ASCII-only)
// and looks it up in the declared character set. It never returns
// Null on success; the caller represents "unset" explicitly.
func TryEncode(r rune) (Char, error) {
	folded := foldRune(r)
	c, ok := encodeTable[folded]
	if !ok {
		return Null, UnencodeableCharError{Rune: r}
	}
	return c, nil
}

func foldRune(r rune) rune {
	folded := []rune(foldCaser.String(string(r)))
	if len(folded) != 1 {
		return r
	}
	return folded[0]
}

// Decode returns the rune a Char was encoded from. Decoding Null
// returns the wildcard marker '&' used at the wordlist/CLI boundary.
func Decode(c Char) rune {
	if c == Null {
		return '&'
	}
	if int(c) >= Size {
		panic(fmt.Sprintf("alphabet: Decode of out-of-range char %d", c))
	}
	return decodeTable[c]
}

// Inc returns the next encoded character after c in ascending order,
// bridging Null -> 0 -> 1 -> ... -> Size-1 -> (none). It is the single
// place the search engine's cell advance touches the alphabet's total
// order, matching the original Rust engine's EncodedChar::inc.
func Inc(c Char) (Char, bool) {
	if c == Null {
		return 0, true
	}
	if int(c) < Size-1 {
		return c + 1, true
	}
	return Null, false
}

// IsMatch reports whether two encoded characters match cell-wise:
// equal, or either is Null (acting as a wildcard).
func IsMatch(a, b Char) bool {
	return a == Null || b == Null || a == b
}

// CharSet is a Size-bit bitset over encoded characters. The zero value
// is the empty set.
type CharSet uint64

// Set adds c to the set. It panics if c is out of range — an
// out-of-range Char here means an internal invariant was already
// violated upstream.
func (s *CharSet) Set(c Char) {
	if int(c) >= Size {
		panic(fmt.Sprintf("alphabet: CharSet.Set of out-of-range char %d", c))
	}
	*s |= CharSet(1) << uint(c)
}

// Has reports whether c is a member of the set. It panics if c is out
// of range.
func (s CharSet) Has(c Char) bool {
	if int(c) >= Size {
		panic(fmt.Sprintf("alphabet: CharSet.Has of out-of-range char %d", c))
	}
	return s&(CharSet(1)<<uint(c)) != 0
}

// And returns the intersection of two sets. It is commutative and
// associative since it is a bitwise AND.
func (s CharSet) And(other CharSet) CharSet {
	return s & other
}

// Package prefixindex builds the acceleration structure the search
// engine consults at every cell: given a dimension and a left-anchored
// pattern (some trailing cells Null), which characters may legally
// occupy the first Null position, given a template and a wordlist.
package prefixindex

import (
	"github.com/shelvacu/finder/pkg/alphabet"
	"github.com/shelvacu/finder/pkg/word"
)

// Index answers prefix-continuation queries for both dimensions of a
// single template/wordlist pair. HashIndex answers every pattern the
// search engine queries; ArenaIndex gives the same answers only in the
// cases described on its type.
type Index interface {
	// Lookup returns the set of characters observed to extend pattern
	// into a wordlist word matching one of the template's lines in dim.
	// The empty set means no such word exists.
	Lookup(dim word.Dimension, pattern word.Word) alphabet.CharSet
}

// patternsFor collects the distinct lines of the template in dim,
// using their Key() for deduplication.
func patternsFor(dim word.Dimension, template word.Matrix) []word.Word {
	seen := make(map[string]bool, dim.Lines)
	var out []word.Word
	for i := 0; i < dim.Lines; i++ {
		p := dim.IndexMatrix(template, i)
		k := p.Key()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, p)
	}
	return out
}

// square reports whether both dimensions share a word length, in which
// case a single combined index serves both orientations: a word fits
// either a row slot or a column slot, so both must draw from the same
// set of template patterns and the same wordlist.
func square() bool {
	return word.Row.Length == word.Col.Length
}

package prefixindex

import (
	"github.com/shelvacu/finder/pkg/alphabet"
	"github.com/shelvacu/finder/pkg/word"
)

// HashIndex is the natural representation: a map from a pattern's raw
// contents to the set of characters seen to extend it. Built once per
// template and reused for every cell query against that template.
type HashIndex struct {
	unified bool
	rows    map[string]alphabet.CharSet
	cols    map[string]alphabet.CharSet
}

// BuildHash constructs a HashIndex for template from the given
// wordlist entries.
func BuildHash(template word.Matrix, words []word.EitherWord) *HashIndex {
	h := &HashIndex{unified: square(), rows: make(map[string]alphabet.CharSet)}
	if !h.unified {
		h.cols = make(map[string]alphabet.CharSet)
	}

	rowPatterns := patternsFor(word.Row, template)
	var colPatterns []word.Word
	if h.unified {
		rowPatterns = append(rowPatterns, patternsFor(word.Col, template)...)
	} else {
		colPatterns = patternsFor(word.Col, template)
	}

	for _, ew := range words {
		h.absorb(word.Row, rowPatterns, h.rows, ew)
		if !h.unified {
			h.absorb(word.Col, colPatterns, h.cols, ew)
		}
	}
	return h
}

func (h *HashIndex) absorb(dim word.Dimension, patterns []word.Word, into map[string]alphabet.CharSet, ew word.EitherWord) {
	w, ok := dim.FromEither(ew)
	if !ok {
		return
	}
	// A must-include word may itself carry wildcard positions; such a
	// word constrains the template but cannot serve as a concrete fill
	// candidate elsewhere, since it has no letter of its own at those
	// positions.
	for _, c := range w {
		if c == alphabet.Null {
			return
		}
	}
	for _, pattern := range patterns {
		if !pattern.IsMatch(w) {
			continue
		}
		for _, step := range w.Prefixes(pattern) {
			k := step.Prefix.Key()
			cs := into[k]
			cs.Set(step.Char)
			into[k] = cs
		}
	}
}

func (h *HashIndex) mapFor(dim word.Dimension) map[string]alphabet.CharSet {
	if h.unified || dim.Name == word.Row.Name {
		return h.rows
	}
	return h.cols
}

// Lookup implements Index.
func (h *HashIndex) Lookup(dim word.Dimension, pattern word.Word) alphabet.CharSet {
	return h.mapFor(dim)[pattern.Key()]
}

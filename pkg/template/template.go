// Package template generates every starting matrix compatible with a
// set of must-include words.
package template

import "github.com/shelvacu/finder/pkg/word"

// Seed returns the canonical single starting template: an all-Null
// matrix, the only template compatible with an empty must-include list.
func Seed() []word.Matrix {
	return []word.Matrix{word.NewMatrix()}
}

// Generate produces every matrix compatible with all of mustUse,
// starting from a slice of seed templates (normally Seed()). For each
// must-include word, from last to first, every current template is
// expanded into one new template per (orientation, line index) slot
// the word matches; an empty result is legal and means no starting
// template admits every must-include word. Order of mustUse does not
// affect the resulting set.
func Generate(mustUse []word.EitherWord, from []word.Matrix) []word.Matrix {
	if len(mustUse) == 0 {
		return from
	}

	current := mustUse[len(mustUse)-1]
	rest := mustUse[:len(mustUse)-1]

	var to []word.Matrix
	for _, dim := range word.Dimensions {
		w, ok := dim.FromEither(current)
		if !ok {
			continue
		}
		for _, tmpl := range from {
			for i := 0; i < dim.Lines; i++ {
				if !w.IsMatch(dim.IndexMatrix(tmpl, i)) {
					continue
				}
				newTmpl := tmpl
				dim.SetMatrix(&newTmpl, i, w)
				to = append(to, newTmpl)
			}
		}
	}
	return Generate(rest, to)
}

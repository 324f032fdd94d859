// Package search implements the cell-by-cell backtracking engine that
// fills a template into complete word rectangles, consulting a prefix
// index at each cell instead of re-scanning the wordlist.
package search

import (
	"github.com/shelvacu/finder/pkg/alphabet"
	"github.com/shelvacu/finder/pkg/prefixindex"
	"github.com/shelvacu/finder/pkg/word"
)

// Run fills template, visiting cells in row-major order, and calls
// onResult once for every matrix reachable by advancing through
// target (inclusive) that matches a word in idx for every row and
// column. Passing word.LastIndex as target runs the search to
// completion; passing an earlier index yields partial fills at that
// frontier instead, which is how the dispatcher splits work across
// workers and estimates a progress total.
//
// Cells already fixed by template (not Null) are never advanced; only
// Null cells are searched. The walk backtracks by decrementing a cell
// once its character range is exhausted, matching the original
// engine's single-pass backtracking loop.
func Run(idx prefixindex.Index, template word.Matrix, target word.MatrixIndex, onResult func(word.Matrix)) {
	var charsetArray [word.Size]alphabet.CharSet
	var isNullish [word.Size]bool
	for i := range isNullish {
		isNullish[i] = true
	}
	for i, c := range template {
		if c != alphabet.Null {
			var cs alphabet.CharSet
			cs.Set(c)
			charsetArray[i] = cs
		}
	}

	matrix := template
	atIdx := word.ZeroIndex

	for {
		flat := atIdx.Flat()

		if isNullish[flat] && template.At(atIdx) == alphabet.Null {
			var rowSet, colSet alphabet.CharSet
			for _, dim := range word.Dimensions {
				pattern := dim.WordAt(matrix, atIdx)
				cs := idx.Lookup(dim, pattern)
				if dim.Name == word.Row.Name {
					rowSet = cs
				} else {
					colSet = cs
				}
			}
			charsetArray[flat] = rowSet.And(colSet)
		}

		if template.At(atIdx) == alphabet.Null || !isNullish[flat] {
			if next, ok := alphabet.Inc(matrix.At(atIdx)); ok {
				matrix.Set(atIdx, next)
			} else {
				matrix.Set(atIdx, template.At(atIdx))
				isNullish[flat] = true
				prev, ok := atIdx.Dec()
				if !ok {
					return
				}
				atIdx = prev
				continue
			}
		}

		isNullish[flat] = false
		if charsetArray[flat].Has(matrix.At(atIdx)) {
			next, nextOk := atIdx.Inc()
			targetNext, targetNextOk := target.Inc()
			switch {
			case nextOk == targetNextOk && (!nextOk || next == targetNext):
				onResult(matrix)
			case nextOk:
				atIdx = next
			default:
				panic("search: reached end of matrix before target index")
			}
		}
	}
}

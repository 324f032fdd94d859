package word

import "github.com/shelvacu/finder/pkg/alphabet"

// Dimension is the "which orientation" capability described in the
// design notes: a small set of operations parameterized over row vs.
// column, so that the template generator, the prefix index builder and
// the search engine are each written once and invoked for both
// orientations, rather than duplicated per-orientation as the original
// engine's compile-time-duplicated modules were.
type Dimension struct {
	// Name identifies the dimension for logging and map lookups.
	Name string
	// Length is the word length in this dimension (Width for rows, Height for cols).
	Length int
	// Lines is how many lines of this dimension a Matrix has (Height rows, Width cols).
	Lines int
	// IndexMatrix extracts the i'th line of this dimension from a matrix.
	IndexMatrix func(m Matrix, i int) Word
	// SetMatrix merges w into the i'th line of this dimension: each
	// non-Null position of w is written into the matrix, each Null
	// position is left untouched. A wildcard position in a must-include
	// word must not erase a letter a previously placed must-include word
	// fixed at the same cell.
	SetMatrix func(m *Matrix, i int, w Word)
	// IndexOfPoint returns which line of this dimension a cell belongs to.
	IndexOfPoint func(mi MatrixIndex) int
	// FromEither extracts this dimension's word from an either-word, if it fits.
	FromEither func(e EitherWord) (Word, bool)
}

// WordAt returns the line of this dimension passing through mi.
func (d Dimension) WordAt(m Matrix, mi MatrixIndex) Word {
	return d.IndexMatrix(m, d.IndexOfPoint(mi))
}

// Row is the horizontal dimension: lines of length Width, one per row.
var Row = Dimension{
	Name:   "row",
	Length: Width,
	Lines:  Height,
	IndexMatrix: func(m Matrix, i int) Word {
		return m.Row(i)
	},
	SetMatrix: func(m *Matrix, i int, w Word) {
		for c := 0; c < Width; c++ {
			if w[c] == alphabet.Null {
				continue
			}
			m.Set(MatrixIndex{Row: i, Col: c}, w[c])
		}
	},
	IndexOfPoint: func(mi MatrixIndex) int {
		return mi.Row
	},
	FromEither: func(e EitherWord) (Word, bool) {
		return e.AsRow()
	},
}

// Col is the vertical dimension: lines of length Height, one per column.
var Col = Dimension{
	Name:   "col",
	Length: Height,
	Lines:  Width,
	IndexMatrix: func(m Matrix, i int) Word {
		return m.Col(i)
	},
	SetMatrix: func(m *Matrix, i int, w Word) {
		for r := 0; r < Height; r++ {
			if w[r] == alphabet.Null {
				continue
			}
			m.Set(MatrixIndex{Row: r, Col: i}, w[r])
		}
	},
	IndexOfPoint: func(mi MatrixIndex) int {
		return mi.Col
	},
	FromEither: func(e EitherWord) (Word, bool) {
		return e.AsCol()
	},
}

// Dimensions lists both orientations; callers loop over this slice
// wherever the original iterated "each_dimension!".
var Dimensions = []Dimension{Row, Col}

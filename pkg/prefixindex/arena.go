package prefixindex

import (
	"github.com/shelvacu/finder/pkg/alphabet"
	"github.com/shelvacu/finder/pkg/word"
)

// arenaNone marks a child slot with no recorded continuation.
// arenaLeaf marks a continuation that completes the pattern exactly,
// i.e. the extended word has no further Null cells and so gets no
// trie node of its own.
const (
	arenaNone int32 = 0
	arenaLeaf int32 = -1
)

// arenaLine is one trie node: for each letter, either arenaNone,
// arenaLeaf, or a positive offset (added to the node's own index) to
// the child node.
type arenaLine [alphabet.Size]int32

// singleDimArena is the arena-of-lines trie for one dimension's
// patterns, walked one committed letter at a time from the root
// (index 0), mirroring how the search engine extends a pattern
// left-to-right one cell at a time.
type singleDimArena struct {
	length int
	arena  []arenaLine
}

func buildSingleDimArena(length int, hash map[string]alphabet.CharSet) *singleDimArena {
	a := &singleDimArena{length: length}
	buildArenaRec(hash, &a.arena, 0, word.NewWord(length))
	return a
}

// buildArenaRec mirrors the original structure's recursive build: it
// descends one Null position at a time, reserving an arena line only
// for words that still have a Null left to extend after this step.
func buildArenaRec(hash map[string]alphabet.CharSet, arena *[]arenaLine, index int, w word.Word) (end int, hasNode bool) {
	firstNull := -1
	for i, c := range w {
		if c == alphabet.Null {
			firstNull = i
			break
		}
	}
	if firstNull == -1 {
		return 0, false
	}

	for index >= len(*arena) {
		*arena = append(*arena, arenaLine{})
	}
	charset := hash[w.Key()]
	end = index + 1

	for c := 0; c < alphabet.Size; c++ {
		ec := alphabet.Char(c)
		if !charset.Has(ec) {
			continue
		}
		next := w.Clone()
		next[firstNull] = ec
		offset := end - index
		(*arena)[index][c] = int32(offset)
		if newEnd, ok := buildArenaRec(hash, arena, end, next); ok {
			end = newEnd
		} else {
			(*arena)[index][c] = arenaLeaf
		}
	}
	return end, true
}

// lookup walks the trie by pattern's committed (non-Null) prefix and
// returns the charset recorded at the node it lands on.
func (a *singleDimArena) lookup(pattern word.Word) alphabet.CharSet {
	idx := 0
	for _, c := range pattern {
		if c == alphabet.Null {
			break
		}
		if idx >= len(a.arena) {
			return 0
		}
		off := a.arena[idx][int(c)]
		switch {
		case off == arenaNone:
			return 0
		case off == arenaLeaf:
			return 0
		default:
			idx += int(off)
		}
	}
	if idx >= len(a.arena) {
		return 0
	}
	return lineToCharSet(a.arena[idx])
}

func lineToCharSet(line arenaLine) alphabet.CharSet {
	var cs alphabet.CharSet
	for c := 0; c < alphabet.Size; c++ {
		if line[c] != arenaNone {
			cs.Set(alphabet.Char(c))
		}
	}
	return cs
}

// ArenaIndex is the alternate acceleration structure: a pair of
// arena-of-lines tries (or one, when the dimensions are unified),
// trading HashIndex's O(1) map lookup for a denser, more
// cache-friendly representation that is walked one letter at a time.
//
// Its trie is grown from the all-Null pattern, and a lookup reads only
// the pattern's leading non-Null cells, ignoring any letter after the
// first Null. It therefore agrees with the HashIndex it was built from
// when that HashIndex was built for an all-Null template and the
// pattern's Null cells are all trailing; for a template with fixed
// cells, or a pattern with a letter after a Null, its answers differ.
type ArenaIndex struct {
	unified bool
	rows    *singleDimArena
	cols    *singleDimArena
}

// BuildArena constructs an ArenaIndex from an already-built HashIndex,
// reusing its per-dimension maps as the trie's source of truth.
func BuildArena(h *HashIndex) *ArenaIndex {
	a := &ArenaIndex{unified: h.unified}
	a.rows = buildSingleDimArena(word.Row.Length, h.rows)
	if h.unified {
		a.cols = a.rows
	} else {
		a.cols = buildSingleDimArena(word.Col.Length, h.cols)
	}
	return a
}

func (a *ArenaIndex) arenaFor(dim word.Dimension) *singleDimArena {
	if a.unified || dim.Name == word.Row.Name {
		return a.rows
	}
	return a.cols
}

// Lookup implements Index.
func (a *ArenaIndex) Lookup(dim word.Dimension, pattern word.Word) alphabet.CharSet {
	return a.arenaFor(dim).lookup(pattern)
}

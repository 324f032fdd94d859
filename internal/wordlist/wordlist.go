// Package wordlist loads the candidate word file and tracks which raw
// words are known, for the dispatcher's post-search validation pass.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/pgzip"

	"github.com/shelvacu/finder/pkg/word"
)

// Options controls how a wordlist file is ingested.
type Options struct {
	// IgnoreUnencodeable skips words containing characters outside the
	// declared alphabet instead of failing the load. Each skipped word
	// is still reported through Warn, so dropped input isn't silent.
	IgnoreUnencodeable bool
	// FilterAA drops words whose letters are all identical, before the
	// word is added to the set at all.
	FilterAA bool
	// Warn, if non-nil, is called once per word dropped because of
	// IgnoreUnencodeable. A nil Warn makes dropped words silent.
	Warn func(format string, args ...any)
}

// Set holds every loaded wordlist entry plus must-include additions,
// and answers the membership queries dispatch.Run needs to re-validate
// a completed rectangle.
type Set struct {
	Entries []word.EitherWord
	members map[string]bool
}

// New returns an empty Set, for tests and for CLI paths that build a
// wordlist entirely from --must-include.
func New() *Set {
	return &Set{members: make(map[string]bool)}
}

// Load reads path as UTF-8 text, one word per line, encoding each into
// an EitherWord. The file is transparently gunzipped if it starts with
// the gzip magic bytes, regardless of extension. A line whose length
// matches neither grid dimension is silently skipped, matching the
// original's handling of WordConversionError::WrongLength; a line with
// an unencodeable character is fatal unless opts.IgnoreUnencodeable is
// set, in which case it's skipped and reported through opts.Warn.
func Load(path string, opts Options) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: open %s: %w", path, err)
	}
	defer f.Close()

	r, err := maybeGunzip(f)
	if err != nil {
		return nil, fmt.Errorf("wordlist: %s: %w", path, err)
	}

	set := New()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if line == "" {
			continue
		}

		ew, err := word.ParseEitherWord(line, false)
		if err != nil {
			if ce, ok := err.(word.ConversionError); ok && ce.Kind == word.ErrWrongLength {
				continue
			}
			if opts.IgnoreUnencodeable {
				if opts.Warn != nil {
					opts.Warn("dropping %q at %s line %d: %v", line, path, lineNum, err)
				}
				continue
			}
			return nil, fmt.Errorf("wordlist: %s line %d %q: %w", path, lineNum, line, err)
		}
		if opts.FilterAA && ew.AllSameLetter() {
			continue
		}
		set.add(ew)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("wordlist: reading %s: %w", path, err)
	}
	return set, nil
}

func (s *Set) add(ew word.EitherWord) {
	s.Entries = append(s.Entries, ew)
	s.members[ew.Word.Key()] = true
}

// AddMustInclude inserts a must-include word so it can also serve as
// an ordinary fill word elsewhere in the grid. It is not deduplicated
// against what is already present: a word named twice in --must-include
// must still be able to appear twice in the result. A word containing
// a wildcard position is still added to Entries (so callers that
// enumerate every must-include word can see it) but is excluded by
// pkg/prefixindex from fill candidacy, since it has no letter of its
// own at the wildcard positions.
func (s *Set) AddMustInclude(ew word.EitherWord) {
	s.add(ew)
}

// Contains reports whether w matches some loaded or must-include
// word's raw contents exactly.
func (s *Set) Contains(w word.Word) bool {
	return s.members[w.Key()]
}

// Len reports how many entries are present.
func (s *Set) Len() int {
	return len(s.Entries)
}

func maybeGunzip(f *os.File) (io.Reader, error) {
	br := bufio.NewReader(f)
	magic, err := br.Peek(2)
	if err != nil && err != io.EOF {
		return nil, err
	}
	if len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := pgzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		return gz, nil
	}
	return br, nil
}

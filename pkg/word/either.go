package word

import (
	"fmt"

	"github.com/shelvacu/finder/pkg/alphabet"
)

// Orientation tags an EitherWord with which grid dimension it was
// read for.
type Orientation int

const (
	RowOrientation Orientation = iota
	ColOrientation
)

func (o Orientation) String() string {
	if o == RowOrientation {
		return "row"
	}
	return "col"
}

// EitherWord is a word tagged with the orientation it was parsed for:
// Row (length Width) or Col (length Height). When Width == Height a
// single word is ambiguous between the two, and AsRow/AsCol both
// succeed regardless of the tag — matching the original engine, which
// collapses both orientations into one when the rectangle is square.
type EitherWord struct {
	Orientation Orientation
	Word        Word
}

// NullMarker is the rune used at the wordlist/CLI boundary to mark a
// wildcard position in a must-include word.
const NullMarker = '&'

// ConversionErrorKind classifies why a string could not become a Word.
type ConversionErrorKind int

const (
	// ErrWrongLength means the string's length matched neither Width nor Height.
	ErrWrongLength ConversionErrorKind = iota
	// ErrUnencodeableChar means a rune fell outside the declared character set.
	ErrUnencodeableChar
	// ErrNullChar means a NullMarker rune appeared where nulls are not allowed.
	ErrNullChar
)

// ConversionError is returned by ParseEitherWord.
type ConversionError struct {
	Kind ConversionErrorKind
	Rune rune
	Pos  int
}

func (e ConversionError) Error() string {
	switch e.Kind {
	case ErrWrongLength:
		return "word: length does not match either grid dimension"
	case ErrUnencodeableChar:
		return fmt.Sprintf("word: character %q at position %d is not encodeable", e.Rune, e.Pos)
	case ErrNullChar:
		return fmt.Sprintf("word: null marker %q not allowed at position %d", e.Rune, e.Pos)
	default:
		return "word: conversion error"
	}
}

// ParseEitherWord encodes s into an EitherWord, choosing the Row
// orientation if len(s) == Width and Col if len(s) == Height (Row wins
// when both match, i.e. when the rectangle is square). allowNulls
// controls whether NullMarker runes are accepted as wildcards; pass
// false for plain wordlist entries and true for --must-include words.
func ParseEitherWord(s string, allowNulls bool) (EitherWord, error) {
	runes := []rune(s)
	switch {
	case len(runes) == Width:
		w, err := parseWord(runes, allowNulls)
		if err != nil {
			return EitherWord{}, err
		}
		return EitherWord{Orientation: RowOrientation, Word: w}, nil
	case len(runes) == Height:
		w, err := parseWord(runes, allowNulls)
		if err != nil {
			return EitherWord{}, err
		}
		return EitherWord{Orientation: ColOrientation, Word: w}, nil
	default:
		return EitherWord{}, ConversionError{Kind: ErrWrongLength}
	}
}

func parseWord(runes []rune, allowNulls bool) (Word, error) {
	w := make(Word, len(runes))
	for i, r := range runes {
		if r == NullMarker {
			if !allowNulls {
				return nil, ConversionError{Kind: ErrNullChar, Rune: r, Pos: i}
			}
			w[i] = alphabet.Null
			continue
		}
		c, err := alphabet.TryEncode(r)
		if err != nil {
			return nil, ConversionError{Kind: ErrUnencodeableChar, Rune: r, Pos: i}
		}
		w[i] = c
	}
	return w, nil
}

// AsRow returns e's word if it can serve as a row (length Width),
// which is true when it was parsed as a row, or the grid is square.
func (e EitherWord) AsRow() (Word, bool) {
	if e.Orientation == RowOrientation || Width == Height {
		return e.Word, true
	}
	return nil, false
}

// AsCol returns e's word if it can serve as a column (length Height),
// which is true when it was parsed as a column, or the grid is square.
func (e EitherWord) AsCol() (Word, bool) {
	if e.Orientation == ColOrientation || Width == Height {
		return e.Word, true
	}
	return nil, false
}

// AllSameLetter reports whether every position of the underlying word
// holds the same letter (used by the --filter-aa wordlist filter).
func (e EitherWord) AllSameLetter() bool {
	w := e.Word
	for i := 1; i < len(w); i++ {
		if w[i] != w[0] {
			return false
		}
	}
	return len(w) > 0
}

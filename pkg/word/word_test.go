package word

import (
	"testing"

	"github.com/shelvacu/finder/pkg/alphabet"
)

func mustEncode(t *testing.T, s string) Word {
	t.Helper()
	w := make(Word, len(s))
	for i, r := range s {
		if r == '_' {
			w[i] = alphabet.Null
			continue
		}
		c, err := alphabet.TryEncode(r)
		if err != nil {
			t.Fatalf("encode %q: %v", r, err)
		}
		w[i] = c
	}
	return w
}

func TestIsMatch(t *testing.T) {
	w := mustEncode(t, "sator")
	p := mustEncode(t, "s_t_r")
	if !p.IsMatch(w) {
		t.Fatal("pattern should match")
	}
	p2 := mustEncode(t, "s_t_z")
	if p2.IsMatch(w) {
		t.Fatal("pattern should not match")
	}
}

func TestPrefixesCountAndFinalPrefix(t *testing.T) {
	w := mustEncode(t, "sator")
	p := mustEncode(t, "_a_o_")
	if !p.IsMatch(w) {
		t.Fatal("precondition: pattern must match word")
	}
	steps := w.Prefixes(p)
	nulls := 0
	for _, c := range p {
		if c == alphabet.Null {
			nulls++
		}
	}
	if len(steps) != nulls {
		t.Fatalf("expected %d steps, got %d", nulls, len(steps))
	}
	last := steps[len(steps)-1].Prefix
	if !last.Equal(p) {
		t.Fatalf("final prefix %q should equal pattern %q", last, p)
	}
}

func TestPrefixesRightToLeft(t *testing.T) {
	w := mustEncode(t, "abcde")
	p := mustEncode(t, "ab___")
	steps := w.Prefixes(p)
	if len(steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(steps))
	}
	// First emitted: prefix "abcd_" with extending char 'e'.
	if steps[0].Prefix.String() != "abcd&" {
		t.Fatalf("step0 prefix = %q", steps[0].Prefix)
	}
	if alphabet.Decode(steps[0].Char) != 'e' {
		t.Fatalf("step0 char = %q", alphabet.Decode(steps[0].Char))
	}
	if steps[2].Prefix.String() != "ab&&&" {
		t.Fatalf("step2 (final) prefix = %q", steps[2].Prefix)
	}
}

func TestPrefixesPanicsOnMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	w := mustEncode(t, "abcde")
	bad := mustEncode(t, "xxxxx")
	w.Prefixes(bad)
}

func TestKeyRawContents(t *testing.T) {
	a := mustEncode(t, "sator")
	b := mustEncode(t, "sator")
	c := mustEncode(t, "s_tor")
	if a.Key() != b.Key() {
		t.Fatal("identical words should have identical keys")
	}
	if a.Key() == c.Key() {
		t.Fatal("null vs letter should not collide in raw-content key")
	}
}

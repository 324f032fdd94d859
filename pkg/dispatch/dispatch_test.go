package dispatch

import (
	"context"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/shelvacu/finder/pkg/template"
	"github.com/shelvacu/finder/pkg/word"
)

type fakeMembership map[string]bool

func (f fakeMembership) Contains(w word.Word) bool {
	return f[w.Key()]
}

func newFakeMembership(words []word.EitherWord) fakeMembership {
	f := make(fakeMembership, len(words))
	for _, ew := range words {
		f[ew.Word.Key()] = true
	}
	return f
}

func mustParse(t *testing.T, s string, allowNulls bool) word.EitherWord {
	t.Helper()
	ew, err := word.ParseEitherWord(s, allowNulls)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return ew
}

func matrixFromRows(t *testing.T, rows []string) word.Matrix {
	t.Helper()
	if len(rows) != word.Height {
		t.Fatalf("expected %d rows, got %d", word.Height, len(rows))
	}
	var m word.Matrix
	for r, rowStr := range rows {
		w := mustParse(t, rowStr, false).Word
		if len(w) != word.Width {
			t.Fatalf("row %q has wrong width", rowStr)
		}
		word.Row.SetMatrix(&m, r, w)
	}
	return m
}

func TestFrontierStaysWithinFirstRowOnEmptyTemplate(t *testing.T) {
	tmpl := word.NewMatrix()
	f := Frontier(tmpl)
	if f.Row != 0 {
		t.Fatalf("expected frontier within row 0 of an empty template, got %+v", f)
	}
}

func TestRunSatorSquareConcurrently(t *testing.T) {
	var wordlistStrs = []string{"sator", "arepo", "opera", "rotas", "tenet"}
	var wordlist []word.EitherWord
	for _, s := range wordlistStrs {
		wordlist = append(wordlist, mustParse(t, s, false))
	}
	members := newFakeMembership(wordlist)

	templates := template.Generate(nil, template.Seed())

	var results []word.Matrix
	err := Run(context.Background(), members, wordlist, templates, Options{Workers: 4}, func(m word.Matrix) {
		results = append(results, m)
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Less(results[j]) })

	want := []word.Matrix{
		matrixFromRows(t, []string{"sator", "arepo", "tenet", "opera", "rotas"}),
		matrixFromRows(t, []string{"rotas", "opera", "tenet", "arepo", "sator"}),
	}
	sort.Slice(want, func(i, j int) bool { return want[i].Less(want[j]) })

	if diff := cmp.Diff(want, results); diff != "" {
		t.Fatalf("result set mismatch (-want +got):\n%s", diff)
	}
}

func TestRunReportsProgressTotal(t *testing.T) {
	var wordlist []word.EitherWord
	wordlist = append(wordlist, mustParse(t, "aaaaa", false))
	members := newFakeMembership(wordlist)

	templates := template.Generate(nil, template.Seed())

	var total int
	err := Run(context.Background(), members, wordlist, templates, Options{
		Workers:         2,
		ShowProgress:    true,
		OnProgressTotal: func(n int) { total = n },
	}, func(word.Matrix) {})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if total <= 0 {
		t.Fatalf("expected a positive progress total, got %d", total)
	}
}

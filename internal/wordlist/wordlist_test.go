package wordlist

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/shelvacu/finder/pkg/word"
)

func writeTemp(t *testing.T, name, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPlainText(t *testing.T) {
	path := writeTemp(t, "words.txt", "sator\narepo\n\nopera\nrotas\ntenet\n")
	set, err := Load(path, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if set.Len() != 5 {
		t.Fatalf("expected 5 entries, got %d", set.Len())
	}
	w, _ := word.ParseEitherWord("sator", false)
	if !set.Contains(w.Word) {
		t.Fatal("expected 'sator' to be present")
	}
}

func TestLoadSkipsWrongLength(t *testing.T) {
	path := writeTemp(t, "words.txt", "sator\nhi\nabcdefgh\n")
	set, err := Load(path, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if set.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", set.Len())
	}
}

func TestLoadFilterAA(t *testing.T) {
	path := writeTemp(t, "words.txt", "sator\naaaaa\n")
	set, err := Load(path, Options{FilterAA: true})
	if err != nil {
		t.Fatal(err)
	}
	if set.Len() != 1 {
		t.Fatalf("expected 1 entry after filtering all-same-letter words, got %d", set.Len())
	}
}

func TestLoadUnencodeableFailsByDefault(t *testing.T) {
	path := writeTemp(t, "words.txt", "sat!r\n")
	_, err := Load(path, Options{})
	if err == nil {
		t.Fatal("expected an error for an unencodeable character")
	}
}

func TestLoadUnencodeableIgnored(t *testing.T) {
	path := writeTemp(t, "words.txt", "sat!r\nsator\n")
	set, err := Load(path, Options{IgnoreUnencodeable: true})
	if err != nil {
		t.Fatal(err)
	}
	if set.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", set.Len())
	}
}

func TestLoadUnencodeableIgnoredWarns(t *testing.T) {
	path := writeTemp(t, "words.txt", "sat!r\nsator\n")
	var warnings []string
	set, err := Load(path, Options{
		IgnoreUnencodeable: true,
		Warn: func(format string, args ...any) {
			warnings = append(warnings, fmt.Sprintf(format, args...))
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if set.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", set.Len())
	}
	if len(warnings) != 1 {
		t.Fatalf("expected exactly 1 warning for the dropped word, got %d: %v", len(warnings), warnings)
	}
}

func TestLoadGzipped(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write([]byte("sator\narepo\n")); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt.gz")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	set, err := Load(path, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if set.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", set.Len())
	}
}

func TestAddMustIncludeNotDeduplicated(t *testing.T) {
	set := New()
	ew, _ := word.ParseEitherWord("sator", true)
	set.AddMustInclude(ew)
	set.AddMustInclude(ew)
	if set.Len() != 2 {
		t.Fatalf("expected repeated must-include word to appear twice, got %d", set.Len())
	}
}

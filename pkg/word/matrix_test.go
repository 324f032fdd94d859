package word

import "testing"

func TestMatrixIndexIncDec(t *testing.T) {
	mi := ZeroIndex
	seen := map[MatrixIndex]bool{mi: true}
	count := 1
	for {
		next, ok := mi.Inc()
		if !ok {
			break
		}
		if seen[next] {
			t.Fatalf("revisited %+v", next)
		}
		seen[next] = true
		mi = next
		count++
	}
	if count != Size {
		t.Fatalf("expected %d cells, visited %d", Size, count)
	}

	// Dec should walk back from the last cell to ZeroIndex without failing.
	for mi != ZeroIndex {
		prev, ok := mi.Dec()
		if !ok {
			t.Fatalf("Dec() failed before reaching ZeroIndex at %+v", mi)
		}
		mi = prev
	}
}

func TestMatrixRowColRoundTrip(t *testing.T) {
	m := NewMatrix()
	sator := mustEncode(t, "sator")
	Row.SetMatrix(&m, 0, sator)
	got := Row.IndexMatrix(m, 0)
	if !got.Equal(sator) {
		t.Fatalf("row round-trip failed: got %q want %q", got, sator)
	}
}

func TestDimensionWordAt(t *testing.T) {
	m := NewMatrix()
	sator := mustEncode(t, "sator")
	Row.SetMatrix(&m, 2, sator)
	got := Row.WordAt(m, MatrixIndex{Row: 2, Col: 3})
	if !got.Equal(sator) {
		t.Fatalf("WordAt failed: got %q", got)
	}
}

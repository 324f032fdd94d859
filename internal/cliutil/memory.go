package cliutil

import (
	"fmt"
	"io"

	"github.com/pbnjay/memory"
)

// bytesPerEntry is a crude order-of-magnitude estimate of a single
// prefix-index map entry's footprint (map bucket overhead, a CharSet,
// and the Word.Key() backing array). The real footprint depends on the
// wordlist's letter distribution and which Index implementation is in
// use; this is a diagnostic heuristic, not a bound.
const bytesPerEntry = 64

// WarnIfIndexMayExceedMemory writes a warning to out when a rough
// estimate of the prefix index's memory footprint, built from
// entryCount words of length wordLength, exceeds half of total system
// memory.
func WarnIfIndexMayExceedMemory(out io.Writer, entryCount, wordLength int) {
	total := memory.TotalMemory()
	if total == 0 {
		return
	}
	estimate := uint64(entryCount) * uint64(wordLength) * bytesPerEntry
	if estimate > total/2 {
		fmt.Fprintf(out, "warning: estimated prefix index size (~%d MiB) exceeds half of system memory (%d MiB)\n",
			estimate/(1024*1024), total/(1024*1024))
	}
}

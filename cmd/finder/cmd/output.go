package cmd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/shelvacu/finder/pkg/word"
)

// rectangleWriter renders completed rectangles to out. The plain form
// is one line per rectangle, rows joined by '|', buffered so a large
// result set doesn't thrash the underlying writer one syscall per
// rectangle. The fancy form prints each row on its own line with a
// blank line between rectangles, flushed immediately so a consumer
// piping into `less` sees results as they arrive.
type rectangleWriter struct {
	out   io.Writer
	buf   *bufio.Writer
	fancy bool
}

func newRectangleWriter(out io.Writer, fancy bool) *rectangleWriter {
	w := &rectangleWriter{out: out, fancy: fancy}
	if !fancy {
		w.buf = bufio.NewWriterSize(out, 1024*1024)
	}
	return w
}

func (w *rectangleWriter) Write(m word.Matrix) {
	if w.fancy {
		for r := 0; r < word.Height; r++ {
			fmt.Fprintln(w.out, word.Row.IndexMatrix(m, r))
		}
		fmt.Fprintln(w.out)
		return
	}
	for r := 0; r < word.Height; r++ {
		if r > 0 {
			w.buf.WriteByte('|')
		}
		w.buf.WriteString(word.Row.IndexMatrix(m, r).String())
	}
	w.buf.WriteByte('\n')
}

// Flush drains any buffered output. A no-op in fancy mode, which never
// buffers.
func (w *rectangleWriter) Flush() error {
	if w.buf != nil {
		return w.buf.Flush()
	}
	return nil
}

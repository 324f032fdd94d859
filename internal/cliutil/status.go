package cliutil

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Status writes loud/quiet status lines to stderr, coloring them when
// stderr is a terminal and leaving them plain otherwise (redirected to
// a file, piped into another process, or run under --quiet).
type Status struct {
	out   io.Writer
	loud  bool
	label *color.Color
}

// NewStatus returns a Status writing to stderr. loud mirrors the
// absence of --quiet: when false, Printf is a no-op.
func NewStatus(loud bool) *Status {
	label := color.New(color.FgCyan)
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		label.DisableColor()
	}
	return &Status{out: os.Stderr, loud: loud, label: label}
}

// Printf writes a status line if loud is set, prefixed with a colored
// marker when output is a terminal.
func (s *Status) Printf(format string, args ...any) {
	if !s.loud {
		return
	}
	s.label.Fprint(s.out, "==> ")
	fmt.Fprintf(s.out, format+"\n", args...)
}

// Warnf always writes, even under --quiet: warnings about dropped
// input are a separate concern from routine progress narration.
func (s *Status) Warnf(format string, args ...any) {
	fmt.Fprintf(s.out, "warning: "+format+"\n", args...)
}

// Writer exposes the underlying stream for callers that need to hand
// it to another component, such as a progress bar or a warning helper.
func (s *Status) Writer() io.Writer {
	return s.out
}

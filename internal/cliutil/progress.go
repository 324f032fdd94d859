package cliutil

import (
	"fmt"
	"io"
	"time"
)

// ProgressBar renders a simple completed/total counter to stderr,
// redrawn at most once a second, mirroring the original engine's
// Bernoulli progress bar without depending on a terminal control
// library the rest of the corpus never reaches for.
type ProgressBar struct {
	out        io.Writer
	total      int
	done       int
	lastShown  time.Time
	minRedraw  time.Duration
	forceFinal bool
}

// NewProgressBar returns a bar over a known total task count.
func NewProgressBar(out io.Writer, total int) *ProgressBar {
	return &ProgressBar{out: out, total: total, minRedraw: time.Second}
}

// Add records one completed task and redraws if a second has passed
// since the last redraw.
func (p *ProgressBar) Add() {
	p.done++
	if time.Since(p.lastShown) >= p.minRedraw {
		p.render()
	}
}

// Finish draws a final, unconditional render.
func (p *ProgressBar) Finish() {
	p.render()
}

func (p *ProgressBar) render() {
	p.lastShown = time.Now()
	pct := 0.0
	if p.total > 0 {
		pct = 100 * float64(p.done) / float64(p.total)
	}
	fmt.Fprintf(p.out, "\r%d/%d (%.1f%%)", p.done, p.total, pct)
}

// Package dispatch fans a search out across a worker pool: one
// producer goroutine partially fills a template up to a frontier cell,
// handing each partial fill to a pool of workers that complete it and
// validate the result before it is reported.
package dispatch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/shelvacu/finder/pkg/alphabet"
	"github.com/shelvacu/finder/pkg/prefixindex"
	"github.com/shelvacu/finder/pkg/search"
	"github.com/shelvacu/finder/pkg/word"
)

// Membership reports whether a completed word appears in the
// wordlist. Every candidate rectangle is re-checked against it before
// being reported: the prefix index is built once per template and
// cannot produce a false positive, but the check is cheap and a wrong
// index would otherwise surface as silently wrong output instead of a
// loud failure.
type Membership interface {
	Contains(w word.Word) bool
}

// Frontier returns the cell at which a template is split into
// independent units of work: cells are walked in row-major order until
// Width-1 Null cells have been seen (or the matrix is exhausted), so
// the producer enumerates roughly one row's worth of free cells before
// each partial fill is handed to a worker, regardless of how many cells
// a template's must-include words already fixed.
func Frontier(template word.Matrix) word.MatrixIndex {
	mi := word.ZeroIndex
	nullsSoFar := 0
	for nullsSoFar < word.Width-1 {
		if template.At(mi) == alphabet.Null {
			nullsSoFar++
		}
		next, ok := mi.Inc()
		if !ok {
			break
		}
		mi = next
	}
	return mi
}

// Options configures a dispatch run.
type Options struct {
	// Workers is how many goroutines complete partial fills concurrently.
	Workers int
	// ShowProgress, when true, runs a dry pass counting how many partial
	// fills a template will produce before starting real work, and
	// invokes OnProgressTotal/OnProgress to report it.
	ShowProgress    bool
	OnProgressTotal func(templateTotal int)
	OnProgress      func()
}

// Run searches every template in turn, reporting each validated result
// to onResult. Results across different templates are never
// deduplicated against each other: the same completed rectangle can
// legitimately be discovered from more than one template when a
// must-include word appears in the result more than once.
func Run(ctx context.Context, wl Membership, words []word.EitherWord, templates []word.Matrix, opts Options, onResult func(word.Matrix)) error {
	for _, tmpl := range templates {
		idx := prefixindex.BuildHash(tmpl, words)
		if err := runTemplate(ctx, idx, wl, tmpl, opts, onResult); err != nil {
			return err
		}
	}
	return nil
}

func runTemplate(ctx context.Context, idx prefixindex.Index, wl Membership, tmpl word.Matrix, opts Options, onResult func(word.Matrix)) error {
	frontier := Frontier(tmpl)

	if opts.ShowProgress {
		var total int
		search.Run(idx, tmpl, frontier, func(word.Matrix) { total++ })
		if opts.OnProgressTotal != nil {
			opts.OnProgressTotal(total)
		}
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	tasks := make(chan word.Matrix, workers*2)
	results := make(chan word.Matrix, workers*2)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(tasks)
		search.Run(idx, tmpl, frontier, func(m word.Matrix) {
			select {
			case tasks <- m:
			case <-gctx.Done():
			}
		})
		return nil
	})

	var workerGroup errgroup.Group
	for i := 0; i < workers; i++ {
		workerGroup.Go(func() error {
			for partial := range tasks {
				search.Run(idx, partial, word.LastIndex, func(m word.Matrix) {
					if !validates(wl, m) {
						return
					}
					select {
					case results <- m:
					case <-gctx.Done():
					}
				})
				if opts.ShowProgress && opts.OnProgress != nil {
					opts.OnProgress()
				}
			}
			return nil
		})
	}

	g.Go(func() error {
		err := workerGroup.Wait()
		close(results)
		return err
	})

	g.Go(func() error {
		for m := range results {
			onResult(m)
		}
		return nil
	})

	return g.Wait()
}

func validates(wl Membership, m word.Matrix) bool {
	for _, dim := range word.Dimensions {
		for i := 0; i < dim.Lines; i++ {
			if !wl.Contains(dim.IndexMatrix(m, i)) {
				return false
			}
		}
	}
	return true
}

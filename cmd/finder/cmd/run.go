package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/shelvacu/finder/internal/cliutil"
	"github.com/shelvacu/finder/internal/wordlist"
	"github.com/shelvacu/finder/pkg/dispatch"
	"github.com/shelvacu/finder/pkg/template"
	"github.com/shelvacu/finder/pkg/word"
)

func runFinder(c *cobra.Command, args []string) error {
	runID := uuid.New()
	status := cliutil.NewStatus(!quiet)
	status.Printf("run %s: starting", runID)

	if showProgress && mustInclude != "" {
		return fmt.Errorf("--show-progress is incompatible with --must-include: the progress total can't account for must-include words shaping every template")
	}

	path := args[0]
	set, err := wordlist.Load(path, wordlist.Options{
		IgnoreUnencodeable: ignoreUnencodeable,
		FilterAA:           filterAA,
		Warn:               status.Warnf,
	})
	if err != nil {
		return err
	}
	if set.Len() == 0 && !ignoreEmptyWordlist {
		return fmt.Errorf("no usable %d- or %d-letter words found in %s (pass --ignore-empty-wordlist to proceed anyway)", word.Width, word.Height, path)
	}
	status.Printf("loaded %d words from %s", set.Len(), path)

	var mustIncludeWords []word.EitherWord
	for _, s := range splitMustInclude(mustInclude) {
		ew, err := word.ParseEitherWord(s, true)
		if err != nil {
			if ignoreEmptyWordlist {
				return nil
			}
			return fmt.Errorf("--must-include %q: %w", s, err)
		}
		set.AddMustInclude(ew)
		mustIncludeWords = append(mustIncludeWords, ew)
	}

	if !quiet {
		cliutil.WarnIfIndexMayExceedMemory(status.Writer(), set.Len(), word.Row.Length)
	}

	templates := template.Generate(mustIncludeWords, template.Seed())
	if len(templates) == 0 {
		if ignoreEmptyWordlist {
			return nil
		}
		return fmt.Errorf("must-include words cannot be fit into any %dx%d rectangle together", word.Width, word.Height)
	}
	status.Printf("expanded --must-include into %d starting template(s)", len(templates))

	out := newRectangleWriter(c.OutOrStdout(), fancyOutput)

	opts := dispatch.Options{
		Workers: resolveThreads(threads),
	}
	var bar *cliutil.ProgressBar
	if showProgress {
		opts.ShowProgress = true
		opts.OnProgressTotal = func(total int) {
			bar = cliutil.NewProgressBar(status.Writer(), total)
		}
		opts.OnProgress = func() {
			if bar != nil {
				bar.Add()
			}
		}
	}
	status.Printf("searching with %d worker(s)", opts.Workers)

	start := time.Now()
	err = dispatch.Run(context.Background(), set, set.Entries, templates, opts, func(m word.Matrix) {
		out.Write(m)
	})
	if flushErr := out.Flush(); err == nil {
		err = flushErr
	}
	if bar != nil {
		bar.Finish()
		fmt.Fprintln(status.Writer())
	}
	if err != nil {
		return err
	}

	status.Printf("run %s: took %s", runID, time.Since(start))
	return nil
}

// splitMustInclude turns the comma-separated --must-include flag value
// into its individual words, ignoring empty segments so a trailing or
// doubled comma isn't treated as an empty must-include word.
func splitMustInclude(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

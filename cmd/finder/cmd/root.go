// Package cmd implements the finder command-line interface: flag
// parsing and wiring from a wordlist file to the search engine and
// its dispatcher.
package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/shelvacu/finder/internal/cliutil"
	"github.com/shelvacu/finder/pkg/word"
)

var (
	threads            int
	ignoreEmptyWordlist bool
	ignoreUnencodeable bool
	quiet              bool
	mustInclude        string
	fancyOutput        bool
	filterAA           bool
	showProgress       bool
)

var rootCmd = &cobra.Command{
	Use:   "finder <wordlist-path>",
	Short: fmt.Sprintf("Find every %dx%d word rectangle over a wordlist", word.Width, word.Height),
	Long: fmt.Sprintf(`finder searches a wordlist for word rectangles: %d-by-%d grids of letters
where every row and every column is itself a word from the list.

The wordlist is a plain-text UTF-8 file, one word per line (transparently
gunzipped if it looks gzip-compressed). --must-include narrows the search
to rectangles containing every given word, in any order, and accepts '&' as a
wildcard letter within a must-include word.`, word.Width, word.Height),
	Args: cobra.ExactArgs(1),
	RunE: runFinder,
}

// Execute runs the root command. Called once from main.
func Execute() error {
	// A missing .env is not an error: most environments configure
	// finder entirely through flags and never need one.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().IntVarP(&threads, "threads", "t", 0,
		"number of worker threads (default: $FINDER_THREADS, else 4, or 1 in a debug build)")
	rootCmd.Flags().BoolVarP(&ignoreEmptyWordlist, "ignore-empty-wordlist", "e", false,
		"don't complain if there are no words of the necessary length in the given wordlist")
	rootCmd.Flags().BoolVarP(&ignoreUnencodeable, "ignore-unencodeable", "u", false,
		"skip words with characters outside the alphabet instead of failing; each dropped word is still warned about on stderr")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false,
		"don't show any status messages; stderr will be empty if no errors/warnings occurred")
	rootCmd.Flags().StringVarP(&mustInclude, "must-include", "m", "",
		"comma-separated words that must appear in the rectangle; '&' marks a wildcard letter")
	rootCmd.Flags().BoolVarP(&fancyOutput, "fancy-output", "f", false,
		"print each rectangle across H lines with blank-line separators, unbuffered")
	rootCmd.Flags().BoolVarP(&filterAA, "filter-aa", "a", false,
		"filter words of all the same letter (like 'aaaaa')")
	rootCmd.Flags().BoolVarP(&showProgress, "show-progress", "p", false,
		"show a progress bar on stderr; incompatible with --must-include")
}

func resolveThreads(flagValue int) int {
	if flagValue > 0 {
		return flagValue
	}
	if v := os.Getenv("FINDER_THREADS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return cliutil.DefaultThreads()
}

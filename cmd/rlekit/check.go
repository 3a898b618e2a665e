package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rlekit/internal/diag"
	"rlekit/internal/diagfmt"
	"rlekit/internal/driver"
	"rlekit/internal/observ"
	"rlekit/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.rle|directory>",
	Short: "Validate pattern files",
	Long: `Check parses an extended RLE pattern file, or every *.rle file in a
directory, and reports diagnostics without printing documents.
Single clean files are cached by content hash; a repeated check of an
unchanged file skips the parse entirely.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().Bool("no-cache", false, "bypass the on-disk result cache")
	checkCmd.Flags().Bool("drop-cache", false, "clear the on-disk result cache before checking")
}

func runCheck(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	dropCache, err := cmd.Flags().GetBool("drop-cache")
	if err != nil {
		return fmt.Errorf("failed to get drop-cache flag: %w", err)
	}

	prettyOpts := diagfmt.PrettyOpts{
		Color:      useColor(cmd, os.Stderr),
		ShowSource: true,
		ShowNotes:  true,
	}

	var cache *driver.DiskCache
	if !noCache {
		cache, err = driver.OpenDiskCache("rlekit")
		if err != nil {
			// Кэш опционален: без него просто парсим каждый раз.
			cache = nil
		}
	}
	if dropCache && cache != nil {
		if err := cache.DropAll(); err != nil {
			return fmt.Errorf("failed to drop cache: %w", err)
		}
	}

	timer := observ.NewTimer()

	st, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	var checked, failed int

	if !st.IsDir() {
		phase := timer.Begin("parse")
		var fs *source.FileSet
		var bag *diag.Bag
		if cache != nil {
			res, err := driver.ParseFileCached(cache, filePath, maxDiagnostics)
			if err != nil {
				return fmt.Errorf("check failed: %w", err)
			}
			fs, bag = res.FileSet, res.Bag
			note := ""
			if res.FromCache {
				note = "cache hit"
			}
			timer.End(phase, note)
		} else {
			res, err := driver.Parse(filePath, maxDiagnostics)
			if err != nil {
				return fmt.Errorf("check failed: %w", err)
			}
			fs, bag = res.FileSet, res.Bag
			timer.End(phase, "")
		}

		checked = 1
		if bag.HasErrors() || bag.HasWarnings() {
			diagfmt.Pretty(os.Stderr, bag, fs, prettyOpts)
		}
		if bag.HasErrors() {
			failed = 1
		}
	} else {
		jobs, err := cmd.Flags().GetInt("jobs")
		if err != nil {
			return fmt.Errorf("failed to get jobs flag: %w", err)
		}

		phase := timer.Begin("parse dir")
		fs, results, err := driver.ParseDir(cmd.Context(), filePath, maxDiagnostics, jobs)
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}
		timer.End(phase, fmt.Sprintf("%d file(s)", len(results)))

		checked = len(results)
		for _, r := range results {
			if r.Bag.HasErrors() || r.Bag.HasWarnings() {
				diagfmt.Pretty(os.Stderr, r.Bag, fs, prettyOpts)
			}
			if r.Bag.HasErrors() {
				failed++
			}
		}
	}

	if showTimings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	if !quiet {
		fmt.Fprintf(os.Stdout, "%d file(s) checked, %d with errors\n", checked, failed)
	}
	if failed > 0 {
		// Возвращаем ошибку ради ненулевого кода выхода.
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("%d file(s) with errors", failed)
	}
	return nil
}

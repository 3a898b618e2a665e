package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rlekit/internal/diagfmt"
	"rlekit/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.rle|directory>",
	Short: "Parse a pattern file or directory",
	Long:  `Parse decodes an extended RLE pattern file, or every *.rle file in a directory, into its document form`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	st, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	prettyOpts := diagfmt.PrettyOpts{
		Color:      useColor(cmd, os.Stderr),
		ShowSource: true,
	}

	if !st.IsDir() {
		result, err := driver.Parse(filePath, maxDiagnostics)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}

		if result.Bag.HasErrors() || result.Bag.HasWarnings() {
			diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, prettyOpts)
		}

		if format == "json" {
			return diagfmt.FormatDocumentJSON(os.Stdout, result.Doc)
		}
		return diagfmt.FormatDocumentPretty(os.Stdout, result.Doc)
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	fs, results, err := driver.ParseDir(cmd.Context(), filePath, maxDiagnostics, jobs)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	// Результаты уже отсортированы по пути.
	for _, r := range results {
		if r.Bag.HasErrors() || r.Bag.HasWarnings() {
			diagfmt.Pretty(os.Stderr, r.Bag, fs, prettyOpts)
		}
	}

	if format == "json" {
		output := make(map[string]*diagfmt.DocumentJSON, len(results))
		for _, r := range results {
			if r.Doc == nil || r.Bag.HasErrors() {
				output[r.Path] = nil
				continue
			}
			doc := diagfmt.BuildDocumentJSON(r.Doc)
			output[r.Path] = &doc
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(output)
	}

	for idx, r := range results {
		if !quiet {
			fmt.Fprintf(os.Stdout, "== %s ==\n", r.Path)
		}
		if r.Doc != nil && !r.Bag.HasErrors() {
			if err := diagfmt.FormatDocumentPretty(os.Stdout, r.Doc); err != nil {
				return err
			}
		}
		if !quiet && idx < len(results)-1 {
			fmt.Fprintln(os.Stdout)
		}
	}
	return nil
}

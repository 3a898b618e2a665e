package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"rlekit/internal/diag"
	"rlekit/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> [<CODE>]: <Message>
// затем строку источника с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	items := bag.Items()
	for i := range items {
		prettyOne(w, &items[i], fs, opts)
	}

	var errs, warns int
	for i := range items {
		switch items[i].Severity {
		case diag.SevError:
			errs++
		case diag.SevWarning:
			warns++
		}
	}
	if errs > 0 || warns > 0 {
		fmt.Fprintf(w, "%d error(s), %d warning(s)\n", errs, warns)
	}
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	f := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)
	c := severityColor(d.Severity, opts.Color)

	fmt.Fprintf(w, "%s:%d:%d: %s [%s]: %s\n",
		displayPath(f, fs, opts.PathMode), start.Line, start.Col,
		c.Sprint(d.Severity.String()), d.Code.ID(), d.Message)

	if opts.ShowSource {
		writeSourceLine(w, f, start, end, c)
	}

	if opts.ShowNotes {
		for _, n := range d.Notes {
			ns, _ := fs.Resolve(n.Span)
			nf := fs.Get(n.Span.File)
			fmt.Fprintf(w, "  note: %s:%d:%d: %s\n",
				displayPath(nf, fs, opts.PathMode), ns.Line, ns.Col, n.Msg)
		}
	}
}

func writeSourceLine(w io.Writer, f *source.File, start, end source.LineCol, c *color.Color) {
	line := f.GetLine(start.Line)
	fmt.Fprintf(w, "  %4d | %s\n", start.Line, line)

	endCol := end.Col
	if end.Line != start.Line || endCol <= start.Col {
		endCol = start.Col + 1
	}
	marker := strings.Repeat(" ", int(start.Col-1)) +
		"^" + strings.Repeat("~", int(endCol-start.Col-1))
	fmt.Fprintf(w, "       | %s\n", c.Sprint(marker))
}

func severityColor(sev diag.Severity, enabled bool) *color.Color {
	var c *color.Color
	switch sev {
	case diag.SevError:
		c = color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		c = color.New(color.FgYellow, color.Bold)
	default:
		c = color.New(color.FgCyan)
	}
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func displayPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeBasename:
		return filepath.Base(f.Path)
	case PathModeAbsolute:
		if f.Flags&source.FileVirtual == 0 {
			if abs, err := filepath.Abs(f.Path); err == nil {
				return abs
			}
		}
		return f.Path
	case PathModeRelative, PathModeAuto:
		return f.DisplayPath(fs.BaseDir())
	}
	return f.Path
}

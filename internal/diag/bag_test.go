package diag_test

import (
	"strings"
	"testing"

	"rlekit/internal/diag"
	"rlekit/internal/source"
)

func TestBagLimit(t *testing.T) {
	b := diag.NewBag(2)
	d := diag.Diagnostic{Severity: diag.SevError, Code: diag.LexUnknownChar}
	if !b.Add(d) || !b.Add(d) {
		t.Fatal("first two adds should succeed")
	}
	if b.Add(d) {
		t.Error("third add should be rejected by the limit")
	}
	if b.Len() != 2 {
		t.Errorf("Len = %d, want 2", b.Len())
	}
}

func TestBagHasErrorsWarnings(t *testing.T) {
	b := diag.NewBag(10)
	if b.HasErrors() || b.HasWarnings() {
		t.Error("empty bag should have no errors or warnings")
	}
	b.Add(diag.Diagnostic{Severity: diag.SevWarning, Code: diag.SynInfo})
	if b.HasErrors() {
		t.Error("warning should not count as error")
	}
	if !b.HasWarnings() {
		t.Error("expected HasWarnings")
	}
	b.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.SynTrailingInput})
	if !b.HasErrors() {
		t.Error("expected HasErrors")
	}
}

func TestBagSortAndDedup(t *testing.T) {
	b := diag.NewBag(10)
	later := source.Span{File: 0, Start: 10, End: 11}
	earlier := source.Span{File: 0, Start: 2, End: 3}
	b.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.SynBadCount, Primary: later})
	b.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.LexUnknownChar, Primary: earlier})
	b.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.LexUnknownChar, Primary: earlier})

	b.Sort()
	b.Dedup()

	items := b.Items()
	if len(items) != 2 {
		t.Fatalf("after dedup: %d items, want 2", len(items))
	}
	if items[0].Code != diag.LexUnknownChar || items[1].Code != diag.SynBadCount {
		t.Errorf("unexpected order: %v, %v", items[0].Code, items[1].Code)
	}
}

func TestCodeID(t *testing.T) {
	cases := map[diag.Code]string{
		diag.LexUnknownChar:     "LEX1001",
		diag.LexBadStateSymbol:  "LEX1002",
		diag.SynMissingHeader:   "SYN2001",
		diag.SynDuplicateHeader: "SYN2002",
		diag.SynBadHeaderField:  "SYN2003",
		diag.SynBadCount:        "SYN2004",
		diag.SynBadCxrleEntry:   "SYN2005",
		diag.SynTrailingInput:   "SYN2006",
		diag.IOReadFail:         "IO4001",
		diag.UnknownCode:        "E0000",
	}
	for c, want := range cases {
		if got := c.ID(); got != want {
			t.Errorf("%d.ID() = %q, want %q", c, got, want)
		}
	}
}

func TestFormatGoldenDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("glider.rle", []byte("x = 3, y = 3\nbo$2bo$3o!\n"))

	bag := diag.NewBag(10)
	r := &diag.BagReporter{Bag: bag}
	diag.ReportError(r, diag.SynTrailingInput, source.Span{File: id, Start: 13, End: 14}, "content after '!'").Emit()

	got := diag.FormatGoldenDiagnostics(bag.Items(), fs, false)
	want := "error SYN2006 glider.rle:2:1 content after '!'"
	if got != want {
		t.Errorf("golden output:\n got %q\nwant %q", got, want)
	}
	if strings.Contains(got, "\n") {
		t.Error("single diagnostic should render on one line")
	}
}

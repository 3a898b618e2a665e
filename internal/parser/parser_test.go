package parser

import (
	"testing"

	"rlekit/internal/diag"
	"rlekit/internal/rle"
	"rlekit/internal/source"
)

func parseSrc(t *testing.T, src string) Result {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rle", []byte(src))
	return ParseFile(fs.Get(id), Options{})
}

func expectClean(t *testing.T, res Result) *rle.Document {
	t.Helper()
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}
	return res.Doc
}

func expectOneError(t *testing.T, res Result, code diag.Code) diag.Diagnostic {
	t.Helper()
	if res.Bag.Len() != 1 {
		t.Fatalf("diagnostic count: got %d (%v), want 1", res.Bag.Len(), res.Bag.Items())
	}
	d := res.Bag.Items()[0]
	if d.Code != code {
		t.Fatalf("diagnostic code: got %s (%s), want %s", d.Code.ID(), d.Message, code.ID())
	}
	return d
}

func TestParseGlider(t *testing.T) {
	doc := expectClean(t, parseSrc(t, "#C classic glider\nx = 3, y = 3, rule = B3/S23\nbo$2bo$3o!\n"))

	if doc.Header.X != 3 || doc.Header.Y != 3 || doc.Header.Rule != "B3/S23" {
		t.Fatalf("header: got %s", doc.Header)
	}
	if !doc.Terminated {
		t.Error("expected an explicit '!' terminator")
	}

	want := []rle.ContentItem{
		{Kind: rle.ItemRun, Count: 1, State: 0},
		{Kind: rle.ItemRun, Count: 1, State: 1},
		{Kind: rle.ItemEndRow, Count: 1},
		{Kind: rle.ItemRun, Count: 2, State: 0},
		{Kind: rle.ItemRun, Count: 1, State: 1},
		{Kind: rle.ItemEndRow, Count: 1},
		{Kind: rle.ItemRun, Count: 3, State: 1},
	}
	if len(doc.Body) != len(want) {
		t.Fatalf("body length: got %d, want %d", len(doc.Body), len(want))
	}
	for i, w := range want {
		g := doc.Body[i]
		if g.Kind != w.Kind || g.Count != w.Count || g.State != w.State {
			t.Errorf("item %d: got {%s %d %d}, want {%s %d %d}",
				i, g.Kind, g.Count, g.State, w.Kind, w.Count, w.State)
		}
	}
	if doc.Cells() != 8 {
		t.Errorf("cells: got %d, want 8", doc.Cells())
	}
}

func TestParseMultiStateSymbols(t *testing.T) {
	doc := expectClean(t, parseSrc(t, "x = 4, y = 1, rule = custom256\npAyO.X!"))

	states := []uint8{25, 255, 0, 24}
	if len(doc.Body) != len(states) {
		t.Fatalf("body length: got %d, want %d", len(doc.Body), len(states))
	}
	for i, want := range states {
		if doc.Body[i].State != want {
			t.Errorf("item %d state: got %d, want %d", i, doc.Body[i].State, want)
		}
	}
}

func TestParseCxrleMetadata(t *testing.T) {
	doc := expectClean(t, parseSrc(t, "#CXRLE Pos=0,-1377 Gen=3480106827776\nx = 1, y = 1\no!"))

	if len(doc.Metadata) != 1 || len(doc.Metadata[0].Entries) != 2 {
		t.Fatalf("metadata: got %+v", doc.Metadata)
	}
	if v, ok := doc.MetaValue("Pos"); !ok || v != "0,-1377" {
		t.Errorf("Pos: got %q, %v", v, ok)
	}
	if v, ok := doc.MetaValue("Gen"); !ok || v != "3480106827776" {
		t.Errorf("Gen: got %q, %v", v, ok)
	}
}

func TestParseCxrleMidBodyAndDuplicateKeys(t *testing.T) {
	doc := expectClean(t, parseSrc(t, "x = 2, y = 1\no\n#CXRLE Pos=1,1\n#CXRLE Pos=2,2\no!"))

	if len(doc.Metadata) != 2 {
		t.Fatalf("metadata lines: got %d, want 2", len(doc.Metadata))
	}
	// При повторе ключа побеждает последняя строка.
	if v, _ := doc.MetaValue("Pos"); v != "2,2" {
		t.Errorf("Pos: got %q, want %q", v, "2,2")
	}
	if len(doc.Body) != 2 {
		t.Errorf("body length: got %d, want 2", len(doc.Body))
	}
}

func TestParseHeaderWithoutRule(t *testing.T) {
	doc := expectClean(t, parseSrc(t, "x = 2, y = 1\n2o!"))
	if doc.Header.Rule != "" {
		t.Errorf("rule: got %q, want empty", doc.Header.Rule)
	}
	if doc.Header.String() != "x = 2, y = 1" {
		t.Errorf("header string: got %q", doc.Header.String())
	}
}

func TestParseNegativeExtents(t *testing.T) {
	doc := expectClean(t, parseSrc(t, "x = -3, y = 0, rule = B3/S23\n!"))
	if doc.Header.X != -3 || doc.Header.Y != 0 {
		t.Errorf("header: got x=%d y=%d", doc.Header.X, doc.Header.Y)
	}
}

func TestParseUnterminatedBody(t *testing.T) {
	doc := expectClean(t, parseSrc(t, "x = 1, y = 1\no"))
	if doc.Terminated {
		t.Error("terminated: got true for input without '!'")
	}
	if len(doc.Body) != 1 {
		t.Errorf("body length: got %d, want 1", len(doc.Body))
	}
}

func TestParseCommentsDoNotSplitBody(t *testing.T) {
	doc := expectClean(t, parseSrc(t, "x = 2, y = 2\n2o$\n#C middle\n2o!\n#C after bang is fine\n"))
	if len(doc.Body) != 3 {
		t.Fatalf("body length: got %d, want 3", len(doc.Body))
	}
	if !doc.Terminated {
		t.Error("expected terminated document")
	}
}

func TestParseCxrleAfterTerminator(t *testing.T) {
	doc := expectClean(t, parseSrc(t, "x = 1, y = 1\no!\n#CXRLE Pos=0,0\n"))
	if !doc.Terminated {
		t.Error("expected terminated document")
	}
	// CXRLE-строка после '!' остаётся заметкой и попадает в метаданные.
	if len(doc.Metadata) != 1 {
		t.Fatalf("metadata lines: got %d, want 1", len(doc.Metadata))
	}
	if v, ok := doc.MetaValue("Pos"); !ok || v != "0,0" {
		t.Errorf("Pos: got %q, %v", v, ok)
	}
}

func TestParseCxrleAfterTerminatorThenJunk(t *testing.T) {
	res := parseSrc(t, "x = 1, y = 1\no!\n#CXRLE Gen=1\noo")
	expectOneError(t, res, diag.SynTrailingInput)
}

func TestParseMissingHeader(t *testing.T) {
	res := parseSrc(t, "bo$2bo!")
	expectOneError(t, res, diag.SynMissingHeader)
}

func TestParseDuplicateHeader(t *testing.T) {
	res := parseSrc(t, "x = 1, y = 1\no\nx = 2, y = 2\n!")
	expectOneError(t, res, diag.SynDuplicateHeader)
	// Всё до дубликата сохранено.
	if res.Doc.Header.X != 1 || len(res.Doc.Body) != 1 {
		t.Errorf("partial doc: header x=%d, body=%d", res.Doc.Header.X, len(res.Doc.Body))
	}
}

func TestParseTrailingAfterBang(t *testing.T) {
	res := parseSrc(t, "x = 1, y = 1\no! o")
	d := expectOneError(t, res, diag.SynTrailingInput)
	if d.Message != "content after '!'" {
		t.Errorf("message: got %q", d.Message)
	}
	if !res.Doc.Terminated {
		t.Error("document before the trailing junk should be terminated")
	}
}

func TestParseBadHeaderFields(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"leading zero", "x = 01, y = 1\no!"},
		{"plus sign", "x = +1, y = 1\no!"},
		{"negative zero", "x = 1, y = -0\no!"},
		{"bare minus", "x = -, y = 1\no!"},
		{"missing value", "x = , y = 1\no!"},
		{"missing comma", "x = 1\no!"},
		{"swapped fields", "x = 1, rule = B3/S23\no!"},
		{"missing rule value", "x = 1, y = 1, rule =\no!"},
		{"overflow", "x = 99999999999999999999, y = 1\no!"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			expectOneError(t, parseSrc(t, tc.src), diag.SynBadHeaderField)
		})
	}
}

func TestParseBadCounts(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"zero count", "x = 1, y = 1\n0o!"},
		{"leading zero count", "x = 1, y = 1\n02o!"},
		{"count before bang", "x = 1, y = 1\no3!"},
		{"count at end of line", "x = 1, y = 1\n3\n!"},
		{"count overflow", "x = 1, y = 1\n4294967296o!"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			expectOneError(t, parseSrc(t, tc.src), diag.SynBadCount)
		})
	}
}

func TestParseBadCxrleEntries(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"no equals", "#CXRLE Position\nx = 1, y = 1\no!"},
		{"empty key", "#CXRLE =5\nx = 1, y = 1\no!"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			expectOneError(t, parseSrc(t, tc.src), diag.SynBadCxrleEntry)
		})
	}
}

func TestParseLexerErrorStopsParse(t *testing.T) {
	res := parseSrc(t, "x = 1, y = 1\nZo!")
	expectOneError(t, res, diag.LexBadStateSymbol)
}

func TestParseStopsAfterFirstError(t *testing.T) {
	// Две проблемы в одном вводе, репортится только первая.
	res := parseSrc(t, "x = 01, y = 02\n0o!")
	expectOneError(t, res, diag.SynBadHeaderField)
}

func TestParseEmptyInput(t *testing.T) {
	res := parseSrc(t, "")
	expectOneError(t, res, diag.SynMissingHeader)
}

func TestParseCommentOnlyInput(t *testing.T) {
	res := parseSrc(t, "#C nothing here\n")
	expectOneError(t, res, diag.SynMissingHeader)
}

func TestParseImplicitAndExplicitCounts(t *testing.T) {
	doc := expectClean(t, parseSrc(t, "x = 5, y = 2\n5o2$!"))
	if len(doc.Body) != 2 {
		t.Fatalf("body length: got %d, want 2", len(doc.Body))
	}
	if doc.Body[0].Count != 5 || doc.Body[0].Kind != rle.ItemRun {
		t.Errorf("item 0: got %+v", doc.Body[0])
	}
	if doc.Body[1].Count != 2 || doc.Body[1].Kind != rle.ItemEndRow {
		t.Errorf("item 1: got %+v", doc.Body[1])
	}
}

func TestParseSpansPointIntoSource(t *testing.T) {
	src := "x = 3, y = 1\n2bo!"
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rle", []byte(src))
	file := fs.Get(id)
	res := ParseFile(file, Options{})
	doc := expectClean(t, res)

	if got := file.Text(doc.Header.Span); got != "x = 3, y = 1" {
		t.Errorf("header span text: got %q", got)
	}
	if got := file.Text(doc.Body[0].Span); got != "2b" {
		t.Errorf("run span text: got %q", got)
	}
	start, _ := fs.Resolve(doc.Body[0].Span)
	if start.Line != 2 || start.Col != 1 {
		t.Errorf("run position: got %d:%d, want 2:1", start.Line, start.Col)
	}
}

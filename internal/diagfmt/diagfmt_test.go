package diagfmt

import (
	"encoding/json"
	"strings"
	"testing"

	"rlekit/internal/diag"
	"rlekit/internal/lexer"
	"rlekit/internal/parser"
	"rlekit/internal/source"
	"rlekit/internal/token"
)

func parseFixture(t *testing.T, src string) (*source.FileSet, parser.Result) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("glider.rle", []byte(src))
	return fs, parser.ParseFile(fs.Get(id), parser.Options{})
}

func TestPrettyDiagnostics(t *testing.T) {
	fs, res := parseFixture(t, "x = 1, y = 1\no! o")
	if !res.Bag.HasErrors() {
		t.Fatal("fixture must produce an error")
	}

	var sb strings.Builder
	Pretty(&sb, res.Bag, fs, PrettyOpts{ShowSource: true})
	out := sb.String()

	if !strings.Contains(out, "glider.rle:2:4: ERROR [SYN2006]: content after '!'") {
		t.Errorf("missing header line:\n%s", out)
	}
	if !strings.Contains(out, "o! o") {
		t.Errorf("missing source line:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("missing caret marker:\n%s", out)
	}
	if !strings.Contains(out, "1 error(s), 0 warning(s)") {
		t.Errorf("missing summary:\n%s", out)
	}
}

func TestPrettyWithoutColorHasNoEscapes(t *testing.T) {
	fs, res := parseFixture(t, "bo!")

	var sb strings.Builder
	Pretty(&sb, res.Bag, fs, PrettyOpts{Color: false, ShowSource: true})
	if strings.Contains(sb.String(), "\x1b[") {
		t.Errorf("unexpected ANSI escapes:\n%q", sb.String())
	}
}

func TestJSONDiagnostics(t *testing.T) {
	fs, res := parseFixture(t, "x = 01, y = 1\no!")

	var sb strings.Builder
	if err := JSON(&sb, res.Bag, fs, JSONOpts{IncludePositions: true}); err != nil {
		t.Fatal(err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal([]byte(sb.String()), &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count: got %d", out.Count)
	}
	d := out.Diagnostics[0]
	if d.Code != "SYN2003" || d.Severity != "ERROR" {
		t.Errorf("diagnostic: got %s %s", d.Severity, d.Code)
	}
	if d.Location.File != "glider.rle" || d.Location.StartLine != 1 || d.Location.StartCol != 5 {
		t.Errorf("location: got %+v", d.Location)
	}
}

func TestJSONMaxTruncates(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("x.rle", []byte("x = 1, y = 1\no!"))
	bag := diag.NewBag(8)
	sp := source.Span{File: id, Start: 0, End: 1}
	bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.SynBadCount, Primary: sp, Message: "a"})
	bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.SynBadCount, Primary: sp, Message: "b"})

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 1})
	if out.Count != 1 {
		t.Fatalf("count: got %d, want 1", out.Count)
	}
}

func TestFormatDocumentJSON(t *testing.T) {
	_, res := parseFixture(t, "#CXRLE Pos=0,0\nx = 3, y = 3, rule = B3/S23\nbo$2bo$3o!")
	if res.Bag.HasErrors() {
		t.Fatalf("fixture: %v", res.Bag.Items())
	}

	var sb strings.Builder
	if err := FormatDocumentJSON(&sb, res.Doc); err != nil {
		t.Fatal(err)
	}
	var out DocumentJSON
	if err := json.Unmarshal([]byte(sb.String()), &out); err != nil {
		t.Fatal(err)
	}
	if out.Header.X != 3 || out.Header.Rule != "B3/S23" {
		t.Errorf("header: got %+v", out.Header)
	}
	if len(out.Body) != 7 || out.Cells != 8 || !out.Terminated {
		t.Errorf("body: items=%d cells=%d terminated=%v", len(out.Body), out.Cells, out.Terminated)
	}
	if len(out.Metadata) != 1 || out.Metadata[0].Entries[0].Key != "Pos" {
		t.Errorf("metadata: got %+v", out.Metadata)
	}
}

func TestFormatDocumentPretty(t *testing.T) {
	_, res := parseFixture(t, "x = 3, y = 1\n2bo!")

	var sb strings.Builder
	if err := FormatDocumentPretty(&sb, res.Doc); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if !strings.Contains(out, "header: x = 3, y = 1") {
		t.Errorf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "2 item(s), 3 cell(s), terminated") {
		t.Errorf("missing body summary:\n%s", out)
	}
	if !strings.Contains(out, "run      count=2 state=0") {
		t.Errorf("missing run line:\n%s", out)
	}
}

func TestFormatTokens(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.rle", []byte("x = 1, y = 1\no!"))
	lx := lexer.New(fs.Get(id), lexer.Options{})

	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	var pretty strings.Builder
	if err := FormatTokensPretty(&pretty, toks, fs); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(pretty.String(), "KwX") || !strings.Contains(pretty.String(), "EndFile") {
		t.Errorf("pretty tokens:\n%s", pretty.String())
	}

	var raw strings.Builder
	if err := FormatTokensJSON(&raw, toks); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal([]byte(raw.String()), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != len(toks) {
		t.Errorf("json tokens: got %d, want %d", len(out), len(toks))
	}
}

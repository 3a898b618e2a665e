package parser

import (
	"fmt"
	"strings"

	"rlekit/internal/diag"
	"rlekit/internal/rle"
)

// parseCxrleLine splits a '#CXRLE' token into key=value entries. Values
// keep everything after the first '=' verbatim, so 'Pos=0,-1377' and
// even values containing '=' survive untouched. Duplicate keys are
// legal; readers take the last occurrence.
func (p *parser) parseCxrleLine(doc *rle.Document) {
	line := rle.MetadataLine{Span: p.tok.Span}
	for _, field := range strings.Fields(p.tok.Text) {
		key, value, ok := strings.Cut(field, "=")
		if !ok || key == "" {
			p.errAt(diag.SynBadCxrleEntry, p.tok.Span,
				fmt.Sprintf("malformed CXRLE entry %q, want key=value", field))
			return
		}
		line.Entries = append(line.Entries, rle.Entry{Key: key, Value: value})
	}
	doc.Metadata = append(doc.Metadata, line)
	p.advance()
}

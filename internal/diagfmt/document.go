package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"rlekit/internal/rle"
)

// HeaderJSON mirrors rle.Header without spans.
type HeaderJSON struct {
	X    int64  `json:"x"`
	Y    int64  `json:"y"`
	Rule string `json:"rule,omitempty"`
}

// MetaLineJSON is one '#CXRLE' line as ordered key=value pairs.
type MetaLineJSON struct {
	Entries []MetaEntryJSON `json:"entries"`
}

type MetaEntryJSON struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ItemJSON is one decoded content item.
type ItemJSON struct {
	Kind  string `json:"kind"`
	Count uint32 `json:"count"`
	State uint8  `json:"state"`
}

// DocumentJSON is the machine-readable form of a parsed pattern.
type DocumentJSON struct {
	Header     HeaderJSON     `json:"header"`
	Metadata   []MetaLineJSON `json:"metadata,omitempty"`
	Body       []ItemJSON     `json:"body"`
	Terminated bool           `json:"terminated"`
	Cells      uint64         `json:"cells"`
}

// BuildDocumentJSON формирует структуру JSON-вывода без сериализации.
func BuildDocumentJSON(doc *rle.Document) DocumentJSON {
	out := DocumentJSON{
		Header: HeaderJSON{
			X:    doc.Header.X,
			Y:    doc.Header.Y,
			Rule: doc.Header.Rule,
		},
		Body:       make([]ItemJSON, 0, len(doc.Body)),
		Terminated: doc.Terminated,
		Cells:      doc.Cells(),
	}
	for _, line := range doc.Metadata {
		ml := MetaLineJSON{Entries: make([]MetaEntryJSON, 0, len(line.Entries))}
		for _, e := range line.Entries {
			ml.Entries = append(ml.Entries, MetaEntryJSON{Key: e.Key, Value: e.Value})
		}
		out.Metadata = append(out.Metadata, ml)
	}
	for _, it := range doc.Body {
		out.Body = append(out.Body, ItemJSON{
			Kind:  it.Kind.String(),
			Count: it.Count,
			State: it.State,
		})
	}
	return out
}

// FormatDocumentJSON выводит документ в JSON формате.
func FormatDocumentJSON(w io.Writer, doc *rle.Document) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDocumentJSON(doc))
}

// FormatDocumentPretty выводит документ в человекочитаемом формате.
func FormatDocumentPretty(w io.Writer, doc *rle.Document) error {
	fmt.Fprintf(w, "header: %s\n", doc.Header)
	for _, line := range doc.Metadata {
		parts := make([]string, 0, len(line.Entries))
		for _, e := range line.Entries {
			parts = append(parts, e.Key+"="+e.Value)
		}
		fmt.Fprintf(w, "cxrle:  %s\n", strings.Join(parts, " "))
	}

	status := "unterminated"
	if doc.Terminated {
		status = "terminated"
	}
	fmt.Fprintf(w, "body:   %d item(s), %d cell(s), %s\n", len(doc.Body), doc.Cells(), status)

	for i, it := range doc.Body {
		switch it.Kind {
		case rle.ItemRun:
			fmt.Fprintf(w, "%4d: run      count=%d state=%d\n", i+1, it.Count, it.State)
		case rle.ItemEndRow:
			fmt.Fprintf(w, "%4d: end_row  count=%d\n", i+1, it.Count)
		}
	}
	return nil
}

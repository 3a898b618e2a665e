// Package rle holds the decoded representation of a Golly extended RLE
// pattern file and the codec for its 256-state symbol alphabet.
package rle

import (
	"fmt"
	"strings"

	"rlekit/internal/source"
)

// Header is the mandatory pattern header: grid extent plus an opaque
// rule identifier. The rule string is captured, never interpreted.
type Header struct {
	X    int64
	Y    int64
	Rule string
	Span source.Span
}

// String renders the header back in its canonical textual form.
func (h Header) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "x = %d, y = %d", h.X, h.Y)
	if h.Rule != "" {
		fmt.Fprintf(&b, ", rule = %s", h.Rule)
	}
	return b.String()
}

// Entry is one key=value pair from a '#CXRLE' line.
type Entry struct {
	Key   string
	Value string
}

// MetadataLine is the ordered contents of one '#CXRLE' line.
type MetadataLine struct {
	Entries []Entry
	Span    source.Span
}

// ItemKind tags the content item union.
type ItemKind uint8

const (
	// ItemRun is a run of Count consecutive cells in State.
	ItemRun ItemKind = iota
	// ItemEndRow is Count consecutive '$' row terminators.
	ItemEndRow
)

func (k ItemKind) String() string {
	switch k {
	case ItemRun:
		return "run"
	case ItemEndRow:
		return "end_row"
	}
	return "unknown"
}

// ContentItem is one decoded unit of the cell body. An omitted count in
// the input decodes as Count == 1.
type ContentItem struct {
	Kind  ItemKind
	Count uint32
	State uint8 // meaningful only for ItemRun
	Span  source.Span
}

// Document is the complete parse result for one pattern file. It is
// built in a single pass and never mutated afterwards. Body items keep
// exact source order; consumers do row/column decoding and any bounds
// checks against Header.X/Y themselves.
type Document struct {
	Header     Header
	Metadata   []MetadataLine
	Body       []ContentItem
	Terminated bool // true when an explicit '!' marker was present
}

// Cells returns the total number of cells covered by run items,
// ignoring row terminators.
func (d *Document) Cells() uint64 {
	var n uint64
	for _, it := range d.Body {
		if it.Kind == ItemRun {
			n += uint64(it.Count)
		}
	}
	return n
}

// MetaValue returns the last value recorded for key across all
// metadata lines, preserving the convention that later lines win.
func (d *Document) MetaValue(key string) (string, bool) {
	val := ""
	found := false
	for _, line := range d.Metadata {
		for _, e := range line.Entries {
			if e.Key == key {
				val = e.Value
				found = true
			}
		}
	}
	return val, found
}

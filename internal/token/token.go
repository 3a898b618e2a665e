package token

import (
	"rlekit/internal/source"
)

// Token represents a single lexical token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsHeaderField reports whether the token belongs to the header line.
func (t Token) IsHeaderField() bool {
	switch t.Kind {
	case KwX, KwY, KwRule, Assign, Comma, IntLit, RuleTok:
		return true
	default:
		return false
	}
}

// IsContentItem reports whether the token starts or continues a cell-body
// content item.
func (t Token) IsContentItem() bool {
	switch t.Kind {
	case Count, StateSym, EndRow:
		return true
	default:
		return false
	}
}

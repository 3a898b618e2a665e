package token_test

import (
	"testing"

	"rlekit/internal/token"
)

func TestKindString(t *testing.T) {
	cases := map[token.Kind]string{
		token.Invalid:   "Invalid",
		token.EOF:       "EOF",
		token.KwX:       "KwX",
		token.KwY:       "KwY",
		token.KwRule:    "KwRule",
		token.Assign:    "Assign",
		token.Comma:     "Comma",
		token.IntLit:    "IntLit",
		token.RuleTok:   "RuleTok",
		token.Count:     "Count",
		token.StateSym:  "StateSym",
		token.EndRow:    "EndRow",
		token.EndFile:   "EndFile",
		token.CxrleLine: "CxrleLine",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestTokenClasses(t *testing.T) {
	header := []token.Kind{token.KwX, token.KwY, token.KwRule, token.Assign, token.Comma, token.IntLit, token.RuleTok}
	for _, k := range header {
		if !(token.Token{Kind: k}).IsHeaderField() {
			t.Errorf("%v should be a header field", k)
		}
		if (token.Token{Kind: k}).IsContentItem() {
			t.Errorf("%v should not be a content item", k)
		}
	}
	content := []token.Kind{token.Count, token.StateSym, token.EndRow}
	for _, k := range content {
		if !(token.Token{Kind: k}).IsContentItem() {
			t.Errorf("%v should be a content item", k)
		}
	}
	if (token.Token{Kind: token.EndFile}).IsContentItem() {
		t.Error("EndFile is a terminator, not a content item")
	}
}

func TestTriviaKindString(t *testing.T) {
	cases := map[token.TriviaKind]string{
		token.TriviaSpace:   "Space",
		token.TriviaNewline: "Newline",
		token.TriviaComment: "Comment",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("TriviaKind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

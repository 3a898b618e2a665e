package lexer

import (
	"fmt"

	"rlekit/internal/diag"
	"rlekit/internal/token"
)

// scanHeaderToken лексит один токен внутри строки заголовка.
func (lx *Lexer) scanHeaderToken() token.Token {
	if lx.ruleValue {
		lx.ruleValue = false
		if tok, ok := lx.scanRuleToken(); ok {
			return tok
		}
	}

	start := lx.cursor.Mark()
	b := lx.cursor.Peek()
	switch {
	case b == '=':
		lx.cursor.Bump()
		return lx.emit(token.Assign, start)
	case b == ',':
		lx.cursor.Bump()
		return lx.emit(token.Comma, start)
	case isDec(b) || b == '-' || b == '+':
		return lx.scanSignedInt()
	case isLower(b):
		return lx.scanHeaderKeyword()
	}

	lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnknownChar, sp, fmt.Sprintf("unrecognized character %q in header", b))
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// scanSignedInt consumes an optional sign and a digit run. The textual
// form is validated by the parser, so '+', '-0' and leading zeros all
// pass through here unchanged.
func (lx *Lexer) scanSignedInt() token.Token {
	start := lx.cursor.Mark()
	if b := lx.cursor.Peek(); b == '-' || b == '+' {
		lx.cursor.Bump()
	}
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return lx.emit(token.IntLit, start)
}

// scanHeaderKeyword лексит имя поля заголовка: x, y или rule.
func (lx *Lexer) scanHeaderKeyword() token.Token {
	start := lx.cursor.Mark()
	for isLower(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	word := lx.text(sp)
	switch word {
	case "x":
		return token.Token{Kind: token.KwX, Span: sp, Text: word}
	case "y":
		return token.Token{Kind: token.KwY, Span: sp, Text: word}
	case "rule":
		return token.Token{Kind: token.KwRule, Span: sp, Text: word}
	}
	lx.errLex(diag.LexUnknownChar, sp, fmt.Sprintf("unexpected word %q in header", word))
	return token.Token{Kind: token.Invalid, Span: sp, Text: word}
}

// scanRuleToken consumes a rule identifier: the maximal run of
// non-whitespace bytes excluding '='. Returns false when the run is
// empty so the caller can fall back to ordinary header lexing.
func (lx *Lexer) scanRuleToken() (token.Token, bool) {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isRuleTokenByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.Off == uint32(start) {
		return token.Token{}, false
	}
	return lx.emit(token.RuleTok, start), true
}

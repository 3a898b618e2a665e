package lexer

import (
	"fmt"

	"rlekit/internal/diag"
	"rlekit/internal/token"
)

// scanBodyToken лексит один токен тела паттерна: счётчик, символ
// состояния, '$' или '!'.
func (lx *Lexer) scanBodyToken() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Peek()
	switch {
	case isDec(b):
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.emit(token.Count, start)
	case b == '$':
		lx.cursor.Bump()
		return lx.emit(token.EndRow, start)
	case b == '!':
		lx.cursor.Bump()
		return lx.emit(token.EndFile, start)
	case b == '.' || b == 'b' || b == 'o':
		lx.cursor.Bump()
		return lx.emit(token.StateSym, start)
	case b >= 'A' && b <= 'X':
		lx.cursor.Bump()
		return lx.emit(token.StateSym, start)
	case b >= 'p' && b <= 'y':
		return lx.scanPairSym()
	case isUpper(b) || isLower(b):
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexBadStateSymbol, sp, fmt.Sprintf("invalid state symbol %q", lx.text(sp)))
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}

	lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnknownChar, sp, fmt.Sprintf("unrecognized character %q", b))
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// scanPairSym лексит двухбуквенный символ состояния: 'p'..'y' плюс
// заглавная буква. Для 'y' вторая буква ограничена 'A'..'O' (состояния
// 241..255); дальше 255 алфавит не идёт.
func (lx *Lexer) scanPairSym() token.Token {
	start := lx.cursor.Mark()
	b0, b1, ok := lx.cursor.Peek2()
	valid := ok && b1 >= 'A' && (b0 != 'y' && b1 <= 'X' || b0 == 'y' && b1 <= 'O')
	if valid {
		lx.cursor.Bump()
		lx.cursor.Bump()
		return lx.emit(token.StateSym, start)
	}

	// Забираем и вторую заглавную букву, если она есть: диагностика
	// тогда указывает на пару целиком.
	lx.cursor.Bump()
	if isUpper(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexBadStateSymbol, sp, fmt.Sprintf("invalid state symbol %q", lx.text(sp)))
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

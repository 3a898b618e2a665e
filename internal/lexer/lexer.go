package lexer

import (
	"rlekit/internal/source"
	"rlekit/internal/token"
)

// Lexer splits a pattern file into tokens with one token of lookahead.
//
// Plain '#' comment lines, blank lines, and spaces are collected as
// leading trivia; '#CXRLE' lines surface as tokens. The header line and
// the cell body use different scanners. The switch is driven by line
// shape ('x' optionally followed by blanks, then '='), so a header-shaped
// line anywhere in the input is lexed as header tokens and the parser
// decides whether it is the header or a duplicate.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // 1-элементный буфер для токена
	hold   []token.Trivia // накопленные leading trivia

	inHeader  bool       // внутри строки заголовка
	ruleValue bool       // следующий значимый токен — значение rule
	prev      token.Kind // последний выданный значимый токен
}

// New creates a lexer over the given file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next возвращает следующий значимый токен с уже собранным Leading.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.EmptySpan()}
	}

	var tok token.Token
	switch {
	case lx.atCxrle():
		tok = lx.scanCxrleLine()
	default:
		if !lx.inHeader && lx.atHeaderStart() {
			lx.inHeader = true
		}
		if lx.inHeader {
			tok = lx.scanHeaderToken()
		} else {
			tok = lx.scanBodyToken()
		}
	}

	// Значение rule лексится особым токеном сразу после 'rule ='.
	if tok.Kind == token.Assign && lx.prev == token.KwRule {
		lx.ruleValue = true
	}
	lx.prev = tok.Kind

	tok.Leading = lx.hold
	lx.hold = nil
	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// EmptySpan returns a zero-length span at the current position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}

func (lx *Lexer) emit(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}

// atHeaderStart reports whether the cursor sits on a header-shaped line:
// 'x' at line start, then optional blanks, then '='.
func (lx *Lexer) atHeaderStart() bool {
	if lx.cursor.Peek() != 'x' || !lx.cursor.AtLineStart() {
		return false
	}
	content := lx.file.Content
	i := lx.cursor.Off + 1
	for i < uint32(len(content)) && isBlank(content[i]) {
		i++
	}
	return i < uint32(len(content)) && content[i] == '='
}

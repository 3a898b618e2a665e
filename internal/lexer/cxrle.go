package lexer

import "rlekit/internal/token"

const cxrlePrefix = "#CXRLE"

// atCxrle reports whether the cursor sits on a '#CXRLE' line. The prefix
// must start a line and be followed by a blank, a newline, or EOF;
// anything else ('#CXRLEX' etc.) is an ordinary comment.
func (lx *Lexer) atCxrle() bool {
	if lx.cursor.Peek() != '#' || !lx.cursor.AtLineStart() {
		return false
	}
	content := lx.file.Content
	off := lx.cursor.Off
	end := off + uint32(len(cxrlePrefix))
	if end > uint32(len(content)) {
		return false
	}
	if string(content[off:end]) != cxrlePrefix {
		return false
	}
	if end == uint32(len(content)) {
		return true
	}
	nb := content[end]
	return isBlank(nb) || nb == '\n'
}

// scanCxrleLine consumes the whole '#CXRLE' line. Token.Text carries the
// raw remainder after the prefix; parsing the key=value entries is left
// to the parser.
func (lx *Lexer) scanCxrleLine() token.Token {
	start := lx.cursor.Mark()
	for i := 0; i < len(cxrlePrefix); i++ {
		lx.cursor.Bump()
	}
	body := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.CxrleLine,
		Span: sp,
		Text: lx.text(lx.cursor.SpanFrom(body)),
	}
}

package lexer

import "rlekit/internal/token"

// collectLeadingTrivia копит пробелы, переводы строк и строки-комментарии
// перед следующим значимым токеном.
//
// A newline ends the header line, so crossing one drops the lexer back
// into body mode. '#CXRLE' lines are significant and stop the collection.
func (lx *Lexer) collectLeadingTrivia() {
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if isBlank(b) {
			for isBlank(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaSpace, start)
			continue
		}

		if b == '\n' {
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.inHeader = false
			lx.ruleValue = false
			lx.pushTrivia(token.TriviaNewline, start)
			continue
		}

		if b == '#' && lx.cursor.AtLineStart() && !lx.atCxrle() {
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaComment, start)
			continue
		}

		break
	}
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{Kind: kind, Span: sp, Text: lx.text(sp)})
}

// Package parser assembles a token stream into an rle.Document.
//
// Парсер однопроходный и строгий: первая структурная ошибка
// останавливает разбор, потому что у грамматики нет точек
// ресинхронизации. Лексические ошибки попадают в тот же Bag.
package parser

import (
	"fmt"

	"rlekit/internal/diag"
	"rlekit/internal/lexer"
	"rlekit/internal/rle"
	"rlekit/internal/source"
	"rlekit/internal/token"
)

// DefaultMaxErrors caps the diagnostics bag when Options does not.
const DefaultMaxErrors = 64

// Options configures one parse.
type Options struct {
	// MaxErrors ограничивает размер Bag; <= 0 означает DefaultMaxErrors.
	MaxErrors int
}

// Result carries the document and every diagnostic the lexer and
// parser produced. Doc is never nil; check Bag.HasErrors() before
// trusting its contents.
type Result struct {
	Doc *rle.Document
	Bag *diag.Bag
}

type parser struct {
	lx  *lexer.Lexer
	rep diag.Reporter

	tok      token.Token // текущий значимый токен
	prevSpan source.Span // span последнего принятого токена
	failed   bool
}

// ParseFile lexes and parses one pattern file.
func ParseFile(file *source.File, opts Options) Result {
	maxErrs := opts.MaxErrors
	if maxErrs <= 0 {
		maxErrs = DefaultMaxErrors
	}
	bag := diag.NewBag(maxErrs)
	rep := &diag.BagReporter{Bag: bag}

	p := &parser{
		lx:  lexer.New(file, lexer.Options{Reporter: rep}),
		rep: rep,
	}
	p.advance()
	return Result{Doc: p.parseDocument(), Bag: bag}
}

// advance принимает текущий токен и читает следующий.
// Invalid-токен уже отрепорчен лексером, просто останавливаемся.
func (p *parser) advance() {
	p.prevSpan = p.tok.Span
	p.tok = p.lx.Next()
	if p.tok.Kind == token.Invalid {
		p.failed = true
	}
}

// errAt reports the first structural error and puts the parser in the
// failed state. Later calls are dropped so one mistake yields one
// diagnostic.
func (p *parser) errAt(code diag.Code, sp source.Span, msg string) {
	if p.failed {
		return
	}
	diag.ReportError(p.rep, code, sp, msg).Emit()
	p.failed = true
}

// expect consumes a token of the given kind or fails the parse.
func (p *parser) expect(kind token.Kind, code diag.Code, what string) bool {
	if p.failed {
		return false
	}
	if p.tok.Kind != kind {
		p.errAt(code, p.tok.Span, fmt.Sprintf("expected %s, found %s", what, describe(p.tok)))
		return false
	}
	p.advance()
	return !p.failed
}

func (p *parser) parseDocument() *rle.Document {
	doc := &rle.Document{}

	// CXRLE-строки могут идти и до заголовка.
	for p.tok.Kind == token.CxrleLine && !p.failed {
		p.parseCxrleLine(doc)
	}
	if p.failed {
		return doc
	}

	p.parseHeader(doc)

	for !p.failed {
		switch p.tok.Kind {
		case token.CxrleLine:
			p.parseCxrleLine(doc)
		case token.Count, token.StateSym, token.EndRow:
			p.parseContentItem(doc)
		case token.EndFile:
			doc.Terminated = true
			p.advance()
			p.parseTrailing(doc)
			return doc
		case token.EOF:
			return doc
		case token.KwX:
			p.errAt(diag.SynDuplicateHeader, p.tok.Span, "duplicate pattern header")
		default:
			p.errAt(diag.SynUnexpectedToken, p.tok.Span,
				fmt.Sprintf("unexpected %s in pattern body", describe(p.tok)))
		}
	}
	return doc
}

// parseTrailing проверяет, что после '!' остались только заметки.
// Комментарии и пустые строки ушли в trivia; CXRLE-строки значимы
// и продолжают пополнять метаданные документа.
func (p *parser) parseTrailing(doc *rle.Document) {
	for p.tok.Kind == token.CxrleLine && !p.failed {
		p.parseCxrleLine(doc)
	}
	if p.failed || p.tok.Kind == token.EOF {
		return
	}
	p.errAt(diag.SynTrailingInput, p.tok.Span, "content after '!'")
}

func describe(t token.Token) string {
	switch t.Kind {
	case token.EOF:
		return "end of input"
	case token.EndFile:
		return "'!'"
	case token.EndRow:
		return "'$'"
	case token.CxrleLine:
		return "'#CXRLE' line"
	}
	if t.Text != "" {
		return fmt.Sprintf("%q", t.Text)
	}
	return t.Kind.String()
}

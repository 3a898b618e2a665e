package parser

import (
	"fmt"
	"strconv"

	"rlekit/internal/diag"
	"rlekit/internal/rle"
	"rlekit/internal/token"
)

// parseContentItem разбирает один элемент тела: необязательный счётчик
// и следом символ состояния либо '$'.
func (p *parser) parseContentItem(doc *rle.Document) {
	start := p.tok.Span
	count := uint32(1)

	if p.tok.Kind == token.Count {
		v, ok := parseRunCount(p.tok.Text)
		if !ok {
			p.errAt(diag.SynBadCount, p.tok.Span,
				fmt.Sprintf("invalid run count %q, want a positive integer without leading zeros", p.tok.Text))
			return
		}
		count = v
		p.advance()
		if p.failed {
			return
		}
	}

	switch p.tok.Kind {
	case token.EndRow:
		doc.Body = append(doc.Body, rle.ContentItem{
			Kind:  rle.ItemEndRow,
			Count: count,
			Span:  start.Cover(p.tok.Span),
		})
		p.advance()
	case token.StateSym:
		state, ok := rle.DecodeSymbol(p.tok.Text)
		if !ok {
			// Лексер пропускает только символы алфавита, сюда
			// попадаем лишь при рассинхроне лексера и декодера.
			p.errAt(diag.SynUnexpectedToken, p.tok.Span,
				fmt.Sprintf("undecodable state symbol %q", p.tok.Text))
			return
		}
		doc.Body = append(doc.Body, rle.ContentItem{
			Kind:  rle.ItemRun,
			Count: count,
			State: state,
			Span:  start.Cover(p.tok.Span),
		})
		p.advance()
	default:
		p.errAt(diag.SynBadCount, p.tok.Span,
			fmt.Sprintf("run count must be followed by a state symbol or '$', found %s", describe(p.tok)))
	}
}

// parseRunCount принимает только положительные числа без ведущих нулей.
func parseRunCount(s string) (uint32, bool) {
	if s == "" || s[0] == '0' {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"rlekit/internal/diag"
	"rlekit/internal/rle"
	"rlekit/internal/token"
)

// parseHeader разбирает строку 'x = <int>, y = <int>[, rule = <token>]'.
// Поле rule опционально; x и y обязательны и идут строго в этом порядке.
func (p *parser) parseHeader(doc *rle.Document) {
	if p.failed {
		return
	}
	if p.tok.Kind != token.KwX {
		p.errAt(diag.SynMissingHeader, p.tok.Span,
			fmt.Sprintf("pattern header must start with 'x =', found %s", describe(p.tok)))
		return
	}
	start := p.tok.Span
	p.advance()

	if !p.expect(token.Assign, diag.SynBadHeaderField, "'=' after 'x'") {
		return
	}
	x, ok := p.parseHeaderInt("x")
	if !ok {
		return
	}

	if !p.expect(token.Comma, diag.SynBadHeaderField, "',' after the x value") {
		return
	}
	if !p.expect(token.KwY, diag.SynBadHeaderField, "'y' field") {
		return
	}
	if !p.expect(token.Assign, diag.SynBadHeaderField, "'=' after 'y'") {
		return
	}
	y, ok := p.parseHeaderInt("y")
	if !ok {
		return
	}

	end := p.prevSpan
	rule := ""
	if p.tok.Kind == token.Comma {
		p.advance()
		if !p.expect(token.KwRule, diag.SynBadHeaderField, "'rule' field after ','") {
			return
		}
		if !p.expect(token.Assign, diag.SynBadHeaderField, "'=' after 'rule'") {
			return
		}
		if p.tok.Kind != token.RuleTok {
			p.errAt(diag.SynBadHeaderField, p.tok.Span,
				fmt.Sprintf("expected rule identifier, found %s", describe(p.tok)))
			return
		}
		rule = p.tok.Text
		end = p.tok.Span
		p.advance()
	}

	doc.Header = rle.Header{X: x, Y: y, Rule: rule, Span: start.Cover(end)}
}

func (p *parser) parseHeaderInt(field string) (int64, bool) {
	if p.failed {
		return 0, false
	}
	if p.tok.Kind != token.IntLit {
		p.errAt(diag.SynBadHeaderField, p.tok.Span,
			fmt.Sprintf("expected integer value for %q, found %s", field, describe(p.tok)))
		return 0, false
	}
	v, err := parseHeaderInt64(p.tok.Text)
	if err != nil {
		p.errAt(diag.SynBadHeaderField, p.tok.Span,
			fmt.Sprintf("invalid value %q for %q: %v", p.tok.Text, field, err))
		return 0, false
	}
	p.advance()
	return v, !p.failed
}

// parseHeaderInt64 validates the exact textual form: '0' or an optional
// '-' followed by digits without a leading zero. '+', '-0' and '007'
// are all rejected even though strconv would accept them.
func parseHeaderInt64(s string) (int64, error) {
	digits := s
	if strings.HasPrefix(s, "+") {
		return 0, errors.New("explicit '+' sign is not allowed")
	}
	neg := strings.HasPrefix(s, "-")
	if neg {
		digits = s[1:]
	}
	switch {
	case digits == "":
		return 0, errors.New("missing digits")
	case len(digits) > 1 && digits[0] == '0':
		return 0, errors.New("leading zeros are not allowed")
	case neg && digits == "0":
		return 0, errors.New("negative zero is not allowed")
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.New("value out of range")
	}
	return v, nil
}

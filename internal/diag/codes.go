package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo           Code = 1000
	LexUnknownChar    Code = 1001
	LexBadStateSymbol Code = 1002

	// Структурные
	SynInfo            Code = 2000
	SynMissingHeader   Code = 2001
	SynDuplicateHeader Code = 2002
	SynBadHeaderField  Code = 2003
	SynBadCount        Code = 2004
	SynBadCxrleEntry   Code = 2005
	SynTrailingInput   Code = 2006
	SynUnexpectedToken Code = 2007

	// Ввод-вывод (драйвер)
	IOInfo     Code = 4000
	IOReadFail Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:        "unknown error",
	LexInfo:            "lexer note",
	LexUnknownChar:     "unrecognized character",
	LexBadStateSymbol:  "invalid cell state symbol",
	SynInfo:            "parser note",
	SynMissingHeader:   "missing pattern header",
	SynDuplicateHeader: "duplicate pattern header",
	SynBadHeaderField:  "malformed header field",
	SynBadCount:        "malformed run count",
	SynBadCxrleEntry:   "malformed CXRLE entry",
	SynTrailingInput:   "trailing input after pattern",
	SynUnexpectedToken: "unexpected token",
	IOInfo:             "driver note",
	IOReadFail:         "failed to read input",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

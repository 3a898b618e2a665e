package token

// Kind represents the category of a lexical token in a pattern file.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the input.
	EOF

	// KwX is the 'x' keyword opening the header line.
	KwX // x
	// KwY is the 'y' keyword of the header line.
	KwY // y
	// KwRule is the 'rule' keyword of the header line.
	KwRule // rule

	// Assign is the '=' separator.
	Assign // =
	// Comma is the ',' separator.
	Comma // ,

	// IntLit is a signed integer value in the header line.
	IntLit
	// RuleTok is the rule identifier following 'rule ='.
	RuleTok

	// Count is a run count in the cell body.
	Count
	// StateSym is a one- or two-letter cell state symbol.
	StateSym
	// EndRow is the '$' row terminator.
	EndRow // $
	// EndFile is the '!' pattern terminator.
	EndFile // !

	// CxrleLine is a structured '#CXRLE' metadata line.
	CxrleLine
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case KwX:
		return "KwX"
	case KwY:
		return "KwY"
	case KwRule:
		return "KwRule"
	case Assign:
		return "Assign"
	case Comma:
		return "Comma"
	case IntLit:
		return "IntLit"
	case RuleTok:
		return "RuleTok"
	case Count:
		return "Count"
	case StateSym:
		return "StateSym"
	case EndRow:
		return "EndRow"
	case EndFile:
		return "EndFile"
	case CxrleLine:
		return "CxrleLine"
	}
	return "Unknown"
}

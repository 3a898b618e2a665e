package lexer

func isBlank(b byte) bool {
	return b == ' ' || b == '\t'
}

func isDec(b byte) bool {
	return b >= '0' && b <= '9'
}

func isUpper(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func isLower(b byte) bool {
	return b >= 'a' && b <= 'z'
}

// isRuleTokenByte reports whether b may appear inside a rule identifier
// or CXRLE key/value: any non-whitespace byte except '='.
func isRuleTokenByte(b byte) bool {
	return b != '=' && b != ' ' && b != '\t' && b != '\n' && b != '\r'
}

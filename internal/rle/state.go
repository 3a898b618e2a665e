package rle

// The state alphabet covers all 256 cell states:
//
//	b .          -> 0      o -> 1
//	A..X         -> 1..24
//	pA..xX       -> 25..240  (25 + (c0-'p')*24 + (c1-'A'))
//	yA..yO       -> 241..255 (241 + (c1-'A'))
//
// One-letter symbols never prefix a two-letter symbol (pairs start at
// 'p'..'y'), so a greedy two-letter match (done by the lexer) is
// unambiguous.

// DecodeSymbol maps a complete state symbol to its integer state.
// It is pure and total over the alphabet; anything else returns false.
func DecodeSymbol(s string) (uint8, bool) {
	switch len(s) {
	case 1:
		c := s[0]
		switch {
		case c == 'b' || c == '.':
			return 0, true
		case c == 'o':
			return 1, true
		case c >= 'A' && c <= 'X':
			return c - 'A' + 1, true
		}
	case 2:
		c0, c1 := s[0], s[1]
		switch {
		case c0 >= 'p' && c0 <= 'x' && c1 >= 'A' && c1 <= 'X':
			return 25 + (c0-'p')*24 + (c1 - 'A'), true
		case c0 == 'y' && c1 >= 'A' && c1 <= 'O':
			return 241 + (c1 - 'A'), true
		}
	}
	return 0, false
}

// AppendSymbol appends the canonical symbol for state to dst:
// '.' for 0, 'A'..'X' for 1..24, letter pairs above that.
func AppendSymbol(dst []byte, state uint8) []byte {
	if state == 0 {
		return append(dst, '.')
	}
	if state >= 25 {
		dst = append(dst, 'p'+(state-1)/24-1)
	}
	return append(dst, 'A'+(state-1)%24)
}

// EncodeState renders a state as its canonical symbol. The boolean
// aliases 'b' and 'o' are accepted on decode only.
func EncodeState(state uint8) string {
	return string(AppendSymbol(nil, state))
}

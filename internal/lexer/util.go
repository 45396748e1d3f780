package lexer

import "unicode"

func isDec(r rune) bool { return r >= '0' && r <= '9' }
func isHex(r rune) bool {
	return isDec(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
func isOct(r rune) bool { return r >= '0' && r <= '7' }
func isBin(r rune) bool { return r == '0' || r == '1' }

func isIdentStart(r rune) bool {
	if r == '$' || r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
		return true
	}
	return r >= 0x80 && (unicode.IsLetter(r) || unicode.Is(unicode.Nl, r) || unicode.Is(unicode.Other_ID_Start, r))
}

func isIdentContinue(r rune) bool {
	if isIdentStart(r) || isDec(r) {
		return true
	}
	if r == 0x200C || r == 0x200D {
		return true
	}
	return r >= 0x80 && (unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc) || unicode.Is(unicode.Other_ID_Continue, r))
}

func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == 0x2028 || r == 0x2029
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\v', '\f', 0xA0, 0xFEFF:
		return true
	}
	return r >= 0x80 && unicode.Is(unicode.Zs, r)
}

package lexer

import "lint381/internal/token"

// scanNumber reads [0-9]+(\.[0-9]*)?; no exponents, no suffixes.
func scanNumber(rest string) (int, token.Kind, ErrorKind) {
	i := 0
	for i < len(rest) && isDec(rest[i]) {
		i++
	}
	if i == 0 {
		return 0, 0, 0
	}
	if i < len(rest) && rest[i] == '.' {
		i++
		for i < len(rest) && isDec(rest[i]) {
			i++
		}
	}
	return i, token.Number, 0
}

// scanKeyword proposes the whole word only if it is a keyword, so that
// "integer" never splits into "int" + "eger".
func scanKeyword(rest string) (int, token.Kind, ErrorKind) {
	n := wordLen(rest)
	if n == 0 || !token.IsKeyword(rest[:n]) {
		return 0, 0, 0
	}
	return n, token.Keyword, 0
}

// scanIdentifier reads #?[_A-Za-z][_A-Za-z0-9]*, so #define is one token.
func scanIdentifier(rest string) (int, token.Kind, ErrorKind) {
	hash := 0
	if rest != "" && rest[0] == '#' {
		hash = 1
	}
	n := wordLen(rest[hash:])
	if n == 0 {
		return 0, 0, 0
	}
	return hash + n, token.Identifier, 0
}

func wordLen(s string) int {
	if s == "" || !isIdentStartByte(s[0]) {
		return 0
	}
	i := 1
	for i < len(s) && isIdentContinueByte(s[i]) {
		i++
	}
	return i
}

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

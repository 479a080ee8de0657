package lexer

import (
	"strings"

	"lint381/internal/token"
)

// scanLiteral reads "..." or '...'. A backslash escapes whatever follows it,
// including a newline or the quote; raw newlines are allowed inside.
func scanLiteral(rest string) (int, token.Kind, ErrorKind) {
	if rest == "" || (rest[0] != '"' && rest[0] != '\'') {
		return 0, 0, 0
	}
	quote := rest[0]
	for i := 1; i < len(rest); i++ {
		switch rest[i] {
		case '\\':
			i++ // следующий байт экранирован; продолжение руны не бывает ни '\\', ни кавычкой
		case quote:
			return i + 1, token.String, 0
		}
	}
	return 0, 0, UnterminatedLiteral
}

// scanBlockComment reads /* ... */ up to the first terminator after the opener.
func scanBlockComment(rest string) (int, token.Kind, ErrorKind) {
	if !strings.HasPrefix(rest, "/*") {
		return 0, 0, 0
	}
	idx := strings.Index(rest[2:], "*/")
	if idx < 0 {
		return 0, 0, UnterminatedComment
	}
	return 2 + idx + 2, token.Comment, 0
}

// scanLineComment reads // up to, not including, the newline.
func scanLineComment(rest string) (int, token.Kind, ErrorKind) {
	if !strings.HasPrefix(rest, "//") {
		return 0, 0, 0
	}
	if idx := strings.IndexByte(rest, '\n'); idx >= 0 {
		return idx, token.Comment, 0
	}
	return len(rest), token.Comment, 0
}

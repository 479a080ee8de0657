package lexer

import (
	"strings"

	"lint381/internal/token"
)

type operator struct {
	text string
	kind token.Kind
}

// Многосимвольные операторы; длинные раньше коротких с тем же префиксом.
var multiOperators = []operator{
	{"<<=", token.BinaryOperator},
	{">>=", token.BinaryOperator},
	{"++", token.UnaryOperator},
	{"--", token.UnaryOperator},
	{"==", token.BinaryOperator},
	{"!=", token.BinaryOperator},
	{"<=", token.BinaryOperator},
	{">=", token.BinaryOperator},
	{"+=", token.BinaryOperator},
	{"-=", token.BinaryOperator},
	{"*=", token.BinaryOperator},
	{"/=", token.BinaryOperator},
	{"%=", token.BinaryOperator},
	{"&=", token.BinaryOperator},
	{"|=", token.BinaryOperator},
	{"^=", token.BinaryOperator},
	{"&&", token.BinaryOperator},
	{"||", token.BinaryOperator},
	{"<<", token.BinaryOperator},
	{">>", token.BinaryOperator},
	{"::", token.Grouping},
}

var singleOperators = map[byte]token.Kind{
	'!': token.UnaryOperator,
	'~': token.UnaryOperator,

	'+': token.BinaryOperator,
	'-': token.BinaryOperator,
	'*': token.BinaryOperator,
	'/': token.BinaryOperator,
	'%': token.BinaryOperator,
	'^': token.BinaryOperator,
	'&': token.BinaryOperator,
	'|': token.BinaryOperator,
	'<': token.BinaryOperator,
	'>': token.BinaryOperator,
	'=': token.BinaryOperator,

	'(': token.Grouping,
	')': token.Grouping,
	'[': token.Grouping,
	']': token.Grouping,
	'{': token.Grouping,
	'}': token.Grouping,
	',': token.Grouping,
	';': token.Grouping,
	'.': token.Grouping,
	'?': token.Grouping,
	':': token.Grouping,
}

func scanMultiOperator(rest string) (int, token.Kind, ErrorKind) {
	for _, op := range multiOperators {
		if strings.HasPrefix(rest, op.text) {
			return len(op.text), op.kind, 0
		}
	}
	return 0, 0, 0
}

func scanSingleOperator(rest string) (int, token.Kind, ErrorKind) {
	if rest == "" {
		return 0, 0, 0
	}
	if kind, ok := singleOperators[rest[0]]; ok {
		return 1, kind, 0
	}
	return 0, 0, 0
}

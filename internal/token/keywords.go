package token

// C89 keywords. Preprocessor words (#define, #include) are identifiers.
var keywords = map[string]struct{}{
	"auto":     {},
	"break":    {},
	"case":     {},
	"char":     {},
	"const":    {},
	"continue": {},
	"default":  {},
	"do":       {},
	"double":   {},
	"else":     {},
	"enum":     {},
	"extern":   {},
	"float":    {},
	"for":      {},
	"goto":     {},
	"if":       {},
	"int":      {},
	"long":     {},
	"register": {},
	"return":   {},
	"short":    {},
	"signed":   {},
	"sizeof":   {},
	"static":   {},
	"struct":   {},
	"switch":   {},
	"typedef":  {},
	"union":    {},
	"unsigned": {},
	"void":     {},
	"volatile": {},
	"while":    {},
}

// IsKeyword reports whether word is exactly one of the C keywords.
func IsKeyword(word string) bool {
	_, ok := keywords[word]
	return ok
}

// KeywordCount is the size of the keyword set.
func KeywordCount() int { return len(keywords) }

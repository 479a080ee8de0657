package rules

import (
	"strings"

	"lint381/internal/match"
	"lint381/internal/token"
)

// Include is one #include directive. Tokens are either
// ["#include", "\"file.h\""] or ["#include", "<", "std", ".", "h", ">"].
type Include struct {
	Tokens []token.Token
}

// IsSystemInclude reports whether the include uses angle brackets.
func (inc Include) IsSystemInclude() bool {
	return strings.HasPrefix(inc.Tokens[1].Value, "<")
}

// IncludeFile returns the included path as written, without delimiters.
func (inc Include) IncludeFile() string {
	if inc.IsSystemInclude() {
		var b strings.Builder
		for _, t := range inc.Tokens[2 : len(inc.Tokens)-1] {
			b.WriteString(t.Value)
		}
		return b.String()
	}
	return strings.Trim(inc.Tokens[1].Value, `"`)
}

var angleInclude = match.MustNew(match.Equals("<"), match.WithEnd(match.Equals(">")))

// FindIncludes returns the #include directives in source order. Directives
// that are neither followed by a string nor closed by '>' are skipped.
func FindIncludes(tokens []token.Token) []Include {
	var out []Include
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i].Value != "#include" {
			continue
		}
		if tokens[i+1].Kind == token.String {
			out = append(out, Include{Tokens: tokens[i : i+2 : i+2]})
			continue
		}
		if tokens[i+1].Value != "<" {
			continue
		}
		window, ok := angleInclude.First(tokens[i+1:])
		if !ok || &window[0] != &tokens[i+1] {
			continue // "<" без пары или "< <" не директива
		}
		n := 1 + len(window)
		out = append(out, Include{Tokens: tokens[i : i+n : i+n]})
	}
	return out
}

package rules

import (
	"fmt"
	"path"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"lint381/internal/diag"
	"lint381/internal/lint"
	"lint381/internal/match"
	"lint381/internal/token"
)

var titleCase = cases.Title(language.Und, cases.NoLower)

// DefineUnderscore flags macros whose names start with an underscore;
// those names are reserved for the implementation.
var DefineUnderscore = lint.PerMatch(
	lint.Meta{
		ID:        "C001",
		Name:      "define-underscore",
		Summary:   "Macro names must not start with an underscore.",
		Languages: lint.AllLanguages,
	},
	match.MustNew(match.ByValue(`#define$`), match.WithLookahead(1)),
	func(_ *lint.SourceCode, window []token.Token) (diag.Diagnostic, bool) {
		macro := window[1].Value
		if !strings.HasPrefix(macro, "_") {
			return diag.Diagnostic{}, false
		}
		return diag.Newf(window, "Macro '%s' should not start with an underscore", macro).
			WithHint(strings.TrimLeft(macro, "_")), true
	},
)

// StructCapitalized flags struct names that start with a lowercase letter.
var StructCapitalized = lint.PerMatch(
	lint.Meta{
		ID:        "C002",
		Name:      "struct-capitalized",
		Summary:   "Struct names must be capitalized.",
		Languages: lint.AllLanguages,
	},
	match.MustNew(match.ByValue(`struct$`), match.WithEnd(match.ByValue(`({|;)$`))),
	func(_ *lint.SourceCode, window []token.Token) (diag.Diagnostic, bool) {
		if len(window) < 2 || window[1].Kind != token.Identifier {
			return diag.Diagnostic{}, false // анонимная структура
		}
		name := window[1].Value
		first, _ := utf8.DecodeRuneInString(name)
		if !unicode.IsLower(first) {
			return diag.Diagnostic{}, false
		}
		return diag.Newf(window, "Struct name '%s' should be capitalized", name).
			WithHint(titleCase.String(name)), true
	},
)

var sourceExts = map[string]struct{}{".c": {}, ".cc": {}, ".cpp": {}, ".cxx": {}}

// IncludeSourceFile flags quote includes of implementation files.
var IncludeSourceFile = lint.NewRule(
	lint.Meta{
		ID:        "C003",
		Name:      "include-source-file",
		Summary:   "Only header files may be #included.",
		Languages: lint.AllLanguages,
	},
	func(src *lint.SourceCode) []diag.Diagnostic {
		var out []diag.Diagnostic
		for _, inc := range FindIncludes(src.Tokens) {
			if inc.IsSystemInclude() {
				continue
			}
			file := inc.IncludeFile()
			if _, ok := sourceExts[strings.ToLower(path.Ext(file))]; !ok {
				continue
			}
			out = append(out, diag.New(fmt.Sprintf("Do not #include source file '%s'", file), inc.Tokens))
		}
		return out
	},
)

// CRules are the checks for C, in evaluation order.
func CRules() []lint.Rule {
	return []lint.Rule{DefineUnderscore, StructCapitalized, IncludeSourceFile}
}

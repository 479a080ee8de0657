package rules

import (
	"fmt"
	"strings"

	"lint381/internal/diag"
	"lint381/internal/lint"
	"lint381/internal/match"
	"lint381/internal/token"
)

// TripleAsteriskComment flags leftover instruction comments (/*** ... */).
var TripleAsteriskComment = lint.PerMatch(
	lint.Meta{
		ID:        "CPP001",
		Name:      "triple-asterisk-comment",
		Summary:   "Instruction comments containing *** must be removed.",
		Languages: lint.CPP,
	},
	match.MustNew(match.ByKind(token.Comment)),
	func(_ *lint.SourceCode, window []token.Token) (diag.Diagnostic, bool) {
		if !strings.Contains(window[0].Value, "***") {
			return diag.Diagnostic{}, false
		}
		return diag.New("Remove triple-asterisk comments", window), true
	},
)

// UsingNamespaceInHeader flags "using namespace X" in headers, where it leaks
// into every includer.
var UsingNamespaceInHeader = lint.PerMatch(
	lint.Meta{
		ID:        "CPP002",
		Name:      "using-namespace-header",
		Summary:   "Header files must not contain using-directives.",
		Languages: lint.CPP,
	},
	match.MustNew(match.Equals("using"), match.WithEnd(match.ByKind(token.Identifier)), match.WithLength(3)),
	func(src *lint.SourceCode, window []token.Token) (diag.Diagnostic, bool) {
		if !src.IsHeaderFile() || window[1].Value != "namespace" {
			return diag.Diagnostic{}, false
		}
		return diag.New(fmt.Sprintf("Header files should not contain 'using namespace %s'", window[2].Value), window), true
	},
)

// NullMacro flags NULL in C++ code.
var NullMacro = lint.PerMatch(
	lint.Meta{
		ID:        "CPP003",
		Name:      "null-macro",
		Summary:   "Use nullptr instead of NULL.",
		Languages: lint.CPP,
	},
	match.MustNew(match.AllOf(match.ByKind(token.Identifier), match.Equals("NULL"))),
	func(_ *lint.SourceCode, window []token.Token) (diag.Diagnostic, bool) {
		return diag.New("Use nullptr instead of NULL", window).WithHint("nullptr"), true
	},
)

// CPPRules are the checks for C++: the C rules first, then the C++ ones.
func CPPRules() []lint.Rule {
	return append(CRules(), TripleAsteriskComment, UsingNamespaceInHeader, NullMacro)
}

package lint

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Language is a set of source languages a rule applies to.
type Language uint8

const (
	C Language = 1 << iota
	CPP

	AllLanguages = C | CPP
)

// Has reports whether l includes every language in other.
func (l Language) Has(other Language) bool { return other != 0 && l&other == other }

func (l Language) String() string {
	switch l {
	case C:
		return "c"
	case CPP:
		return "cpp"
	case AllLanguages:
		return "c,cpp"
	case 0:
		return "none"
	}
	return fmt.Sprintf("Language(%d)", uint8(l))
}

// ParseLanguage accepts c, cpp and c++.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c":
		return C, nil
	case "cpp", "c++", "cxx":
		return CPP, nil
	}
	return 0, fmt.Errorf("unknown language %q (want c or cpp)", s)
}

var languageByExt = map[string]Language{
	".c":   C,
	".h":   C,
	".cc":  CPP,
	".cpp": CPP,
	".cxx": CPP,
	".hh":  CPP,
	".hpp": CPP,
	".hxx": CPP,
}

// DetectLanguage guesses the language from a file extension. ".h" counts as C.
func DetectLanguage(path string) (Language, bool) {
	lang, ok := languageByExt[strings.ToLower(filepath.Ext(path))]
	return lang, ok
}

// SourceExtensions lists every extension DetectLanguage knows.
func SourceExtensions() []string {
	return []string{".c", ".h", ".cc", ".cpp", ".cxx", ".hh", ".hpp", ".hxx"}
}

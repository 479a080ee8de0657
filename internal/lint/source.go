package lint

import (
	"path/filepath"
	"strings"

	"lint381/internal/token"
)

// SourceCode is a token sequence and the name it came from.
type SourceCode struct {
	Filename string
	Tokens   []token.Token
}

var headerExts = map[string]struct{}{
	".h":   {},
	".hh":  {},
	".hpp": {},
	".hxx": {},
}

// IsHeaderFile reports whether Filename names a header.
func (s *SourceCode) IsHeaderFile() bool {
	_, ok := headerExts[strings.ToLower(filepath.Ext(s.Filename))]
	return ok
}

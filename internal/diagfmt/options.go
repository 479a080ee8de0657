package diagfmt

import (
	"errors"
	"fmt"
	"strings"

	"lint381/internal/diag"
	"lint381/internal/lexer"
	"lint381/internal/lint"
	"lint381/internal/source"
)

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto keeps short or relative paths and shortens long absolute ones.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

func (m PathMode) String() string {
	switch m {
	case PathModeAbsolute:
		return "absolute"
	case PathModeRelative:
		return "relative"
	case PathModeBasename:
		return "basename"
	default:
		return "auto"
	}
}

// ParsePathMode accepts the names printed by String.
func ParsePathMode(s string) (PathMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return PathModeAuto, nil
	case "absolute", "abs":
		return PathModeAbsolute, nil
	case "relative", "rel":
		return PathModeRelative, nil
	case "basename", "base":
		return PathModeBasename, nil
	}
	return PathModeAuto, fmt.Errorf("unknown path mode %q", s)
}

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	Context   int8 // строк исходника перед строкой диагностики
	PathMode  PathMode
	BaseDir   string
	ShowHints bool
	Summary   bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	PathMode    PathMode
	BaseDir     string
	Max         int // обрезка вывода, не Bag
	IncludeText bool
	Compact     bool
}

// SarifRunMeta provides metadata for SARIF output.
type SarifRunMeta struct {
	ToolName       string
	ToolVersion    string
	InformationURI string
	InvocationArgs []string
	Rules          []lint.Meta
	PathMode       PathMode
	BaseDir        string
}

// FileReport is one linted file as the formatters see it. File is nil when
// the file could not be read; Err is set when reading or tokenizing failed.
type FileReport struct {
	Path        string
	File        *source.File
	Diagnostics []diag.Diagnostic
	Dropped     int
	Err         error
}

func displayPath(r FileReport, mode PathMode, baseDir string) string {
	f := r.File
	if f == nil {
		f = &source.File{Path: r.Path}
	}
	return f.FormatPath(mode.String(), baseDir)
}

// failurePosition digs the tokenizer position out of a wrapped error.
func failurePosition(err error) (source.Position, string, bool) {
	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		return lexErr.Pos, lexErr.Msg, true
	}
	var tabErr *lexer.TabError
	if errors.As(err, &tabErr) {
		return tabErr.Pos, lexer.ErrTabCharacter.Error(), true
	}
	return source.Position{}, err.Error(), false
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

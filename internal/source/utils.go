package source

import (
	"bytes"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"fortio.org/safecast"
)

// DefaultTabWidth is the tab stop used when nothing else is configured.
const DefaultTabWidth = 8

// normalizeCRLF заменяет все \r\n на \n, не трогая одиночные \r.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !slices.Contains(content, '\r') {
		return content, false
	}

	out := make([]byte, 0, len(content))
	changed := false
	for i := 0; i < len(content); i++ {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			continue
		}
		if content[i] == '\n' && i > 0 && content[i-1] == '\r' {
			changed = true
		}
		out = append(out, content[i])
	}
	return out, changed
}

func removeBOM(content []byte) ([]byte, bool) {
	if bytes.HasPrefix(content, []byte{0xEF, 0xBB, 0xBF}) {
		return content[3:], true
	}
	return content, false
}

// expandTabs replaces each tab with spaces up to the next tab stop.
// Columns are counted in runes, matching token positions.
func expandTabs(content []byte, width int) ([]byte, bool) {
	if !slices.Contains(content, '\t') {
		return content, false
	}
	var out bytes.Buffer
	out.Grow(len(content) + width)
	col := 0
	for len(content) > 0 {
		r, size := utf8.DecodeRune(content)
		content = content[size:]
		switch r {
		case '\t':
			pad := width - col%width
			out.WriteString(strings.Repeat(" ", pad))
			col += pad
		case '\n':
			out.WriteRune(r)
			col = 0
		default:
			out.WriteRune(r)
			col++
		}
	}
	return out.Bytes(), true
}

// ExpandTabs is the string form of the tab expansion done by FileSet.Load.
func ExpandTabs(text string, width int) string {
	if width <= 0 {
		return text
	}
	out, _ := expandTabs([]byte(text), width)
	return string(out)
}

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, bytes.Count(content, []byte{'\n'}))
	for i, b := range content {
		if b == '\n' {
			off, err := safecast.Conv[uint32](i)
			if err != nil {
				panic(err)
			}
			out = append(out, off)
		}
	}
	return out
}

// RelativePath returns path relative to baseDir. Paths outside baseDir stay absolute.
func RelativePath(path, baseDir string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(absBase, absPath)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return normalizePath(absPath), nil
	}
	return normalizePath(rel), nil
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}

package diag

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// FormatShort renders one line per diagnostic: "severity RULE path:line:col message".
// Lines are sorted and joined by '\n' with no trailing newline.
func FormatShort(diags []Diagnostic) string {
	if len(diags) == 0 {
		return ""
	}
	sorted := slices.Clone(diags)
	slices.SortStableFunc(sorted, Compare)

	var b strings.Builder
	for i, d := range sorted {
		start := d.Start()
		rule := d.Rule
		if rule == "" {
			rule = "-"
		}
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s", d.Severity.Label(), rule, normalizePath(d.File), start.Row+1, start.Column+1, sanitizeMessage(d.Message))
		if i < len(sorted)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func normalizePath(path string) string {
	p := filepath.ToSlash(path)
	for strings.HasPrefix(p, "./") {
		p = strings.TrimPrefix(p, "./")
	}
	return p
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}

package diagfmt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"lint381/internal/diag"
	"lint381/internal/source"
)

type palette struct {
	path  *color.Color
	err   *color.Color
	warn  *color.Color
	info  *color.Color
	rule  *color.Color
	caret *color.Color
	hint  *color.Color
	dim   *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		path:  color.New(color.Bold),
		err:   color.New(color.FgRed, color.Bold),
		warn:  color.New(color.FgYellow, color.Bold),
		info:  color.New(color.FgCyan, color.Bold),
		rule:  color.New(color.Faint),
		caret: color.New(color.FgGreen, color.Bold),
		hint:  color.New(color.FgCyan),
		dim:   color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.path, p.err, p.warn, p.info, p.rule, p.caret, p.hint, p.dim} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид:
//
//	<path>:<line>:<col>: <severity>: <message> [<rule>]
//	<line> | <source line>
//	       | ^~~~
//
// Файлы, которые не удалось токенизировать, выводятся одной ошибкой с позицией.
func Pretty(w io.Writer, reports []FileReport, opts PrettyOpts) error {
	pal := newPalette(opts.Color)
	bw := bufio.NewWriter(w)

	var errs, warns, infos, failed, dropped int
	for _, r := range reports {
		path := displayPath(r, opts.PathMode, opts.BaseDir)
		if r.Err != nil {
			failed++
			prettyFailure(bw, pal, path, r, opts)
			continue
		}
		for _, d := range r.Diagnostics {
			switch d.Severity {
			case diag.SevError:
				errs++
			case diag.SevWarning:
				warns++
			default:
				infos++
			}
			prettyDiagnostic(bw, pal, path, r.File, d, opts)
		}
		dropped += r.Dropped
	}

	if opts.Summary {
		fmt.Fprintln(bw, pal.dim.Sprint(summaryLine(len(reports), errs, warns, infos, failed, dropped)))
	}
	return bw.Flush()
}

func prettyDiagnostic(w io.Writer, pal palette, path string, file *source.File, d diag.Diagnostic, opts PrettyOpts) {
	start, end := d.Start(), d.End()
	fmt.Fprintf(w, "%s: %s: %s", pal.path.Sprintf("%s:%s", path, start), pal.severity(d.Severity).Sprint(d.Severity.Label()), d.Message)
	if d.Rule != "" {
		fmt.Fprintf(w, " %s", pal.rule.Sprintf("[%s]", d.Rule))
	}
	fmt.Fprintln(w)

	if file != nil && d.Valid() {
		writeExcerpt(w, pal, file, start, end, int(opts.Context))
	}
	if opts.ShowHints && d.Hint != "" {
		fmt.Fprintf(w, "  %s %s\n", pal.hint.Sprint("hint:"), d.Hint)
	}
}

func prettyFailure(w io.Writer, pal palette, path string, r FileReport, opts PrettyOpts) {
	pos, msg, ok := failurePosition(r.Err)
	if !ok {
		fmt.Fprintf(w, "%s: %s: %s\n", pal.path.Sprint(path), pal.err.Sprint("error"), msg)
		return
	}
	fmt.Fprintf(w, "%s: %s: could not tokenize: %s\n", pal.path.Sprintf("%s:%s", path, pos), pal.err.Sprint("error"), msg)
	if r.File != nil {
		writeExcerpt(w, pal, r.File, pos, pos, int(opts.Context))
	}
}

// writeExcerpt prints the start row with context and underlines start..end.
// A span crossing rows is underlined to the end of its first row.
func writeExcerpt(w io.Writer, pal palette, file *source.File, start, end source.Position, context int) {
	if start.Row < 0 || start.Row >= file.LineCount() {
		return
	}
	gutter := len(fmt.Sprint(start.Row + 1))

	for row := max(0, start.Row-context); row < start.Row; row++ {
		fmt.Fprintf(w, "%s %s\n", pal.dim.Sprintf("%*d |", gutter, row+1), file.Line(row))
	}

	line := []rune(file.Line(start.Row))
	fmt.Fprintf(w, "%s %s\n", pal.dim.Sprintf("%*d |", gutter, start.Row+1), string(line))

	from := min(max(start.Column, 0), len(line))
	to := len(line) - 1
	if end.Row == start.Row {
		to = min(end.Column, len(line)-1)
	}
	width := 1
	if to >= from {
		width = max(runewidth.StringWidth(string(line[from:to+1])), 1)
	}
	pad := runewidth.StringWidth(string(line[:from]))
	marker := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, "%s %s%s\n", pal.dim.Sprintf("%*s |", gutter, ""), strings.Repeat(" ", pad), pal.caret.Sprint(marker))
}

func summaryLine(files, errs, warns, infos, failed, dropped int) string {
	problems := errs + warns + infos
	var b strings.Builder
	if problems == 0 {
		b.WriteString("no problems")
	} else {
		b.WriteString(plural(problems, "problem"))
		var parts []string
		if errs > 0 {
			parts = append(parts, plural(errs, "error"))
		}
		if warns > 0 {
			parts = append(parts, plural(warns, "warning"))
		}
		if infos > 0 {
			parts = append(parts, fmt.Sprintf("%d info", infos))
		}
		fmt.Fprintf(&b, " (%s)", strings.Join(parts, ", "))
	}
	fmt.Fprintf(&b, " in %s", plural(files, "file"))
	if failed > 0 {
		fmt.Fprintf(&b, ", %d could not be linted", failed)
	}
	if dropped > 0 {
		fmt.Fprintf(&b, ", %d more suppressed by the limit", dropped)
	}
	return b.String()
}

package diagfmt

import (
	"encoding/json"
	"io"
	"strings"

	"lint381/internal/diag"
	"lint381/internal/source"
)

// PositionJSON is a one-based line/column pair.
type PositionJSON struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func makePosition(p source.Position) PositionJSON {
	return PositionJSON{Line: p.Row + 1, Column: p.Column + 1}
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Rule     string       `json:"rule"`
	Severity string       `json:"severity"`
	Message  string       `json:"message"`
	Hint     string       `json:"hint,omitempty"`
	Start    PositionJSON `json:"start"`
	End      PositionJSON `json:"end"`
	Text     string       `json:"text,omitempty"`
}

// ErrorJSON describes a file that could not be linted.
type ErrorJSON struct {
	Message  string        `json:"message"`
	Position *PositionJSON `json:"position,omitempty"`
}

// FileJSON groups the results of one file.
type FileJSON struct {
	Path        string           `json:"path"`
	Error       *ErrorJSON       `json:"error,omitempty"`
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Dropped     int              `json:"dropped,omitempty"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	Files  []FileJSON `json:"files"`
	Count  int        `json:"count"`
	Failed int        `json:"failed"`
}

// BuildDiagnosticsOutput converts reports into the JSON document without
// encoding it.
func BuildDiagnosticsOutput(reports []FileReport, opts JSONOpts) DiagnosticsOutput {
	out := DiagnosticsOutput{Files: make([]FileJSON, 0, len(reports))}
	for _, r := range reports {
		fj := FileJSON{
			Path:        displayPath(r, opts.PathMode, opts.BaseDir),
			Diagnostics: make([]DiagnosticJSON, 0, len(r.Diagnostics)),
			Dropped:     r.Dropped,
		}
		if r.Err != nil {
			out.Failed++
			pos, msg, ok := failurePosition(r.Err)
			fj.Error = &ErrorJSON{Message: msg}
			if ok {
				p := makePosition(pos)
				fj.Error.Position = &p
			}
		}
		for _, d := range r.Diagnostics {
			if opts.Max > 0 && out.Count >= opts.Max {
				fj.Dropped++
				continue
			}
			fj.Diagnostics = append(fj.Diagnostics, makeDiagnostic(d, opts.IncludeText))
			out.Count++
		}
		out.Files = append(out.Files, fj)
	}
	return out
}

func makeDiagnostic(d diag.Diagnostic, includeText bool) DiagnosticJSON {
	dj := DiagnosticJSON{
		Rule:     d.Rule,
		Severity: d.Severity.Label(),
		Message:  d.Message,
		Hint:     d.Hint,
		Start:    makePosition(d.Start()),
		End:      makePosition(d.End()),
	}
	if includeText {
		vals := make([]string, len(d.Tokens))
		for i, t := range d.Tokens {
			vals[i] = t.Value
		}
		dj.Text = strings.Join(vals, " ")
	}
	return dj
}

// JSON пишет диагностики всех файлов одним документом.
func JSON(w io.Writer, reports []FileReport, opts JSONOpts) error {
	return encode(w, BuildDiagnosticsOutput(reports, opts), opts.Compact)
}

func encode(w io.Writer, v any, compact bool) error {
	encoder := json.NewEncoder(w)
	if !compact {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(v)
}

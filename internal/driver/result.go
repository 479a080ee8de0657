package driver

import (
	"slices"

	"lint381/internal/diag"
	"lint381/internal/diagfmt"
	"lint381/internal/lint"
	"lint381/internal/observ"
	"lint381/internal/source"
	"lint381/internal/token"
)

// FileResult is everything known about one linted file. Err holds I/O,
// language detection and tokenizer failures; they never abort other files.
type FileResult struct {
	Path   string
	Lang   lint.Language
	File   *source.File
	Tokens []token.Token // nil on cache hits
	Bag    *diag.Bag
	Err    error
	Cached bool
	Timing *observ.Report
}

// Failed reports whether the file could not be linted.
func (r *FileResult) Failed() bool { return r.Err != nil }

// Diagnostics returns the sorted diagnostics kept by the bag.
func (r *FileResult) Diagnostics() []diag.Diagnostic {
	if r.Bag == nil {
		return nil
	}
	return r.Bag.Items()
}

// Report converts the result for diagfmt.
func (r *FileResult) Report() diagfmt.FileReport {
	rep := diagfmt.FileReport{
		Path:        r.Path,
		File:        r.File,
		Diagnostics: r.Diagnostics(),
		Err:         r.Err,
	}
	if r.Bag != nil {
		rep.Dropped = r.Bag.Dropped()
	}
	return rep
}

// add applies severity overrides, drops duplicates and fills the bag in
// source order, so a limit keeps the earliest distinct diagnostics.
func (r *FileResult) add(ds []diag.Diagnostic, opts *Options) {
	ds = slices.Clone(ds)
	lint.SortDiagnostics(ds)
	all := diag.NewBag(0)
	var rep diag.Reporter = diag.BagReporter{Bag: all}
	for _, d := range ds {
		if sev, ok := opts.Severity[d.Rule]; ok {
			d.Severity = sev
		}
		rep.Report(d)
	}
	// повторы не должны занимать место под лимитом
	all.Dedup()
	r.Bag.AddAll(all.Items())
	if opts.Reporter == nil {
		return
	}
	for _, d := range r.Bag.Items() {
		opts.Reporter.Report(d)
	}
}

func (r *FileResult) status() string {
	switch {
	case r.Err != nil:
		return "error: " + r.Err.Error()
	case r.Cached:
		return "cached"
	default:
		return "ok"
	}
}

// Reports converts results for diagfmt, skipping nil entries left by cancellation.
func Reports(results []*FileResult) []diagfmt.FileReport {
	out := make([]diagfmt.FileReport, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, r.Report())
		}
	}
	return out
}

// Summary counts the outcome of a run.
type Summary struct {
	Files       int
	Failed      int
	Cached      int
	Diagnostics int
	Errors      int
	Warnings    int
	Dropped     int
}

// Clean reports whether the run found nothing to complain about.
func (s Summary) Clean() bool { return s.Failed == 0 && s.Diagnostics == 0 && s.Dropped == 0 }

// Summarize aggregates results.
func Summarize(results []*FileResult) Summary {
	var s Summary
	for _, r := range results {
		if r == nil {
			continue
		}
		s.Files++
		if r.Failed() {
			s.Failed++
		}
		if r.Cached {
			s.Cached++
		}
		for _, d := range r.Diagnostics() {
			s.Diagnostics++
			switch d.Severity {
			case diag.SevError:
				s.Errors++
			case diag.SevWarning:
				s.Warnings++
			}
		}
		if r.Bag != nil {
			s.Dropped += r.Bag.Dropped()
		}
	}
	return s
}

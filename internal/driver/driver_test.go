package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"

	"lint381/internal/diag"
	"lint381/internal/lexer"
	"lint381/internal/lint"
	"lint381/internal/rules"
	"lint381/internal/trace"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func rulesOf(ds []diag.Diagnostic) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Rule
	}
	return out
}

func TestLintFile(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.c": "#define _FOO 1\nstruct foo;\n",
	})
	res, err := LintFile(context.Background(), filepath.Join(dir, "a.c"), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Failed() {
		t.Fatalf("unexpected failure: %v", res.Err)
	}
	if res.Lang != lint.C {
		t.Errorf("Lang = %v, want C", res.Lang)
	}
	if got := rulesOf(res.Diagnostics()); !slices.Equal(got, []string{"C001", "C002"}) {
		t.Errorf("rules = %v", got)
	}
	for _, d := range res.Diagnostics() {
		if d.File != filepath.Join(dir, "a.c") {
			t.Errorf("diagnostic file = %q", d.File)
		}
	}
	if len(res.Tokens) == 0 {
		t.Error("tokens should be kept on a fresh run")
	}
}

func TestLintFileExpandsTabs(t *testing.T) {
	dir := writeFiles(t, map[string]string{"t.c": "struct foo {\n\tint x;\n};\n"})
	res, err := LintFile(context.Background(), filepath.Join(dir, "t.c"), Options{TabWidth: 4})
	if err != nil {
		t.Fatal(err)
	}
	if res.Failed() {
		t.Fatalf("tabs should be expanded before lexing: %v", res.Err)
	}
	for _, tok := range res.Tokens {
		if tok.Value == "int" && tok.Start.Column != 4 {
			t.Errorf("int at column %d, want 4", tok.Start.Column)
		}
	}
}

func TestLintPathsIsolatesFailures(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"src/good.c":        "struct foo;\n",
		"src/bad.c":         "char *s = \"open;\n",
		"src/notes.txt":     "struct foo;\n",
		"src/b/inner.hpp":   "using namespace std;\n",
		"src/.cache/skip.c": "struct foo;\n",
		"README":            "hi\n",
	})
	missing := filepath.Join(dir, "missing.c")
	paths := []string{filepath.Join(dir, "src"), filepath.Join(dir, "README"), missing}

	results, err := LintPaths(context.Background(), paths, Options{Jobs: 2})
	if err != nil {
		t.Fatal(err)
	}

	var names []string
	for _, r := range results {
		rel, _ := filepath.Rel(dir, r.Path)
		names = append(names, filepath.ToSlash(rel))
	}
	want := []string{"src/b/inner.hpp", "src/bad.c", "src/good.c", "README", "missing.c"}
	if !slices.Equal(names, want) {
		t.Fatalf("files = %v, want %v", names, want)
	}

	if got := rulesOf(results[0].Diagnostics()); !slices.Equal(got, []string{"CPP002"}) {
		t.Errorf("inner.hpp rules = %v", got)
	}
	if !errors.Is(results[1].Err, lexer.ErrUnterminatedLiteral) {
		t.Errorf("bad.c err = %v", results[1].Err)
	}
	if results[2].Failed() || len(results[2].Diagnostics()) != 1 {
		t.Errorf("good.c = %+v", results[2])
	}
	if !errors.Is(results[3].Err, ErrUnknownFileType) {
		t.Errorf("README err = %v", results[3].Err)
	}
	if !errors.Is(results[4].Err, os.ErrNotExist) {
		t.Errorf("missing.c err = %v", results[4].Err)
	}

	s := Summarize(results)
	if s.Files != 5 || s.Failed != 3 || s.Diagnostics != 2 || s.Clean() {
		t.Errorf("summary = %+v", s)
	}
}

func TestLintFileForcedLanguage(t *testing.T) {
	dir := writeFiles(t, map[string]string{"x.inc": "int *p = NULL;\n"})
	path := filepath.Join(dir, "x.inc")

	res, _ := LintFile(context.Background(), path, Options{})
	if !errors.Is(res.Err, ErrUnknownFileType) {
		t.Fatalf("expected unknown file type, got %v", res.Err)
	}
	res, _ = LintFile(context.Background(), path, Options{Lang: lint.CPP})
	if got := rulesOf(res.Diagnostics()); !slices.Equal(got, []string{"CPP003"}) {
		t.Errorf("rules = %v", got)
	}
}

func TestSeverityAndDisable(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.c": "#define _FOO 1\nstruct foo;\n"})
	opts := Options{
		Disable:  []string{"C001"},
		Severity: map[string]diag.Severity{"C002": diag.SevWarning},
	}
	res, err := LintFile(context.Background(), filepath.Join(dir, "a.c"), opts)
	if err != nil {
		t.Fatal(err)
	}
	ds := res.Diagnostics()
	if len(ds) != 1 || ds[0].Rule != "C002" || ds[0].Severity != diag.SevWarning {
		t.Errorf("diagnostics = %+v", ds)
	}
}

func TestMaxDiagnosticsKeepsEarliest(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.c": "struct a;\nstruct b;\n#define _X\nstruct c;\n"})
	res, err := LintFile(context.Background(), filepath.Join(dir, "a.c"), Options{MaxDiagnostics: 2})
	if err != nil {
		t.Fatal(err)
	}
	ds := res.Diagnostics()
	if len(ds) != 2 || ds[0].Start().Row != 0 || ds[1].Start().Row != 1 {
		t.Errorf("kept = %+v", ds)
	}
	if res.Bag.Dropped() != 2 {
		t.Errorf("Dropped = %d, want 2", res.Bag.Dropped())
	}
	if s := Summarize([]*FileResult{res}); s.Clean() || s.Dropped != 2 {
		t.Errorf("summary = %+v", s)
	}
}

func TestReporterSeesKeptDiagnostics(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.c": "struct a;\nstruct b;\n#define _X\n"})
	var seen []string
	opts := Options{
		MaxDiagnostics: 2,
		Severity:       map[string]diag.Severity{"C002": diag.SevInfo},
		Reporter: diag.ReporterFunc(func(d diag.Diagnostic) {
			if d.Severity != diag.SevInfo {
				t.Errorf("%s reported with severity %v", d.Rule, d.Severity)
			}
			seen = append(seen, d.Rule)
		}),
	}
	if _, err := LintFile(context.Background(), filepath.Join(dir, "a.c"), opts); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(seen, []string{"C002", "C002"}) {
		t.Errorf("reported = %v", seen)
	}
}

func TestParallelRulesMatchSequential(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.hpp": "#define _A\n#include \"x.cpp\"\nusing namespace std;\nstruct foo {};\nint *p = NULL; /*** x ***/\n",
	})
	path := filepath.Join(dir, "a.hpp")
	seq, err := LintFile(context.Background(), path, Options{})
	if err != nil {
		t.Fatal(err)
	}
	par, err := LintFile(context.Background(), path, Options{ParallelRules: true, RuleJobs: 2})
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(rulesOf(seq.Diagnostics()), rulesOf(par.Diagnostics())) {
		t.Errorf("sequential %v != parallel %v", rulesOf(seq.Diagnostics()), rulesOf(par.Diagnostics()))
	}
	if len(seq.Diagnostics()) != rules.CPP().Len() {
		t.Errorf("expected one diagnostic per C++ rule, got %v", rulesOf(seq.Diagnostics()))
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.c": "struct foo;\n"})
	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{Cache: cache, Version: "test"}
	path := filepath.Join(dir, "a.c")

	first, err := LintFile(context.Background(), path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.Cached {
		t.Fatal("first run cannot be a cache hit")
	}

	opts.Severity = map[string]diag.Severity{"C002": diag.SevInfo}
	second, err := LintFile(context.Background(), path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.Cached || second.Tokens != nil {
		t.Fatalf("second run should come from the cache: %+v", second)
	}
	got, want := second.Diagnostics(), first.Diagnostics()
	if len(got) != len(want) || got[0].Message != want[0].Message || got[0].Start() != want[0].Start() {
		t.Errorf("cached %+v != fresh %+v", got, want)
	}
	if got[0].Severity != diag.SevInfo {
		t.Errorf("overrides must apply to cached results, got %v", got[0].Severity)
	}

	opts.Version = "other"
	third, _ := LintFile(context.Background(), path, opts)
	if third.Cached {
		t.Error("a different tool version must miss the cache")
	}

	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	opts.Version = "test"
	fourth, _ := LintFile(context.Background(), path, opts)
	if fourth.Cached {
		t.Error("DropAll should empty the cache")
	}
}

func TestMakeCacheKey(t *testing.T) {
	var content [32]byte
	cpp := FileKind{Lang: lint.CPP}
	base := MakeCacheKey(content, cpp, "fp", "v1", 8)
	if base != MakeCacheKey(content, cpp, "fp", "v1", 8) {
		t.Error("key must be deterministic")
	}
	for name, k := range map[string]CacheKey{
		"fingerprint": MakeCacheKey(content, cpp, "fp2", "v1", 8),
		"version":     MakeCacheKey(content, cpp, "fp", "v2", 8),
		"tab width":   MakeCacheKey(content, cpp, "fp", "v1", 4),
		"boundary":    MakeCacheKey(content, cpp, "fpv", "1", 8),
		"header":      MakeCacheKey(content, FileKind{Lang: lint.CPP, Header: true}, "fp", "v1", 8),
		"language":    MakeCacheKey(content, FileKind{Lang: lint.C}, "fp", "v1", 8),
	} {
		if k == base {
			t.Errorf("changing %s must change the key", name)
		}
	}
}

func TestDiskCacheSharedBetweenIdenticalFiles(t *testing.T) {
	const text = "using namespace std;\n"
	dir := writeFiles(t, map[string]string{"a.cpp": text, "b.hpp": text, "c.cpp": text, "d.hpp": text})
	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{Cache: cache, Version: "test"}

	tests := []struct {
		name   string
		cached bool
		rules  []string
	}{
		{"a.cpp", false, nil},
		{"b.hpp", false, []string{"CPP002"}},
		{"c.cpp", true, nil},
		{"d.hpp", true, []string{"CPP002"}},
	}
	for _, tt := range tests {
		path := filepath.Join(dir, tt.name)
		res, err := LintFile(context.Background(), path, opts)
		if err != nil {
			t.Fatal(err)
		}
		if res.Cached != tt.cached {
			t.Errorf("%s: Cached = %v, want %v", tt.name, res.Cached, tt.cached)
		}
		if got := rulesOf(res.Diagnostics()); !slices.Equal(got, tt.rules) {
			t.Errorf("%s: rules = %v, want %v", tt.name, got, tt.rules)
		}
		for _, d := range res.Diagnostics() {
			if d.File != path {
				t.Errorf("%s: diagnostic file = %q", tt.name, d.File)
			}
		}
	}
}

func TestAddDropsDuplicatesBeforeLimit(t *testing.T) {
	toks, err := lexer.Tokenize("a b c")
	if err != nil {
		t.Fatal(err)
	}
	mk := func(i int) diag.Diagnostic {
		d := diag.New("msg", toks[i:i+1])
		d.Rule = "X001"
		d.File = "f.c"
		return d
	}
	res := &FileResult{Bag: diag.NewBag(2)}
	res.add([]diag.Diagnostic{mk(0), mk(0), mk(1), mk(1), mk(2)}, &Options{})

	ds := res.Diagnostics()
	if len(ds) != 2 || ds[0].Start().Column != 0 || ds[1].Start().Column != 2 {
		t.Errorf("kept = %+v", ds)
	}
	if res.Bag.Dropped() != 1 {
		t.Errorf("Dropped = %d, want 1", res.Bag.Dropped())
	}
}

func TestProgressEvents(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.c": "int x;\n", "b.c": "`\n"})

	var (
		mu     sync.Mutex
		events []Event
	)
	sink := ProgressFunc(func(ev Event) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, ev)
	})
	_, err := LintPaths(context.Background(), []string{dir}, Options{Progress: sink})
	if err != nil {
		t.Fatal(err)
	}

	terminal := map[string]Status{}
	for _, ev := range events {
		if ev.Terminal() {
			if _, dup := terminal[ev.File]; dup {
				t.Errorf("two terminal events for %s", ev.File)
			}
			terminal[ev.File] = ev.Status
		}
	}
	if terminal[filepath.Join(dir, "a.c")] != StatusDone || terminal[filepath.Join(dir, "b.c")] != StatusError {
		t.Errorf("terminal statuses = %v", terminal)
	}
}

func TestChannelSink(t *testing.T) {
	ch := make(chan Event, 1)
	ChannelSink{Ch: ch}.OnEvent(Event{File: "x"})
	if ev := <-ch; ev.File != "x" {
		t.Errorf("got %+v", ev)
	}
	ChannelSink{}.OnEvent(Event{}) // nil channel is a no-op
}

func TestTimings(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.c": "int x;\n", "b.c": "int y;\n"})
	results, err := LintPaths(context.Background(), []string{dir}, Options{Timings: true})
	if err != nil {
		t.Fatal(err)
	}
	r := Timings(results)
	var names []string
	for _, p := range r.Phases {
		names = append(names, p.Name)
		if p.Count != 2 {
			t.Errorf("phase %s count = %d, want 2", p.Name, p.Count)
		}
	}
	if !slices.Equal(names, []string{"load", "tokenize", "lint"}) {
		t.Errorf("phases = %v", names)
	}
}

func TestLintFilesCancelled(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.c": "int x;\n"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := LintPaths(ctx, []string{dir}, Options{}); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestLintEmitsTraceSpans(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.c": "int x;\n"})
	ring := trace.NewRingTracer(64, trace.LevelDebug)
	ctx := trace.WithTracer(context.Background(), ring)
	if _, err := LintPaths(ctx, []string{dir}, Options{}); err != nil {
		t.Fatal(err)
	}
	seen := map[string]bool{}
	for _, ev := range ring.Snapshot() {
		seen[ev.Scope.String()+"/"+ev.Name] = true
	}
	for _, want := range []string{"driver/lint", "pass/tokenize", "pass/lint"} {
		if !seen[want] {
			t.Errorf("missing span %s in %v", want, seen)
		}
	}
}

func TestCollect(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"z.c": "", "a.H": "", "m/b.cc": "", "x.txt": "",
	})
	files, err := Collect([]string{dir, filepath.Join(dir, "z.c")})
	if err != nil {
		t.Fatal(err)
	}
	var rel []string
	for _, f := range files {
		r, _ := filepath.Rel(dir, f)
		rel = append(rel, filepath.ToSlash(r))
	}
	if want := []string{"a.H", "m/b.cc", "z.c"}; !slices.Equal(rel, want) {
		t.Errorf("Collect = %v, want %v", rel, want)
	}
}

func TestTokenize(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.c": "int x;\n", "b.c": "/* open\n"})
	res, err := Tokenize(context.Background(), filepath.Join(dir, "a.c"), 0)
	if err != nil || len(res.Tokens) != 3 {
		t.Fatalf("Tokenize = %+v, %v", res, err)
	}
	res, err = Tokenize(context.Background(), filepath.Join(dir, "b.c"), 0)
	if !errors.Is(err, lexer.ErrUnterminatedComment) || res == nil || res.File == nil {
		t.Errorf("expected comment failure with file, got %+v, %v", res, err)
	}
	if _, err := Tokenize(context.Background(), filepath.Join(dir, "nope.c"), 0); err == nil || !strings.Contains(err.Error(), "failed to load") {
		t.Errorf("missing file err = %v", err)
	}
}
